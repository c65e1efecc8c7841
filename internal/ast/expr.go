package ast

import "github.com/oko-lang/oko/internal/span"

// Expr is any node of the expression tree. Every node carries its source
// span and the TypeIndex type resolution assigned it.
type Expr interface {
	Span() span.Span
	ResultType() TypeIndex
	exprNode()
}

// UnaryExpr applies a prefix operator to a single operand.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
	span    span.Span
	typ     TypeIndex
}

func NewUnaryExpr(op UnaryOp, operand Expr, sp span.Span, typ TypeIndex) *UnaryExpr {
	return &UnaryExpr{Op: op, Operand: operand, span: sp, typ: typ}
}

func (e *UnaryExpr) Span() span.Span       { return e.span }
func (e *UnaryExpr) ResultType() TypeIndex { return e.typ }
func (*UnaryExpr) exprNode()               {}

// BinaryExpr applies an infix operator to two operands.
type BinaryExpr struct {
	Op          BinaryOp
	Left, Right Expr
	span        span.Span
	typ         TypeIndex
}

func NewBinaryExpr(op BinaryOp, left, right Expr, sp span.Span, typ TypeIndex) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right, span: sp, typ: typ}
}

func (e *BinaryExpr) Span() span.Span       { return e.span }
func (e *BinaryExpr) ResultType() TypeIndex { return e.typ }
func (*BinaryExpr) exprNode()               {}

// IdentExpr is a reference to a visible variable.
type IdentExpr struct {
	Name span.Spanned[string]
	typ  TypeIndex
}

func NewIdentExpr(name span.Spanned[string], typ TypeIndex) *IdentExpr {
	return &IdentExpr{Name: name, typ: typ}
}

func (e *IdentExpr) Span() span.Span       { return e.Name.Span }
func (e *IdentExpr) ResultType() TypeIndex { return e.typ }
func (*IdentExpr) exprNode()               {}

// TupleExpr is a tuple literal: zero elements is the unit value, one
// element (written with a trailing comma) or more is a genuine tuple. A
// parenthesised single expression without a trailing comma is not wrapped
// in a TupleExpr; the parser returns the inner expression itself.
type TupleExpr struct {
	Elems []Expr
	span  span.Span
	typ   TypeIndex
}

func NewTupleExpr(elems []Expr, sp span.Span, typ TypeIndex) *TupleExpr {
	return &TupleExpr{Elems: elems, span: sp, typ: typ}
}

func (e *TupleExpr) Span() span.Span       { return e.span }
func (e *TupleExpr) ResultType() TypeIndex { return e.typ }
func (*TupleExpr) exprNode()               {}

// CallExpr is a juxtaposition call: a callee item-table index and its
// already-parsed argument list.
type CallExpr struct {
	Callee int
	Args   []Expr
	span   span.Span
	typ    TypeIndex
}

func NewCallExpr(callee int, args []Expr, sp span.Span, typ TypeIndex) *CallExpr {
	return &CallExpr{Callee: callee, Args: args, span: sp, typ: typ}
}

func (e *CallExpr) Span() span.Span       { return e.span }
func (e *CallExpr) ResultType() TypeIndex { return e.typ }
func (*CallExpr) exprNode()               {}
