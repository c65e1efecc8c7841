package parser

import (
	"fmt"

	"github.com/oko-lang/oko/internal/ast"
	"github.com/oko-lang/oko/internal/diag"
	"github.com/oko-lang/oko/internal/span"
	"github.com/oko-lang/oko/internal/token"
)

var sumOps = map[token.Kind]ast.BinaryOp{token.Plus: ast.Add, token.Minus: ast.Sub}
var mulOps = map[token.Kind]ast.BinaryOp{token.Star: ast.Mul, token.Slash: ast.Div}

// ParseExpr parses one full expression at the lowest (additive)
// precedence level, per the grammar in spec.md §6.
func ParseExpr(s *State, ctx Scope) (ast.Expr, *diag.Diagnostic) {
	return parseSum(s, ctx)
}

func parseSum(s *State, ctx Scope) (ast.Expr, *diag.Diagnostic) {
	return parseBinaryLevel(s, ctx, parseMul, sumOps)
}

func parseMul(s *State, ctx Scope) (ast.Expr, *diag.Diagnostic) {
	return parseBinaryLevel(s, ctx, parseUnary, mulOps)
}

// parseBinaryLevel implements the shared binary-level contract: parse the
// left operand, then repeatedly try to consume an operator at this level
// and parse a right operand. The spacing rule can turn what looked like an
// operator back into "no operator here" — in that case the cursor is
// restored and the loop stops, leaving the operator for an outer level (or
// the call/primary level, where uneven spacing around `+`/`-` makes them
// unary prefixes instead).
func parseBinaryLevel(
	s *State,
	ctx Scope,
	next func(*State, Scope) (ast.Expr, *diag.Diagnostic),
	ops map[token.Kind]ast.BinaryOp,
) (ast.Expr, *diag.Diagnostic) {
	left, d := next(s, ctx)
	if d != nil {
		return nil, d
	}

	for {
		mark := s.mark()
		opTok, ok := s.peek()
		if !ok {
			break
		}
		op, isOp := ops[opTok.Kind]
		if !isOp {
			break
		}
		s.advance()

		right, d := next(s, ctx)
		if d != nil {
			return nil, d
		}

		leftClose := opTok.Span.Start.Column-left.Span().End.Column == 1
		rightClose := right.Span().Start.Column-opTok.Span.End.Column == 1
		if leftClose != rightClose {
			s.reset(mark)
			break
		}

		if !ctx.Types.SupportsBinary(left.ResultType(), right.ResultType(), op) {
			return nil, s.diagnostic(diag.StageBodyBake,
				span.Span{Start: left.Span().Start, End: right.Span().End},
				fmt.Sprintf("cannot %s the `%s` and `%s` types", op,
					ctx.Types.TypeName(left.ResultType()), ctx.Types.TypeName(right.ResultType())),
				"")
		}

		sp := span.Span{Start: left.Span().Start, End: right.Span().End}
		left = ast.NewBinaryExpr(op, left, right, sp, left.ResultType())
	}
	return left, nil
}

func parseUnary(s *State, ctx Scope) (ast.Expr, *diag.Diagnostic) {
	t, ok := s.peek()
	if !ok || (t.Kind != token.Plus && t.Kind != token.Minus) {
		return parseCall(s, ctx)
	}
	s.advance()

	operand, d := parseCall(s, ctx)
	if d != nil {
		return nil, d
	}

	op := ast.Pos
	if t.Kind == token.Minus {
		op = ast.Neg
	}
	if !ctx.Types.SupportsUnary(operand.ResultType(), op) {
		return nil, s.diagnostic(diag.StageBodyBake,
			span.Span{Start: t.Span.Start, End: operand.Span().End},
			fmt.Sprintf("cannot %s the `%s` type", op, ctx.Types.TypeName(operand.ResultType())),
			"")
	}
	sp := span.Span{Start: t.Span.Start, End: operand.Span().End}
	return ast.NewUnaryExpr(op, operand, sp, operand.ResultType()), nil
}

// parseCall implements the juxtaposition call: an identifier that names a
// visible function consumes expressions greedily (bounded by its arity
// once nested) until a newline or end of input.
func parseCall(s *State, ctx Scope) (ast.Expr, *diag.Diagnostic) {
	mark := s.mark()
	t, ok := s.peek()
	if ok && t.Kind == token.Ident {
		if calleeIdx, fn, found := ctx.lookupFunction(t.Text); found {
			s.advance()
			args, d := collectCallArgs(s, ctx, len(fn.Params))
			if d != nil {
				return nil, d
			}
			if len(args) != len(fn.Params) {
				return nil, s.diagnostic(diag.StageBodyBake, t.Span, "wrong number of arguments",
					fmt.Sprintf("expected `%d`, got `%d`", len(fn.Params), len(args)))
			}
			for i, a := range args {
				if !a.ResultType().Equal(fn.Params[i].Type) {
					return nil, s.diagnostic(diag.StageBodyBake, a.Span(), "wrong type of the argument",
						fmt.Sprintf("expected `%s`, got `%s`",
							ctx.Types.TypeName(fn.Params[i].Type), ctx.Types.TypeName(a.ResultType())))
				}
			}
			end := t.Span.End
			if len(args) > 0 {
				end = args[len(args)-1].Span().End
			}
			sp := span.Span{Start: t.Span.Start, End: end}
			return ast.NewCallExpr(calleeIdx, args, sp, fn.Ret), nil
		}
	}
	s.reset(mark)
	return s.parsePrimary(ctx)
}

// collectCallArgs is the arity-driven argument loop from spec.md §4.4: the
// outermost call on a line greedily consumes arguments until the line
// ends, so surplus tokens surface as "wrong number of arguments"; a
// nested call takes exactly its declared arity and lets the enclosing
// call keep going.
func collectCallArgs(s *State, ctx Scope, arity int) ([]ast.Expr, *diag.Diagnostic) {
	var args []ast.Expr
	for {
		if s.exhausted() {
			break
		}
		if s.peekKind() == token.Newline {
			break
		}
		if ctx.depth > 0 && len(args) == arity {
			break
		}
		arg, d := ParseExpr(s, ctx.Deeper())
		if d != nil {
			return nil, d
		}
		args = append(args, arg)
	}
	return args, nil
}

// parsePrimary resolves an identifier against the visible variables, or
// falls through to a parenthesised expression or tuple. The two
// alternatives have disjoint leading tokens (Ident vs LParen), so there is
// never a genuine tie to break by consumption length.
func (s *State) parsePrimary(ctx Scope) (ast.Expr, *diag.Diagnostic) {
	if t, ok := s.peek(); ok && t.Kind == token.Ident {
		if v, found := ctx.lookupVariable(t.Text); found {
			s.advance()
			return ast.NewIdentExpr(t.AsSpannedIdent(), v.Type), nil
		}
		return nil, s.diagnostic(diag.StageBodyBake, t.Span, "no variable named `"+t.Text+"` found", "")
	}
	return s.parseParenOrTuple(ctx)
}

// parseParenOrTuple parses `"(" [ expr { "," expr } [","] ")"`. Zero
// elements is unit; exactly one with no trailing comma is a parenthesised
// expression (its type passes through unchanged); anything else is a
// genuine tuple.
func (s *State) parseParenOrTuple(ctx Scope) (ast.Expr, *diag.Diagnostic) {
	open, ok := s.peek()
	if !ok || open.Kind != token.LParen {
		return nil, s.expected(diag.StageBodyBake, "a primary expression")
	}
	s.advance()

	var elems []ast.Expr
	trailingComma := false
	for {
		if t, ok := s.peek(); ok && t.Kind == token.RParen {
			break
		}
		e, d := ParseExpr(s, ctx)
		if d != nil {
			return nil, d
		}
		elems = append(elems, e)
		if t, ok := s.peek(); ok && t.Kind == token.Comma {
			s.advance()
			trailingComma = true
			continue
		}
		trailingComma = false
		break
	}

	closeTok, ok := s.peek()
	if !ok || closeTok.Kind != token.RParen {
		return nil, s.expected(diag.StageBodyBake, "`)`")
	}
	s.advance()

	sp := span.Span{Start: open.Span.Start, End: closeTok.Span.End}
	if len(elems) == 1 && !trailingComma {
		return elems[0], nil
	}
	types := make([]ast.TypeIndex, len(elems))
	for i, e := range elems {
		types[i] = e.ResultType()
	}
	return ast.NewTupleExpr(elems, sp, ast.NewTuple(types)), nil
}
