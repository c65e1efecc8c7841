package ast

import (
	"github.com/oko-lang/oko/internal/span"
	"github.com/oko-lang/oko/internal/token"
)

// Function is a name, its ordered parameters, its declared return type,
// and the index of its body in the module's FnBodyTable.
type Function struct {
	Name   span.Spanned[string]
	Params []TypedVariable
	Ret    TypeIndex
	Body   int
}

// ItemKind discriminates the two Item variants.
type ItemKind int

const (
	ItemFn ItemKind = iota
	ItemTy
)

// Item is one top-level declaration. Fn items carry the function inline;
// Ty items carry the index of their definition in the module's type
// table, resolved the same way a Scalar TypeIndex would be.
type Item struct {
	Kind ItemKind
	Fn   Function
	Ty   int
}

// FnBodyPhase tags which variant of FnBodyTable is live.
type FnBodyPhase int

const (
	FnBodyRaw FnBodyPhase = iota
	FnBodyBaked
)

// RawFnBody is the token run of a function body, copied out of the
// module's token buffer during the skeleton pass. Blank separator lines
// inside the body are not included.
type RawFnBody struct {
	Tokens []token.Token
}

// BakedFnBody is the ordered, typed expression list produced by the body
// baker.
type BakedFnBody struct {
	Exprs []Expr
}

// FnBodyTable is the Raw/Baked sum container for function bodies. Indices
// are stable across the Raw to Baked transition.
type FnBodyTable struct {
	Phase FnBodyPhase
	Raw   []RawFnBody
	Baked []BakedFnBody
}

// Add appends a raw body and returns its stable index.
func (t *FnBodyTable) Add(toks []token.Token) int {
	t.Raw = append(t.Raw, RawFnBody{Tokens: toks})
	return len(t.Raw) - 1
}
