package ast

import "github.com/oko-lang/oko/internal/span"

// TypedVariable is a name-span plus a TypeIndex: one slot of a field list
// or a function's parameter list. The surface syntax `a b c: T` expands to
// one TypedVariable per name, all sharing T.
type TypedVariable struct {
	Name span.Spanned[string]
	Type TypeIndex
}
