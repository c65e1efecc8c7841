package parser

import "github.com/oko-lang/oko/internal/ast"

// Scope is the expression parser's context object (spec.md §4.4): the
// parameters visible in the function body currently being parsed, the
// global function table, the type table used to check operators and
// argument types, and the current call-nesting depth. It is an immutable
// value passed by value — no method here mutates it, Deeper returns a
// new value instead of modifying in place.
type Scope struct {
	Vars  []ast.TypedVariable
	Items []ast.Item
	Types *ast.TypeTable
	depth int
}

// NewScope builds the top-level (depth 0) context for one function body.
func NewScope(vars []ast.TypedVariable, items []ast.Item, types *ast.TypeTable) Scope {
	return Scope{Vars: vars, Items: items, Types: types}
}

// Deeper returns a derived context for parsing one call argument, with
// the nesting counter incremented.
func (c Scope) Deeper() Scope {
	return Scope{Vars: c.Vars, Items: c.Items, Types: c.Types, depth: c.depth + 1}
}

func (c Scope) lookupVariable(name string) (ast.TypedVariable, bool) {
	for _, v := range c.Vars {
		if v.Name.Data == name {
			return v, true
		}
	}
	return ast.TypedVariable{}, false
}

func (c Scope) lookupFunction(name string) (int, ast.Function, bool) {
	for i, item := range c.Items {
		if item.Kind == ast.ItemFn && item.Fn.Name.Data == name {
			return i, item.Fn, true
		}
	}
	return 0, ast.Function{}, false
}
