// Package compile drives the front-end pipeline end to end: lex, parse
// the item skeleton, bake types, bake bodies. It is the single entry
// point both the CLI driver and the test suite use.
package compile

import (
	"strings"

	"github.com/oko-lang/oko/internal/ast"
	"github.com/oko-lang/oko/internal/diag"
	"github.com/oko-lang/oko/internal/lexer"
	"github.com/oko-lang/oko/internal/parser"
)

// Compile runs the full pipeline over source, attributing diagnostics to
// filename. On success it returns the fully baked module; the first
// diagnostic from any stage terminates the pipeline, matching spec.md §7.
func Compile(filename, source string) (*ast.Module, *diag.Diagnostic) {
	// Token spans are positions in the text after the lexer's four-space to
	// tab rewrite, so the parser's diagnostics and the module keep that text.
	source = strings.ReplaceAll(source, "    ", "\t")
	toks, d := lexer.Lex(filename, source)
	if d != nil {
		return nil, d
	}

	state := parser.NewState(filename, source, toks)

	if d := parser.ParseModule(state); d != nil {
		return nil, d
	}
	if d := parser.BakeTypes(state); d != nil {
		return nil, d
	}
	if d := parser.BakeBodies(state); d != nil {
		return nil, d
	}

	return &ast.Module{
		Filename: filename,
		Source:   source,
		Tokens:   toks,
		Types:    state.Types,
		FnBodies: state.Bodies,
		Items:    state.Items,
	}, nil
}
