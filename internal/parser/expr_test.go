package parser

import (
	"testing"

	"github.com/oko-lang/oko/internal/ast"
	"github.com/oko-lang/oko/internal/lexer"
	"github.com/oko-lang/oko/internal/span"
)

// i32Types builds a type table with i32 already baked at index 0, enough
// for expression-level tests that never touch the skeleton or type
// baker.
func i32Types() ast.TypeTable {
	return ast.TypeTable{
		Phase: ast.TypeTableBaked,
		Baked: []ast.BakedTypeBase{{Name: "i32", Kind: ast.BakedBuiltin, BuiltinIndex: 0}},
	}
}

func i32Var(name string) ast.TypedVariable {
	return ast.TypedVariable{Name: span.Spanned[string]{Data: name}, Type: ast.NewScalar(0)}
}

// parseBody lexes body on its own (as if it were an already-extracted raw
// function body) and parses a single expression from it against vars.
func parseBody(t *testing.T, body string, vars []ast.TypedVariable) (ast.Expr, *State) {
	t.Helper()
	toks, d := lexer.Lex("t.oko", body)
	if d != nil {
		t.Fatalf("lex error: %v", d)
	}
	s := NewState("t.oko", body, toks)
	s.Types = i32Types()
	ctx := NewScope(vars, nil, &s.Types)
	e, d := ParseExpr(s, ctx)
	if d != nil {
		t.Fatalf("parse error: %s: %s", d.Message, d.Clarifying)
	}
	return e, s
}

func TestSpacingRuleEvenSingleSpaceIsBinary(t *testing.T) {
	e, _ := parseBody(t, "a + b", []ast.TypedVariable{i32Var("a"), i32Var("b")})
	if _, ok := e.(*ast.BinaryExpr); !ok {
		t.Fatalf("expected a BinaryExpr, got %T", e)
	}
}

func TestSpacingRuleEvenNoSpaceIsBinary(t *testing.T) {
	e, _ := parseBody(t, "a+b", []ast.TypedVariable{i32Var("a"), i32Var("b")})
	if _, ok := e.(*ast.BinaryExpr); !ok {
		t.Fatalf("expected a BinaryExpr, got %T", e)
	}
}

func TestSpacingRuleUnevenLeftDoesNotConsumeOperator(t *testing.T) {
	// "a +b": a space before the operator but none after. The operator
	// must not bind here; ParseExpr should return just "a" and leave "+b"
	// for the caller.
	e, s := parseBody(t, "a +b", []ast.TypedVariable{i32Var("a"), i32Var("b")})
	ident, ok := e.(*ast.IdentExpr)
	if !ok {
		t.Fatalf("expected an IdentExpr, got %T", e)
	}
	if ident.Name.Data != "a" {
		t.Fatalf("expected ident a, got %s", ident.Name.Data)
	}
	tok, ok := s.peek()
	if !ok || tok.Kind != "+" {
		t.Fatalf("expected the + token to remain unconsumed, got %+v (ok=%v)", tok, ok)
	}
}

func TestSpacingRuleUnevenRightDoesNotConsumeOperator(t *testing.T) {
	// "a- b": no space before the operator, one space after.
	e, s := parseBody(t, "a- b", []ast.TypedVariable{i32Var("a"), i32Var("b")})
	if _, ok := e.(*ast.IdentExpr); !ok {
		t.Fatalf("expected an IdentExpr, got %T", e)
	}
	tok, ok := s.peek()
	if !ok || tok.Kind != "-" {
		t.Fatalf("expected the - token to remain unconsumed, got %+v (ok=%v)", tok, ok)
	}
}

func TestJuxtaposedCallOutermostSingleArgument(t *testing.T) {
	// "g a" where g has arity 1, as a lone expression: the outermost call
	// collects arguments until the end of input, which here is exactly one.
	addFn := ast.Function{
		Name: span.Spanned[string]{Data: "g"},
		Params: []ast.TypedVariable{i32Var("x")},
		Ret:    ast.NewScalar(0),
	}
	toks, d := lexer.Lex("t.oko", "g a")
	if d != nil {
		t.Fatalf("lex error: %v", d)
	}
	s := NewState("t.oko", "g a", toks)
	s.Types = i32Types()
	items := []ast.Item{{Kind: ast.ItemFn, Fn: addFn}}
	ctx := NewScope([]ast.TypedVariable{i32Var("a")}, items, &s.Types)

	e, d := ParseExpr(s, ctx)
	if d != nil {
		t.Fatalf("parse error: %s: %s", d.Message, d.Clarifying)
	}
	call, ok := e.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected a CallExpr, got %T", e)
	}
	if len(call.Args) != 1 {
		t.Fatalf("expected exactly 1 argument, got %d", len(call.Args))
	}
}
