package compile

import (
	"strings"
	"testing"
)

func mustCompile(t *testing.T, src string) {
	t.Helper()
	_, d := Compile("t.oko", src)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %s: %s", d.Message, d.Clarifying)
	}
}

func mustFail(t *testing.T, src, wantMessage string) {
	t.Helper()
	_, d := Compile("t.oko", src)
	if d == nil {
		t.Fatal("expected compilation to fail, it succeeded")
	}
	if !strings.Contains(d.Message, wantMessage) {
		t.Fatalf("diagnostic message %q does not contain %q", d.Message, wantMessage)
	}
}

func TestCompileBuiltinArithmetic(t *testing.T) {
	mustCompile(t, "add a b : i32 -> i32\n\ta + b\n")
}

func TestCompileJuxtaposedNestedCall(t *testing.T) {
	src := "inc a : i32 -> i32\n\ta + a\n\n" +
		"add a b : i32 -> i32\n\ta + b\n\n" +
		"combine a b : i32 -> i32\n\tadd inc a b\n"
	m, d := Compile("t.oko", src)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %s: %s", d.Message, d.Clarifying)
	}
	out := m.Format()
	if !strings.Contains(out, "add inc a b") {
		t.Fatalf("expected nested call to print as add inc a b, got:\n%s", out)
	}
}

func TestCompileArityMismatch(t *testing.T) {
	src := "add a b : i32 -> i32\n\ta + b\n\n" +
		"main a : i32 -> i32\n\tadd a\n"
	mustFail(t, src, "wrong number of arguments")
}

func TestCompileUndefinedType(t *testing.T) {
	mustFail(t, "f a : Foo -> Foo\n\ta\n", "has no definition")
}

func TestCompileReturnTypeMismatch(t *testing.T) {
	mustFail(t, "f a : i32 -> ()\n\ta\n", "return type mismatch")
}

func TestCompileNonLastNonUnitExpression(t *testing.T) {
	src := "f a b : i32 -> i32\n\ta\n\tb\n"
	mustFail(t, src, "non-return expression")
}

func TestCompileEmptyBody(t *testing.T) {
	mustFail(t, "f a : i32 -> i32\n\t\n", "empty body")
}

func TestCompileTupleAndUnit(t *testing.T) {
	mustCompile(t, "pair a b : i32 -> (i32, i32)\n\t(a, b)\n")
	mustCompile(t, "drop a : i32 -> ()\n\t()\n")
}

func TestCompileSpacingRuleChangesParse(t *testing.T) {
	// "a +b" is uneven spacing: the operator does not bind, so the body
	// becomes two statements ("a", then unary "+b") instead of one binary
	// expression. Since the non-last one is i32, not unit, this must fail
	// where the evenly-spaced form would succeed.
	even := "f a b : i32 -> i32\n\ta + b\n"
	mustCompile(t, even)

	uneven := "f a b : i32 -> i32\n\ta +b\n"
	mustFail(t, uneven, "non-return expression")
}
