package lexer

import (
	"testing"

	"github.com/oko-lang/oko/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, toks []token.Token, want []token.Kind) {
	t.Helper()
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %q, want %q (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestLexIdentifiersAndPunctuation(t *testing.T) {
	toks, d := Lex("t.oko", "add a b -> i32")
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	assertKinds(t, toks, []token.Kind{
		token.Ident, token.Ident, token.Ident, token.Arrow, token.Ident,
	})
	if toks[0].Text != "add" || toks[4].Text != "i32" {
		t.Fatalf("unexpected token text: %+v", toks)
	}
}

func TestLexLeadingTabIsOnlySignificantAtLineStart(t *testing.T) {
	// The body line is indented with a single tab; the space before "b"
	// mid-line must not produce a Tab token.
	toks, d := Lex("t.oko", "f a\n\ta b\n")
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	assertKinds(t, toks, []token.Kind{
		token.Ident, token.Ident, token.Newline,
		token.Tab, token.Ident, token.Ident, token.Newline,
	})
}

func TestLexFourSpaceRunBecomesTab(t *testing.T) {
	toks, d := Lex("t.oko", "f a\n    a\n")
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	assertKinds(t, toks, []token.Kind{
		token.Ident, token.Ident, token.Newline,
		token.Tab, token.Ident, token.Newline,
	})
}

func TestLexMidLineTabIsDiscarded(t *testing.T) {
	toks, d := Lex("t.oko", "a\tb")
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	assertKinds(t, toks, []token.Kind{token.Ident, token.Ident})
}

func TestLexIdentSpanExtractsExactText(t *testing.T) {
	src := "  foo"
	toks, d := Lex("t.oko", src)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	if len(toks) != 1 {
		t.Fatalf("expected a single token, got %v", toks)
	}
	lines := toks[0].Span.Lines(src)
	if len(lines) != 1 || lines[0] != "foo" {
		t.Fatalf("span did not extract identifier text: %q", lines)
	}
}

func TestLexUnexpectedRuneDiagnostic(t *testing.T) {
	_, d := Lex("t.oko", "a $ b")
	if d == nil {
		t.Fatal("expected a diagnostic for an illegal rune")
	}
	if d.Stage != "lexer" {
		t.Fatalf("expected lexer stage, got %q", d.Stage)
	}
	if d.Clarifying != "unexpected `$`" {
		t.Fatalf("unexpected clarifying message: %q", d.Clarifying)
	}
}

func TestLexTokenTextConcatenationRoundTrips(t *testing.T) {
	src := "f a b -> i32\n\ta + b\n"
	toks, d := Lex("t.oko", src)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	var rebuilt string
	for _, tok := range toks {
		rebuilt += tok.Text
	}
	// Discarded spaces are the only thing allowed to differ from the
	// source, so both are compared with spaces removed. This source has no
	// mid-line tabs, the other kind of discarded whitespace.
	strip := func(s string) string {
		out := make([]byte, 0, len(s))
		for i := 0; i < len(s); i++ {
			if s[i] != ' ' {
				out = append(out, s[i])
			}
		}
		return string(out)
	}
	if strip(rebuilt) != strip(src) {
		t.Fatalf("round trip mismatch:\n got: %q\nwant: %q", rebuilt, src)
	}
}
