// Package token defines the lexical token vocabulary of oko and the
// addressable, seekable stream the parser drives.
package token

import "github.com/oko-lang/oko/internal/span"

// Kind identifies the lexical category of a Token, mirroring the
// TokenType-as-string-constant style used throughout this codebase's
// lexer packages.
type Kind string

const (
	// Structural
	Newline Kind = "NEWLINE"
	Tab     Kind = "TAB"

	// Identifiers
	Ident Kind = "IDENT"

	// Punctuation
	Arrow  Kind = "->"
	Colon  Kind = ":"
	Plus   Kind = "+"
	Minus  Kind = "-"
	Star   Kind = "*"
	Slash  Kind = "/"
	Comma  Kind = ","
	Eq     Kind = "="
	LParen Kind = "("
	RParen Kind = ")"
)

// Token is the smallest logical unit of oko source text.
type Token struct {
	Kind Kind
	// Text is the exact source slice this token was lexed from. For
	// Ident tokens this is the identifier name; for everything else it
	// is the punctuation/structural spelling.
	Text string
	Span span.Span
}

// AsSpannedIdent returns the token's text as a span.Spanned, valid only
// when Kind == Ident.
func (t Token) AsSpannedIdent() span.Spanned[string] {
	return span.Spanned[string]{Data: t.Text, Span: t.Span}
}
