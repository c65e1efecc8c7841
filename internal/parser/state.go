// Package parser implements the two-phase oko parser described in
// spec.md §4: a skeleton pass that discovers top-level items while
// deferring function bodies, a juxtaposition-aware expression parser, and
// the type and body bakers that resolve what the skeleton pass left raw.
package parser

import (
	"github.com/oko-lang/oko/internal/ast"
	"github.com/oko-lang/oko/internal/span"
	"github.com/oko-lang/oko/internal/token"
)

// State is the mutable shared state carried through parsing: the token
// stream cursor, the growing type table, the growing function-body table,
// and the growing item table. It is the Go equivalent of the original's
// ParseInput — a single value owned by the driver, mutated in place by
// every pass.
type State struct {
	Filename string
	Source   string

	Stream token.Stream
	Types  ast.TypeTable
	Bodies ast.FnBodyTable
	Items  []ast.Item
}

// NewState builds the initial skeleton-phase state from a lexed token
// buffer.
func NewState(filename, source string, toks []token.Token) *State {
	return &State{
		Filename: filename,
		Source:   source,
		Stream:   token.New(toks),
	}
}

func (s *State) peek() (token.Token, bool) { return s.Stream.Peek() }
func (s *State) advance()                  { s.Stream.Advance() }
func (s *State) mark() int                 { return s.Stream.Mark() }
func (s *State) reset(m int)               { s.Stream.Reset(m) }
func (s *State) exhausted() bool           { return s.Stream.Exhausted() }

// endPosition is the position just past the last token, used for
// end-of-input diagnostics.
func (s *State) endPosition() span.Position {
	if len(s.Stream.Buf) == 0 {
		return span.Default
	}
	return s.Stream.Buf[len(s.Stream.Buf)-1].Span.End
}

// peekKind reports the kind of the token under the cursor, or "" at EOF.
func (s *State) peekKind() token.Kind {
	if t, ok := s.peek(); ok {
		return t.Kind
	}
	return ""
}

// skipNewlinesAndTabs strips the leading Newline/Tab run the body baker
// discards before parsing each statement expression.
func (s *State) skipNewlinesAndTabs() {
	for {
		t, ok := s.peek()
		if !ok || (t.Kind != token.Newline && t.Kind != token.Tab) {
			return
		}
		s.advance()
	}
}
