package parser

import (
	"github.com/oko-lang/oko/internal/diag"
	"github.com/oko-lang/oko/internal/span"
	"github.com/oko-lang/oko/internal/token"
)

func (s *State) diagnostic(stage diag.Stage, sp span.Span, message, clarifying string) *diag.Diagnostic {
	return &diag.Diagnostic{
		Stage:      stage,
		Severity:   diag.SeverityError,
		Span:       sp,
		Message:    message,
		Clarifying: clarifying,
		Filename:   s.Filename,
		Source:     s.Source,
	}
}

// expected builds an "expected X" diagnostic at the current cursor, or at
// end-of-input if the stream is exhausted.
func (s *State) expected(stage diag.Stage, want string) *diag.Diagnostic {
	if tok, ok := s.peek(); ok {
		return s.diagnostic(stage, tok.Span, "expected "+want, "found `"+tok.Text+"`")
	}
	eof := span.ExtendByOne(s.endPosition())
	return s.diagnostic(stage, eof, "expected "+want, "reached end of input")
}

// expectNewline consumes the newline a header line (type/fn/field) must
// end with. End of input also satisfies it, since a trailing item can be
// the last thing in the file with no final newline.
func (s *State) expectNewline(stage diag.Stage) *diag.Diagnostic {
	if s.exhausted() {
		return nil
	}
	t, ok := s.peek()
	if !ok || t.Kind != token.Newline {
		return s.expected(stage, "a newline")
	}
	s.advance()
	return nil
}
