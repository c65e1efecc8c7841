// Package diag defines the compiler's single diagnostic type and the
// formatter that renders it. Every front-end stage that can fail returns
// one of these instead of a plain error, so the driver never has to know
// which stage produced the failure.
package diag

import "github.com/oko-lang/oko/internal/span"

// Stage identifies which compiler phase produced the diagnostic.
type Stage string

const (
	StageLexer    Stage = "lexer"
	StageSkeleton Stage = "skeleton"
	StageTypeBake Stage = "type-bake"
	StageBodyBake Stage = "body-bake"
)

// Severity captures how impactful the diagnostic is. The front-end only
// ever produces errors (spec.md §1: no error recovery, the first error
// terminates compilation) but the type carries warning/note for symmetry
// with the rest of the corpus's diagnostic types.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Diagnostic is a single rich error: a location, a headline message, a
// clarifying message printed near the caret, and enough of the source to
// render both.
type Diagnostic struct {
	Stage      Stage
	Severity   Severity
	Span       span.Span
	Message    string
	Clarifying string
	Help       string
	Filename   string
	Source     string
}

// Error satisfies the error interface so a Diagnostic can be returned (or
// wrapped) anywhere a plain error is expected.
func (d *Diagnostic) Error() string {
	if d.Clarifying == "" {
		return d.Message
	}
	return d.Message + ": " + d.Clarifying
}
