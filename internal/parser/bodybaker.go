package parser

import (
	"fmt"

	"github.com/oko-lang/oko/internal/ast"
	"github.com/oko-lang/oko/internal/diag"
	"github.com/oko-lang/oko/internal/token"
)

// BakeBodies parses each function's captured raw body (spec.md §4.5). For
// the duration of one function it swaps in the token stream captured for
// that body, restoring the module's real stream before moving on to the
// next.
func BakeBodies(s *State) *diag.Diagnostic {
	baked := make([]ast.BakedFnBody, len(s.Bodies.Raw))
	for _, item := range s.Items {
		if item.Kind != ast.ItemFn {
			continue
		}
		fn := item.Fn
		saved := s.Stream
		s.Stream = token.New(s.Bodies.Raw[fn.Body].Tokens)

		exprs, d := bakeOneBody(s, fn)

		s.Stream = saved
		if d != nil {
			return d
		}
		baked[fn.Body] = ast.BakedFnBody{Exprs: exprs}
	}
	s.Bodies.Baked = baked
	s.Bodies.Phase = ast.FnBodyBaked
	return nil
}

func bakeOneBody(s *State, fn ast.Function) ([]ast.Expr, *diag.Diagnostic) {
	ctx := NewScope(fn.Params, s.Items, &s.Types)

	var exprs []ast.Expr
	for {
		s.skipNewlinesAndTabs()
		if s.exhausted() {
			break
		}
		e, d := ParseExpr(s, ctx)
		if d != nil {
			return nil, d
		}
		exprs = append(exprs, e)
	}

	if len(exprs) == 0 {
		return nil, &diag.Diagnostic{
			Stage: diag.StageBodyBake, Severity: diag.SeverityError,
			Span: fn.Name.Span, Message: "functions cannot have empty body",
			Help: "try using `pass`", Filename: s.Filename, Source: s.Source,
		}
	}

	last := exprs[len(exprs)-1]
	if !last.ResultType().Equal(fn.Ret) {
		return nil, s.diagnostic(diag.StageBodyBake, last.Span(), "return type mismatch",
			fmt.Sprintf("expected `%s`, got `%s`", s.Types.TypeName(fn.Ret), s.Types.TypeName(last.ResultType())))
	}
	for _, e := range exprs[:len(exprs)-1] {
		if !e.ResultType().IsUnit() {
			return nil, &diag.Diagnostic{
				Stage: diag.StageBodyBake, Severity: diag.SeverityError,
				Span: e.Span(), Message: "non-return expression should have `()` type",
				Help: "try using `drop`", Filename: s.Filename, Source: s.Source,
			}
		}
	}
	return exprs, nil
}
