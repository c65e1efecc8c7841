package parser

import (
	"github.com/oko-lang/oko/internal/ast"
	"github.com/oko-lang/oko/internal/diag"
	"github.com/oko-lang/oko/internal/token"
)

// ParseModule runs the skeleton pass: it discovers every top-level item,
// deferring function bodies to raw token slices and leaving unresolved
// type references as stubs in the type table.
func ParseModule(s *State) *diag.Diagnostic {
	for {
		s.skipNewlines()
		if s.exhausted() {
			return nil
		}
		if d := s.parseItem(); d != nil {
			return d
		}
	}
}

func (s *State) skipNewlines() {
	for {
		t, ok := s.peek()
		if !ok || t.Kind != token.Newline {
			return
		}
		s.advance()
	}
}

// parseItem tries a type definition and a function definition from the
// same starting cursor and commits to whichever consumed more tokens
// before failing — the longest-match tie-break spec.md §4.2 calls for.
func (s *State) parseItem() *diag.Diagnostic {
	start := s.mark()

	tyErr := s.tryTypeDef()
	tyEnd := s.mark()

	s.reset(start)
	fnErr := s.tryFnDef()
	fnEnd := s.mark()

	switch {
	case tyErr == nil && fnErr == nil:
		// Not reachable for this grammar: a type header and a function
		// header cannot both validly describe the same token run. The
		// function attempt ran last and already committed its item at
		// fnEnd, so keep it rather than double-commit by re-running.
		return nil
	case fnErr == nil:
		return nil
	case tyErr == nil:
		s.reset(tyEnd)
		return nil
	case tyEnd >= fnEnd:
		s.reset(tyEnd)
		return tyErr
	default:
		return fnErr
	}
}

func (s *State) tryTypeDef() *diag.Diagnostic {
	kw, ok := s.peek()
	if !ok || kw.Kind != token.Ident || kw.Text != "ty" {
		return s.expected(diag.StageSkeleton, "`ty`")
	}
	s.advance()

	nameTok, ok := s.peek()
	if !ok || nameTok.Kind != token.Ident {
		return s.expected(diag.StageSkeleton, "a type name")
	}
	s.advance()
	name := nameTok.AsSpannedIdent()

	if d := s.expectNewline(diag.StageSkeleton); d != nil {
		return d
	}

	fields, d := s.parseIndentedFieldBlock()
	if d != nil {
		return d
	}

	idx, ok := s.Types.AddDefinition(ast.RawTypeDefinition{Name: name, Fields: fields})
	if !ok {
		return s.diagnostic(diag.StageSkeleton, name.Span,
			"duplicating type definitions", "`"+name.Data+"` is already defined")
	}
	s.Items = append(s.Items, ast.Item{Kind: ast.ItemTy, Ty: idx})
	return nil
}

func (s *State) parseIndentedFieldBlock() ([]ast.TypedVariable, *diag.Diagnostic) {
	var fields []ast.TypedVariable
	for {
		s.skipNewlines()
		if s.peekKind() != token.Tab {
			break
		}
		s.advance()
		group, d := s.parseTypedVariableGroup()
		if d != nil {
			return nil, d
		}
		fields = append(fields, group...)
		if d := s.expectNewline(diag.StageSkeleton); d != nil {
			return nil, d
		}
	}
	if len(fields) == 0 {
		return nil, s.expected(diag.StageSkeleton, "an indented field")
	}
	return fields, nil
}

// parseTypedVariableGroup parses the surface form `name+ : Type`,
// expanding it into one TypedVariable per name.
func (s *State) parseTypedVariableGroup() ([]ast.TypedVariable, *diag.Diagnostic) {
	var names []token.Token
	for {
		t, ok := s.peek()
		if !ok || t.Kind != token.Ident {
			break
		}
		names = append(names, t)
		s.advance()
	}
	if len(names) == 0 {
		return nil, s.expected(diag.StageSkeleton, "a name")
	}
	if t, ok := s.peek(); !ok || t.Kind != token.Colon {
		return nil, s.expected(diag.StageSkeleton, "`:`")
	}
	s.advance()

	ty, d := s.parseTypeRef()
	if d != nil {
		return nil, d
	}
	vars := make([]ast.TypedVariable, len(names))
	for i, n := range names {
		vars[i] = ast.TypedVariable{Name: n.AsSpannedIdent(), Type: ty}
	}
	return vars, nil
}

// parseTypeRef parses the `type` production: a bare name, resolved
// against the raw type table as a stub, or a parenthesised group. A
// single parenthesised type with no trailing comma is that type itself;
// otherwise the group is a tuple (zero elements is unit).
func (s *State) parseTypeRef() (ast.TypeIndex, *diag.Diagnostic) {
	if t, ok := s.peek(); ok && t.Kind == token.Ident {
		s.advance()
		idx := s.Types.FindOrAddStub(t.AsSpannedIdent())
		return ast.NewScalar(idx), nil
	}

	if t, ok := s.peek(); !ok || t.Kind != token.LParen {
		return ast.TypeIndex{}, s.expected(diag.StageSkeleton, "a type")
	}
	s.advance()

	var elems []ast.TypeIndex
	trailingComma := false
	for {
		if t, ok := s.peek(); ok && t.Kind == token.RParen {
			break
		}
		ty, d := s.parseTypeRef()
		if d != nil {
			return ast.TypeIndex{}, d
		}
		elems = append(elems, ty)
		if t, ok := s.peek(); ok && t.Kind == token.Comma {
			s.advance()
			trailingComma = true
			continue
		}
		trailingComma = false
		break
	}
	if t, ok := s.peek(); !ok || t.Kind != token.RParen {
		return ast.TypeIndex{}, s.expected(diag.StageSkeleton, "`)`")
	}
	s.advance()

	if len(elems) == 1 && !trailingComma {
		return elems[0], nil
	}
	return ast.NewTuple(elems), nil
}

func (s *State) tryFnDef() *diag.Diagnostic {
	nameTok, ok := s.peek()
	if !ok || nameTok.Kind != token.Ident {
		return s.expected(diag.StageSkeleton, "a function name")
	}
	s.advance()
	name := nameTok.AsSpannedIdent()

	params, d := s.parseParams()
	if d != nil {
		return d
	}

	ret := ast.Unit()
	if t, ok := s.peek(); ok && t.Kind == token.Arrow {
		s.advance()
		r, d := s.parseTypeRef()
		if d != nil {
			return d
		}
		ret = r
	}

	if d := s.expectNewline(diag.StageSkeleton); d != nil {
		return d
	}

	body, d := s.captureIndentedBlock()
	if d != nil {
		return d
	}
	bodyIdx := s.Bodies.Add(body)

	s.Items = append(s.Items, ast.Item{Kind: ast.ItemFn, Fn: ast.Function{
		Name: name, Params: params, Ret: ret, Body: bodyIdx,
	}})
	return nil
}

// parseParams reads `name+ : Type` groups separated by commas, stopping
// at `->`, end-of-input, or a newline.
func (s *State) parseParams() ([]ast.TypedVariable, *diag.Diagnostic) {
	var params []ast.TypedVariable
	for {
		t, ok := s.peek()
		if !ok || t.Kind == token.Arrow || t.Kind == token.Newline {
			break
		}
		group, d := s.parseTypedVariableGroup()
		if d != nil {
			return nil, d
		}
		params = append(params, group...)
		if t, ok := s.peek(); ok && t.Kind == token.Comma {
			s.advance()
			continue
		}
		break
	}
	return params, nil
}

// captureIndentedBlock captures a function body as a raw token slice
// without parsing it, scanning until a line whose leading tab count is
// less than 1. Blank separator lines within the block are tolerated.
func (s *State) captureIndentedBlock() ([]token.Token, *diag.Diagnostic) {
	var toks []token.Token
	for {
		s.skipNewlines()
		if s.peekKind() != token.Tab {
			break
		}
		for {
			t, ok := s.peek()
			if !ok {
				return toks, nil
			}
			toks = append(toks, t)
			s.advance()
			if t.Kind == token.Newline {
				break
			}
		}
	}
	if len(toks) == 0 {
		return nil, s.expected(diag.StageSkeleton, "an indented function body")
	}
	return toks, nil
}
