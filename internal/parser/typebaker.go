package parser

import (
	"github.com/oko-lang/oko/internal/ast"
	"github.com/oko-lang/oko/internal/diag"
)

// BakeTypes resolves the raw type table into a baked one, preserving
// indices (spec.md §4.3): every Stub must match a builtin, every Backed
// entry becomes a TypeProduct carrying its field list.
func BakeTypes(s *State) *diag.Diagnostic {
	baked := make([]ast.BakedTypeBase, len(s.Types.Raw))
	for i, raw := range s.Types.Raw {
		switch raw.Kind {
		case ast.Stub:
			name := raw.Stub
			builtinIdx, ok := ast.LookupBuiltin(name.Data)
			if !ok {
				return s.diagnostic(diag.StageTypeBake, name.Span,
					"the type `"+name.Data+"` has no definition", "")
			}
			baked[i] = ast.BakedTypeBase{Name: name.Data, Kind: ast.BakedBuiltin, BuiltinIndex: builtinIdx}
		case ast.Backed:
			baked[i] = ast.BakedTypeBase{Name: raw.Def.Name.Data, Kind: ast.TypeProduct, Fields: raw.Def.Fields}
		}
	}
	s.Types.Baked = baked
	s.Types.Phase = ast.TypeTableBaked
	return nil
}
