// Package ast holds the module's data model: the type table, the item
// table, and the expression trees that result from baking. Every table in
// here comes in a Raw/Baked pair that shares one index space, so a Scalar
// TypeIndex or a function body index recorded during the skeleton pass
// stays valid after the corresponding baking pass runs.
package ast

import "github.com/oko-lang/oko/internal/span"

// UnaryOp is a prefix operator a builtin type may support.
type UnaryOp int

const (
	Pos UnaryOp = iota
	Neg
)

func (op UnaryOp) String() string {
	if op == Pos {
		return "+"
	}
	return "-"
}

// BinaryOp is an infix operator a builtin type may support.
type BinaryOp int

const (
	Mul BinaryOp = iota
	Div
	Add
	Sub
)

func (op BinaryOp) String() string {
	switch op {
	case Mul:
		return "*"
	case Div:
		return "/"
	case Add:
		return "+"
	default:
		return "-"
	}
}

// Builtin describes a type known to the compiler without a user-written
// definition, along with the operators it accepts.
type Builtin struct {
	Name   string
	Unary  []UnaryOp
	Binary []BinaryOp
}

func (b Builtin) supportsUnary(op UnaryOp) bool {
	for _, o := range b.Unary {
		if o == op {
			return true
		}
	}
	return false
}

func (b Builtin) supportsBinary(op BinaryOp) bool {
	for _, o := range b.Binary {
		if o == op {
			return true
		}
	}
	return false
}

// Builtins is the fixed set of types the type baker knows about without a
// user `ty` definition. Currently just i32.
var Builtins = []Builtin{
	{Name: "i32", Unary: []UnaryOp{Pos, Neg}, Binary: []BinaryOp{Mul, Div, Add, Sub}},
}

// LookupBuiltin returns the index into Builtins for a name, if any.
func LookupBuiltin(name string) (int, bool) {
	for i, b := range Builtins {
		if b.Name == name {
			return i, true
		}
	}
	return 0, false
}

// TypeIndexKind discriminates the two TypeIndex variants.
type TypeIndexKind int

const (
	Scalar TypeIndexKind = iota
	TupleIndex
)

// TypeIndex is a polymorphic reference to a type: either a scalar index
// into the current type table, or a structural tuple of further indices.
type TypeIndex struct {
	Kind  TypeIndexKind
	Index int // valid when Kind == Scalar
	Tuple []TypeIndex
}

// NewScalar builds a Scalar TypeIndex pointing at table index i.
func NewScalar(i int) TypeIndex { return TypeIndex{Kind: Scalar, Index: i} }

// NewTuple builds a Tuple TypeIndex over the given elements.
func NewTuple(elems []TypeIndex) TypeIndex { return TypeIndex{Kind: TupleIndex, Tuple: elems} }

// Unit is the empty tuple, oko's unit type.
func Unit() TypeIndex { return TypeIndex{Kind: TupleIndex, Tuple: []TypeIndex{}} }

// IsUnit reports whether t is the zero-element tuple.
func (t TypeIndex) IsUnit() bool {
	return t.Kind == TupleIndex && len(t.Tuple) == 0
}

// Equal is structural equality, ignoring nothing (TypeIndex carries no
// span of its own).
func (t TypeIndex) Equal(other TypeIndex) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind == Scalar {
		return t.Index == other.Index
	}
	if len(t.Tuple) != len(other.Tuple) {
		return false
	}
	for i := range t.Tuple {
		if !t.Tuple[i].Equal(other.Tuple[i]) {
			return false
		}
	}
	return true
}

// RawTypeBaseKind discriminates the two RawTypeBase variants.
type RawTypeBaseKind int

const (
	Stub RawTypeBaseKind = iota
	Backed
)

// RawTypeDefinition is a parsed `ty` block: a name and its ordered field
// list.
type RawTypeDefinition struct {
	Name   span.Spanned[string]
	Fields []TypedVariable
}

// RawTypeBase is one slot of the raw type table: either a placeholder
// inserted the first time a name was referenced, or the full definition
// once the parser reaches it.
type RawTypeBase struct {
	Kind RawTypeBaseKind
	Stub span.Spanned[string] // valid when Kind == Stub
	Def  RawTypeDefinition    // valid when Kind == Backed
}

// Name returns the referenced type name regardless of variant.
func (b RawTypeBase) Name() span.Spanned[string] {
	if b.Kind == Stub {
		return b.Stub
	}
	return b.Def.Name
}

// BakedTypeBaseKind discriminates the two BakedTypeBase variants.
type BakedTypeBaseKind int

const (
	BakedBuiltin BakedTypeBaseKind = iota
	TypeProduct
)

// BakedTypeBase is one slot of the baked type table.
type BakedTypeBase struct {
	Name         string
	Kind         BakedTypeBaseKind
	BuiltinIndex int             // valid when Kind == BakedBuiltin
	Fields       []TypedVariable // valid when Kind == TypeProduct
}

// TypeTablePhase tags which variant of TypeTable is live.
type TypeTablePhase int

const (
	TypeTableRaw TypeTablePhase = iota
	TypeTableBaked
)

// TypeTable is the sum container from spec.md §3: a raw vector during the
// skeleton pass, a baked vector afterwards, sharing one index space.
type TypeTable struct {
	Phase TypeTablePhase
	Raw   []RawTypeBase
	Baked []BakedTypeBase
}

// FindOrAddStub returns the index of an existing raw entry named name,
// inserting a new Stub if none exists yet.
func (t *TypeTable) FindOrAddStub(name span.Spanned[string]) int {
	for i, b := range t.Raw {
		if b.Name().Data == name.Data {
			return i
		}
	}
	t.Raw = append(t.Raw, RawTypeBase{Kind: Stub, Stub: name})
	return len(t.Raw) - 1
}

// AddDefinition inserts a Backed entry for def, reusing a prior Stub slot
// with the same name if one exists. It reports ok=false when a Backed
// entry with the same name already exists (duplicate type definition).
func (t *TypeTable) AddDefinition(def RawTypeDefinition) (index int, ok bool) {
	for i, b := range t.Raw {
		if b.Name().Data != def.Name.Data {
			continue
		}
		if b.Kind == Backed {
			return i, false
		}
		t.Raw[i] = RawTypeBase{Kind: Backed, Def: def}
		return i, true
	}
	t.Raw = append(t.Raw, RawTypeBase{Kind: Backed, Def: def})
	return len(t.Raw) - 1, true
}

// TypeName returns the display name of a TypeIndex, resolving Scalar
// references against the baked table. Tuple names are rendered
// parenthesised, e.g. "(i32, i32)"; unit renders as "()".
func (t *TypeTable) TypeName(idx TypeIndex) string {
	if idx.Kind == Scalar {
		return t.Baked[idx.Index].Name
	}
	if len(idx.Tuple) == 0 {
		return "()"
	}
	s := "("
	for i, e := range idx.Tuple {
		if i > 0 {
			s += ", "
		}
		s += t.TypeName(e)
	}
	return s + ")"
}

// SupportsUnary reports whether idx accepts op, true only for scalar
// builtins that declare it.
func (t *TypeTable) SupportsUnary(idx TypeIndex, op UnaryOp) bool {
	if idx.Kind != Scalar {
		return false
	}
	base := t.Baked[idx.Index]
	return base.Kind == BakedBuiltin && Builtins[base.BuiltinIndex].supportsUnary(op)
}

// SupportsBinary reports whether left and right are the same scalar
// builtin that declares op.
func (t *TypeTable) SupportsBinary(left, right TypeIndex, op BinaryOp) bool {
	if left.Kind != Scalar || right.Kind != Scalar || left.Index != right.Index {
		return false
	}
	base := t.Baked[left.Index]
	return base.Kind == BakedBuiltin && Builtins[base.BuiltinIndex].supportsBinary(op)
}
