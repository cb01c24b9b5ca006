package wit

import "github.com/componentize-wit/witcodegen/internal/ordered"

// Direction records which side of the Component Model ABI boundary
// implements a function or owns an interface: the host (Import) or the
// guest component (Export). See GLOSSARY.
type Direction int

const (
	DirectionImport Direction = iota
	DirectionExport
)

func (d Direction) String() string {
	if d == DirectionExport {
		return "export"
	}
	return "import"
}

// TypeRef is the canonical textual form of a WIT type reference, e.g.
// "u32", "list<string>", or a user-defined type name. See §3 Data
// Model, "Type reference".
type TypeRef string

// Field is a (name, type-reference) pair: a record field, variant case
// payload owner, or function parameter/result.
type Field struct {
	Name string
	Type TypeRef
}

// RecordType is a named, ordered sequence of fields.
type RecordType struct {
	Name   string
	Fields []Field
}

// VariantCase is one case of a VariantType: a name plus an optional
// payload type. Case order defines the discriminant ordinal.
type VariantCase struct {
	Name    string
	Type    TypeRef
	HasType bool
}

// VariantType is a named, ordered sequence of cases.
type VariantType struct {
	Name  string
	Cases []VariantCase
}

// EnumType is a named, ordered sequence of case names; order defines
// the discriminant ordinal.
type EnumType struct {
	Name  string
	Cases []string
}

// FuncSig is a function signature: a name, ordered parameters, ordered
// results, and a direction. Results may be empty (void), hold a single
// unnamed entry (the "-> T" form), or hold several named entries (the
// "-> (name1: T1, name2: T2, …)" form).
type FuncSig struct {
	Name      string
	Params    []Field
	Results   []Field
	Direction Direction
}

// Interface is a named group of type and function declarations sharing
// a namespace, scoped to one package and one [Direction]. An interface
// referenced under both "import" and "export" in a world is represented
// as two distinct Interface records (Invariant 2).
type Interface struct {
	Package   Ident
	Name      string
	Direction Direction

	Records  *ordered.Map[string, *RecordType]
	Variants *ordered.Map[string, *VariantType]
	Enums    *ordered.Map[string, *EnumType]

	Functions []*FuncSig

	// Synthetic is true when this interface was materialized to host a
	// single world-level standalone function (§3 Data Model, "Interface").
	Synthetic bool
}

// NewInterface returns an Interface with its ordered type maps initialized.
func NewInterface(pkg Ident, name string, dir Direction) *Interface {
	return &Interface{
		Package:   pkg,
		Name:      name,
		Direction: dir,
		Records:   ordered.New[string, *RecordType](),
		Variants:  ordered.New[string, *VariantType](),
		Enums:     ordered.New[string, *EnumType](),
	}
}

// clone returns a copy of iface with its direction changed to dir.
// Type declarations are shared with the original (they are immutable
// once built, per §3 "Lifecycles"), but the function slice is copied so
// each function's own Direction field matches the clone's interface.
func (iface *Interface) clone(dir Direction) *Interface {
	c := *iface
	c.Direction = dir
	c.Functions = make([]*FuncSig, len(iface.Functions))
	for i, fn := range iface.Functions {
		f := *fn
		f.Direction = dir
		c.Functions[i] = &f
	}
	return &c
}

// IR is the session-scoped list of Interface records produced by parsing
// a single WIT file. All records are constructed during parsing,
// categorized by world direction, and consumed once by the emitter; they
// are immutable thereafter (§3 Lifecycles).
type IR struct {
	Package    Ident
	Interfaces []*Interface
}
