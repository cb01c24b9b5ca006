package wit

// File is the concrete syntax tree produced by the [Parser] for one WIT
// source file: a single optional package declaration followed by a
// sequence of top-level declarations (interfaces and worlds), in source
// order.
type File struct {
	Package *PackageDeclNode
	Decls   []Decl
}

// Decl is a top-level declaration: an [InterfaceDecl] or a [WorldDecl].
type Decl interface {
	declNode()
}

// PackageDeclNode is the parsed form of a "package ns:name[@version];"
// declaration.
type PackageDeclNode struct {
	Namespace string
	Name      string
	Version   string // raw semver text, empty if absent
	Pos       Position
}

// NamedType is a (name, type-text) pair as it appears in source, before
// the type mapper canonicalizes the type text.
type NamedType struct {
	Name string
	Type string
}

// InterfaceDecl is a top-level "interface name { … }" block.
type InterfaceDecl struct {
	Name  string
	Items []InterfaceItem
	Pos   Position
}

func (*InterfaceDecl) declNode() {}

// InterfaceItem is one member of an interface body: a type definition,
// a function item, a use declaration, or a recognized-but-skipped
// construct (resource, include, flags, type alias).
type InterfaceItem interface {
	interfaceItemNode()
}

// RecordDecl is a "record name { field: type, … }" item.
type RecordDecl struct {
	Name   string
	Fields []NamedType
	Pos    Position
}

func (*RecordDecl) interfaceItemNode() {}

// VariantCaseNode is one case of a VariantDecl.
type VariantCaseNode struct {
	Name    string
	Type    string
	HasType bool
}

// VariantDecl is a "variant name { case, case(type), … }" item.
type VariantDecl struct {
	Name  string
	Cases []VariantCaseNode
	Pos   Position
}

func (*VariantDecl) interfaceItemNode() {}

// EnumDecl is an "enum name { case, … }" item.
type EnumDecl struct {
	Name  string
	Cases []string
	Pos   Position
}

func (*EnumDecl) interfaceItemNode() {}

// FuncItemDecl is a "name: func(params) -> results;" item, used both as
// an interface member and as a world-level standalone function.
type FuncItemDecl struct {
	Name    string
	Params  []NamedType
	Results []NamedType // empty: void; one entry with Name=="": unnamed single result
	Pos     Position
}

func (*FuncItemDecl) interfaceItemNode() {}

// UseDecl is a "use path.{names};" item inside an interface body.
type UseDecl struct {
	Path string
	Pos  Position
}

func (*UseDecl) interfaceItemNode() {}

// SkippedItem is a recognized-but-unimplemented interface member:
// resource, include, flags, or a type alias. The parser also returns one
// with Kind "error" for an item it could not parse. The builder emits a
// warning diagnostic for each (§9 Open Question "resource/async").
type SkippedItem struct {
	Kind string // "resource", "flags", "type", "include", "error"
	Name string
	Pos  Position
}

func (*SkippedItem) interfaceItemNode() {}

// WorldItemKind distinguishes the three surface forms a world's
// import/export item can take (§4.2).
type WorldItemKind int

const (
	// WorldItemPath references an already-declared interface by name
	// or dotted path ("import foo;" or "import ns:pkg/foo;").
	WorldItemPath WorldItemKind = iota
	// WorldItemFunc declares a standalone function ("import name: func(...);").
	WorldItemFunc
	// WorldItemInterface declares an inline interface body
	// ("import name: interface { … };").
	WorldItemInterface
)

// WorldItem is one "import"/"export" clause of a [WorldDecl].
type WorldItem struct {
	Direction Direction
	Kind      WorldItemKind

	// Name is the item's identifier for WorldItemFunc/WorldItemInterface,
	// or the raw path text for WorldItemPath.
	Name string

	Func  *FuncItemDecl  // set when Kind == WorldItemFunc
	Iface *InterfaceDecl // set when Kind == WorldItemInterface

	Pos Position
}

// WorldDecl is a top-level "world name { … }" block.
type WorldDecl struct {
	Name  string
	Items []WorldItem
	Pos   Position
}

func (*WorldDecl) declNode() {}
