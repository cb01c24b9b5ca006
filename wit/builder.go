package wit

import "strings"

// Builder walks a [File]'s concrete syntax tree and produces an [IR],
// implementing §4.2.
type Builder struct {
	Diagnostics []Diagnostic
}

// dirState tracks the import/export state machine of §4.5 while
// scanning a world's items, keyed by referenced or inline interface name.
type dirState int

const (
	stateNone dirState = iota
	stateImportMarked
	stateExportMarked
	stateBoth
)

func (s dirState) mark(dir Direction) dirState {
	switch {
	case s == stateNone && dir == DirectionImport:
		return stateImportMarked
	case s == stateNone && dir == DirectionExport:
		return stateExportMarked
	case s == stateImportMarked && dir == DirectionExport:
		return stateBoth
	case s == stateExportMarked && dir == DirectionImport:
		return stateBoth
	default:
		return s
	}
}

// Build converts f into an [IR]. The package identifier comes from the
// first package declaration in the file; if none is present, the
// returned IR has a zero-value Package.
func (b *Builder) Build(f *File) *IR {
	ir := &IR{}
	if f.Package != nil {
		ir.Package = Ident{
			Namespace: escape(f.Package.Namespace),
			Package:   escape(f.Package.Name),
		}
		if f.Package.Version != "" {
			if v, err := parseSemver(f.Package.Version); err == nil {
				ir.Package.Version = v
			} else {
				b.warnf("malformed version %q in package declaration: %v", f.Package.Version, err)
			}
		}
	}

	var nameOrder []string
	bodies := make(map[string]*InterfaceDecl)
	states := make(map[string]dirState)
	var syntheticItems []WorldItem

	addBody := func(name string, decl *InterfaceDecl) {
		if _, ok := bodies[name]; !ok {
			nameOrder = append(nameOrder, name)
		}
		bodies[name] = decl
	}

	for _, decl := range f.Decls {
		if ifaceDecl, ok := decl.(*InterfaceDecl); ok {
			addBody(ifaceDecl.Name, ifaceDecl)
		}
	}

	for _, decl := range f.Decls {
		world, ok := decl.(*WorldDecl)
		if !ok {
			continue
		}
		for _, item := range world.Items {
			switch item.Kind {
			case WorldItemFunc:
				syntheticItems = append(syntheticItems, item)
			case WorldItemInterface:
				addBody(item.Name, item.Iface)
				states[item.Name] = states[item.Name].mark(item.Direction)
			case WorldItemPath:
				name := lastPathSegment(item.Name)
				states[name] = states[name].mark(item.Direction)
			}
		}
	}

	for _, name := range nameOrder {
		decl := bodies[name]
		switch states[name] {
		case stateImportMarked:
			ir.Interfaces = append(ir.Interfaces, b.buildInterface(ir.Package, decl, DirectionImport))
		case stateExportMarked:
			ir.Interfaces = append(ir.Interfaces, b.buildInterface(ir.Package, decl, DirectionExport))
		case stateBoth:
			importIface := b.buildInterface(ir.Package, decl, DirectionImport)
			ir.Interfaces = append(ir.Interfaces, importIface, importIface.clone(DirectionExport))
		default: // stateNone: "a name appearing in no world item defaults to Export" (§4.5)
			ir.Interfaces = append(ir.Interfaces, b.buildInterface(ir.Package, decl, DirectionExport))
		}
	}

	for _, item := range syntheticItems {
		iface := NewInterface(ir.Package, item.Name, item.Direction)
		iface.Synthetic = true
		iface.Functions = append(iface.Functions, b.buildFuncSig(item.Func, item.Direction))
		ir.Interfaces = append(ir.Interfaces, iface)
	}

	return ir
}

func (b *Builder) buildInterface(pkg Ident, decl *InterfaceDecl, dir Direction) *Interface {
	iface := NewInterface(pkg, decl.Name, dir)
	for _, item := range decl.Items {
		switch v := item.(type) {
		case *RecordDecl:
			iface.Records.Set(v.Name, &RecordType{Name: v.Name, Fields: toFields(v.Fields)})
		case *VariantDecl:
			cases := make([]VariantCase, len(v.Cases))
			for i, c := range v.Cases {
				cases[i] = VariantCase{Name: c.Name, Type: TypeRef(c.Type), HasType: c.HasType}
			}
			iface.Variants.Set(v.Name, &VariantType{Name: v.Name, Cases: cases})
		case *EnumDecl:
			iface.Enums.Set(v.Name, &EnumType{Name: v.Name, Cases: append([]string(nil), v.Cases...)})
		case *FuncItemDecl:
			iface.Functions = append(iface.Functions, b.buildFuncSig(v, dir))
		case *UseDecl:
			// Cross-interface type references are out of scope for the
			// emitter (Invariant 1); the resolver orders files so the
			// referenced package is available, but this builder does not
			// merge declarations across files.
		case *SkippedItem:
			b.warnf("skipping unsupported construct %q %q in interface %q", v.Kind, v.Name, decl.Name)
		}
	}
	return iface
}

func (b *Builder) buildFuncSig(decl *FuncItemDecl, dir Direction) *FuncSig {
	return &FuncSig{
		Name:      decl.Name,
		Params:    toFields(decl.Params),
		Results:   toFields(decl.Results),
		Direction: dir,
	}
}

func toFields(named []NamedType) []Field {
	if len(named) == 0 {
		return nil
	}
	fields := make([]Field, len(named))
	for i, n := range named {
		fields[i] = Field{Name: n.Name, Type: TypeRef(n.Type)}
	}
	return fields
}

// lastPathSegment returns the interface name portion of a world item
// path reference, e.g. "wasi:io/streams@0.2.0" -> "streams", "my-iface"
// -> "my-iface".
func lastPathSegment(path string) string {
	path, _, _ = strings.Cut(path, "@")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	return path
}

func (b *Builder) warnf(format string, args ...any) {
	Warnf(&b.Diagnostics, format, args...)
}
