package wit

import "testing"

func TestParseFileS1(t *testing.T) {
	src := `package example:p;
interface i { f: func(a: u32, b: u32) -> bool; }
world w { export i; }
`
	f, err := ParseFile(src)
	if err != nil {
		t.Fatal(err)
	}
	if f.Package == nil || f.Package.Namespace != "example" || f.Package.Name != "p" {
		t.Fatalf("package = %+v", f.Package)
	}
	if len(f.Decls) != 2 {
		t.Fatalf("got %d decls, want 2", len(f.Decls))
	}
	iface, ok := f.Decls[0].(*InterfaceDecl)
	if !ok || iface.Name != "i" {
		t.Fatalf("decls[0] = %+v", f.Decls[0])
	}
	if len(iface.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(iface.Items))
	}
	fn, ok := iface.Items[0].(*FuncItemDecl)
	if !ok || fn.Name != "f" {
		t.Fatalf("items[0] = %+v", iface.Items[0])
	}
	if len(fn.Params) != 2 || fn.Params[0].Type != "u32" {
		t.Fatalf("params = %+v", fn.Params)
	}
	if len(fn.Results) != 1 || fn.Results[0].Type != "bool" {
		t.Fatalf("results = %+v", fn.Results)
	}

	world, ok := f.Decls[1].(*WorldDecl)
	if !ok || world.Name != "w" {
		t.Fatalf("decls[1] = %+v", f.Decls[1])
	}
	if len(world.Items) != 1 || world.Items[0].Kind != WorldItemPath || world.Items[0].Name != "i" {
		t.Fatalf("world items = %+v", world.Items)
	}
	if world.Items[0].Direction != DirectionExport {
		t.Errorf("direction = %v, want export", world.Items[0].Direction)
	}
}

func TestParseFileS3StandaloneFunc(t *testing.T) {
	src := `package example:app;
world w { import log: func(msg: string); }
`
	f, err := ParseFile(src)
	if err != nil {
		t.Fatal(err)
	}
	world := f.Decls[0].(*WorldDecl)
	item := world.Items[0]
	if item.Kind != WorldItemFunc || item.Name != "log" {
		t.Fatalf("item = %+v", item)
	}
	if item.Func.Params[0].Type != "string" {
		t.Fatalf("params = %+v", item.Func.Params)
	}
}

func TestParseNamedTupleResult(t *testing.T) {
	src := `package e:p;
interface i { f: func() -> (a: u32, b: string); }
`
	f, err := ParseFile(src)
	if err != nil {
		t.Fatal(err)
	}
	iface := f.Decls[0].(*InterfaceDecl)
	fn := iface.Items[0].(*FuncItemDecl)
	if len(fn.Results) != 2 || fn.Results[0].Name != "a" || fn.Results[1].Name != "b" {
		t.Fatalf("results = %+v", fn.Results)
	}
}

func TestParseVariantAndEnum(t *testing.T) {
	src := `package e:p;
interface e2 {
  enum color { red, green, blue }
  variant v { none, some(u32) }
  f: func(c: color, x: v) -> v;
}
`
	f, err := ParseFile(src)
	if err != nil {
		t.Fatal(err)
	}
	iface := f.Decls[0].(*InterfaceDecl)
	enum := iface.Items[0].(*EnumDecl)
	if enum.Name != "color" || len(enum.Cases) != 3 {
		t.Fatalf("enum = %+v", enum)
	}
	variant := iface.Items[1].(*VariantDecl)
	if variant.Name != "v" || len(variant.Cases) != 2 {
		t.Fatalf("variant = %+v", variant)
	}
	if variant.Cases[0].HasType {
		t.Errorf("case[0] should have no payload")
	}
	if !variant.Cases[1].HasType || variant.Cases[1].Type != "u32" {
		t.Errorf("case[1] = %+v", variant.Cases[1])
	}
}

func TestParseResourceAndIncludeSkipped(t *testing.T) {
	src := `package e:p;
interface i {
  resource handle {
    constructor();
    method(self: u32) -> u32;
  }
  include other;
  type alias = u32;
  flags f { a, b }
}
`
	f, err := ParseFile(src)
	if err != nil {
		t.Fatal(err)
	}
	iface := f.Decls[0].(*InterfaceDecl)
	if len(iface.Items) != 4 {
		t.Fatalf("got %d items, want 4: %+v", len(iface.Items), iface.Items)
	}
	for i, kind := range []string{"resource", "include", "type", "flags"} {
		skip, ok := iface.Items[i].(*SkippedItem)
		if !ok || skip.Kind != kind {
			t.Errorf("items[%d] = %+v, want kind %q", i, iface.Items[i], kind)
		}
	}
}

func TestParseNestedGenericType(t *testing.T) {
	src := `package e:p;
interface i { f: func(a: list<option<u32>>) -> result<u32, string>; }
`
	f, err := ParseFile(src)
	if err != nil {
		t.Fatal(err)
	}
	fn := f.Decls[0].(*InterfaceDecl).Items[0].(*FuncItemDecl)
	if fn.Params[0].Type != "list<option<u32>>" {
		t.Errorf("param type = %q", fn.Params[0].Type)
	}
	if fn.Results[0].Type != "result<u32,string>" {
		t.Errorf("result type = %q", fn.Results[0].Type)
	}
}

func TestParseAccumulatesErrors(t *testing.T) {
	src := `package e:p;
interface i { f: func(a: ) -> ; }
garbage
`
	_, err := ParseFile(src)
	if err == nil {
		t.Fatal("expected error")
	}
	el, ok := err.(*ErrorList)
	if !ok {
		t.Fatalf("error is %T, want *ErrorList", err)
	}
	if len(el.Errors) < 2 {
		t.Errorf("expected multiple accumulated errors, got %d: %v", len(el.Errors), el.Errors)
	}
}
