package wit

import "testing"

func TestMapTypePrimitives(t *testing.T) {
	cases := map[string]string{
		"bool":   "bool",
		"u8":     "uint8_t",
		"u32":    "uint32_t",
		"s64":    "int64_t",
		"f32":    "float",
		"f64":    "double",
		"char":   "char32_t",
		"string": "cmcpp::string_t",
	}
	for in, want := range cases {
		var diags []Diagnostic
		got := MapType(TypeRef(in), nil, &diags)
		if got != want {
			t.Errorf("MapType(%q) = %q, want %q", in, got, want)
		}
		if len(diags) != 0 {
			t.Errorf("MapType(%q): unexpected diagnostics %+v", in, diags)
		}
	}
}

func TestMapTypeList(t *testing.T) {
	var diags []Diagnostic
	got := MapType("list<u32>", nil, &diags)
	want := "cmcpp::list_t<uint32_t>"
	if got != want {
		t.Errorf("MapType(list<u32>) = %q, want %q", got, want)
	}
}

func TestMapTypeNestedGeneric(t *testing.T) {
	var diags []Diagnostic
	got := MapType("list<option<u32>>", nil, &diags)
	want := "cmcpp::list_t<cmcpp::option_t<uint32_t>>"
	if got != want {
		t.Errorf("MapType(list<option<u32>>) = %q, want %q", got, want)
	}
}

func TestMapTypeResultTwoArgs(t *testing.T) {
	var diags []Diagnostic
	got := MapType("result<u32,string>", nil, &diags)
	want := "cmcpp::result_t<uint32_t,cmcpp::string_t>"
	if got != want {
		t.Errorf("MapType(result<u32,string>) = %q, want %q", got, want)
	}
}

func TestMapTypeResultWithPlaceholder(t *testing.T) {
	var diags []Diagnostic
	got := MapType("result<_,string>", nil, &diags)
	want := "cmcpp::result_t<cmcpp::monostate_t,cmcpp::string_t>"
	if got != want {
		t.Errorf("MapType(result<_,string>) = %q, want %q", got, want)
	}
}

func TestMapTypeBareResult(t *testing.T) {
	var diags []Diagnostic
	got := MapType("result", nil, &diags)
	want := "cmcpp::result_t<cmcpp::monostate_t,cmcpp::monostate_t>"
	if got != want {
		t.Errorf("MapType(result) = %q, want %q", got, want)
	}
}

func TestMapTypeTupleWithSiblingGenerics(t *testing.T) {
	// A naive comma split on the raw inner text would wrongly see three
	// top-level arguments here; the balanced scanner must see two.
	var diags []Diagnostic
	got := MapType("tuple<result<u32,string>,u8>", nil, &diags)
	want := "cmcpp::tuple_t<cmcpp::result_t<uint32_t,cmcpp::string_t>,uint8_t>"
	if got != want {
		t.Errorf("MapType(tuple<result<u32,string>,u8>) = %q, want %q", got, want)
	}
}

func TestMapTypeNamedLocalType(t *testing.T) {
	iface := NewInterface(Ident{Namespace: "e", Package: "p"}, "i", DirectionExport)
	iface.Records.Set("point", &RecordType{Name: "point"})
	var diags []Diagnostic
	got := MapType("point", iface, &diags)
	if got != "point" {
		t.Errorf("MapType(point) = %q, want %q", got, "point")
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics %+v", diags)
	}
}

func TestMapTypeUndefinedLocalTypeWarns(t *testing.T) {
	iface := NewInterface(Ident{Namespace: "e", Package: "p"}, "i", DirectionExport)
	var diags []Diagnostic
	got := MapType("mystery", iface, &diags)
	if got != "mystery" {
		t.Errorf("MapType(mystery) = %q, want verbatim %q", got, "mystery")
	}
	if len(diags) != 1 || diags[0].Severity != SeverityWarning {
		t.Fatalf("diags = %+v, want one warning", diags)
	}
}

func TestMapTypeUnsupportedConstructTagged(t *testing.T) {
	var diags []Diagnostic
	got := MapType("own<handle>", nil, &diags)
	if got != UnsupportedTypePrefix+"own<handle>" {
		t.Errorf("MapType(own<handle>) = %q", got)
	}
	if len(diags) != 1 || diags[0].Severity != SeverityWarning {
		t.Fatalf("diags = %+v, want one warning", diags)
	}
}

func TestMapTypeStripsWhitespace(t *testing.T) {
	var diags []Diagnostic
	got := MapType(" u32 ", nil, &diags)
	if got != "uint32_t" {
		t.Errorf("MapType(%q) = %q", " u32 ", got)
	}
}

func TestSplitBalancedArgs(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"u32,string", []string{"u32", "string"}},
		{"option<u32>,string", []string{"option<u32>", "string"}},
		{"result<u32,string>,u8", []string{"result<u32,string>", "u8"}},
		{"u32", []string{"u32"}},
	}
	for _, c := range cases {
		got := splitBalancedArgs(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("splitBalancedArgs(%q) = %+v, want %+v", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("splitBalancedArgs(%q)[%d] = %q, want %q", c.in, i, got[i], c.want[i])
			}
		}
	}
}
