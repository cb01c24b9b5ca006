package codegen

import (
	"strings"

	"github.com/componentize-wit/witcodegen/internal/stringio"
	"github.com/componentize-wit/witcodegen/wit"
)

// Stubs generates the optional "<prefix>_stubs.cpp" supplemental
// output (§4 "Supplemented features"): TODO-bodied implementations of
// every host (import) function, one per interface namespace, grounded
// on the original generator's generateImplementation. It is only
// invoked when a caller opts into the --stubs flag; Emit itself never
// calls it.
func Stubs(ir *wit.IR, stem string) []byte {
	var b strings.Builder
	stringio.Write(&b, "#include \"", stem, ".hpp\"\n\n")
	stringio.Write(&b, "// Host function implementations (stubs).\n\n")
	stringio.Write(&b, "namespace host {\n\n")

	for _, iface := range ir.Interfaces {
		if iface.Direction != wit.DirectionImport {
			continue
		}
		if iface.Synthetic {
			for _, fn := range iface.Functions {
				emitStubFunc(&b, fn, iface, "")
			}
			continue
		}
		name := sanitizeIdent(iface.Name)
		stringio.Write(&b, "namespace ", name, " {\n\n")
		for _, fn := range iface.Functions {
			emitStubFunc(&b, fn, iface, "    ")
		}
		stringio.Write(&b, "} // namespace ", name, "\n\n")
	}

	stringio.Write(&b, "} // namespace host\n")
	return []byte(b.String())
}

func emitStubFunc(b *strings.Builder, fn *wit.FuncSig, iface *wit.Interface, indent string) {
	var diags []wit.Diagnostic
	ret, _ := resultType(fn, iface, &diags)
	stringio.Write(b, indent, ret, " ", sanitizeIdent(fn.Name), "(")
	for i, p := range fn.Params {
		if i > 0 {
			stringio.Write(b, ", ")
		}
		mapped, _ := mapOrSkip(p.Type, iface, &diags)
		stringio.Write(b, mapped, " ", sanitizeIdent(p.Name))
	}
	stringio.Write(b, ") {\n")
	stringio.Write(b, indent, "    // TODO: implement ", fn.Name, "\n")
	if ret != "void" {
		stringio.Write(b, indent, "    return {};\n")
	}
	stringio.Write(b, indent, "}\n\n")
}
