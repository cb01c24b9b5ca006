// Package codegen turns a resolved WIT intermediate representation into
// the two (plus a supporting glue header) C++ source files this
// emitter produces, implementing §4.5 and §4.6. It is grounded on the
// header/runtime-glue generator this tool's surface was distilled
// from, adapted from direct std::ofstream writes to an in-memory
// []byte pipeline built with internal/stringio.Write over
// strings.Builder.
package codegen

import (
	"fmt"
	"strings"

	"github.com/componentize-wit/witcodegen/internal/stringio"
	"github.com/componentize-wit/witcodegen/wit"
)

// Options configures a single Emit call.
type Options struct {
	// OutputStem names the output file group, used to derive the
	// header include guard (e.g. "sample" -> SAMPLE_HPP).
	OutputStem string

	// EmitStubs additionally gates callers that want the supplemental
	// `<prefix>_stubs.cpp` generator (see Stubs, SPEC_FULL.md §4); it
	// is not consumed by Emit itself.
	EmitStubs bool
}

// Emit produces the header, runtime-glue, and glue-header outputs for
// ir. Diagnostics accumulated while mapping types (undefined local
// names, unsupported constructs) are returned alongside the output;
// none of them are fatal (§4.6).
func Emit(ir *wit.IR, opts Options) (header, glue, glueHeader []byte, diags []wit.Diagnostic) {
	var imports, exports []*wit.Interface
	for _, iface := range ir.Interfaces {
		if iface.Direction == wit.DirectionImport {
			imports = append(imports, iface)
		} else {
			exports = append(exports, iface)
		}
	}

	h := emitHeader(opts.OutputStem, imports, exports, &diags)
	gh := emitGlueHeader()
	g := emitGlue(ir.Package, imports, gh, opts.OutputStem, &diags)

	return []byte(h), []byte(g), []byte(gh), diags
}

func includeGuard(stem string) string {
	g := wit.SanitizeName(stem)
	if g == "" {
		g = "generated"
	}
	return strings.ToUpper(g) + "_HPP"
}

func emitHeader(stem string, imports, exports []*wit.Interface, diags *[]wit.Diagnostic) string {
	var b strings.Builder
	guard := includeGuard(stem)
	stringio.Write(&b,
		"#ifndef ", guard, "\n",
		"#define ", guard, "\n\n",
		"#include <cmcpp.hpp>\n\n",
	)

	if len(imports) > 0 {
		stringio.Write(&b, "namespace host {\n\n")
		for _, iface := range imports {
			emitImportInterface(&b, iface, diags)
		}
		stringio.Write(&b, "} // namespace host\n\n")
	}

	if len(exports) > 0 {
		stringio.Write(&b, "namespace guest {\n\n")
		for _, iface := range exports {
			emitExportInterface(&b, iface, diags)
		}
		stringio.Write(&b, "} // namespace guest\n\n")
	}

	stringio.Write(&b, "#endif // ", guard, "\n")
	return b.String()
}

func emitImportInterface(b *strings.Builder, iface *wit.Interface, diags *[]wit.Diagnostic) {
	checkCollisions(iface, diags)
	if iface.Synthetic {
		for _, fn := range iface.Functions {
			emitFuncDecl(b, fn, iface, diags)
		}
		return
	}
	name := sanitizeIdent(iface.Name)
	stringio.Write(b, "namespace ", name, " {\n\n")
	emitTypeDefs(b, iface, diags)
	for _, fn := range iface.Functions {
		emitFuncDecl(b, fn, iface, diags)
	}
	stringio.Write(b, "} // namespace ", name, "\n\n")
}

func emitExportInterface(b *strings.Builder, iface *wit.Interface, diags *[]wit.Diagnostic) {
	checkCollisions(iface, diags)
	if iface.Synthetic {
		for _, fn := range iface.Functions {
			emitFuncAlias(b, fn, iface, diags)
		}
		return
	}
	name := sanitizeIdent(iface.Name)
	stringio.Write(b, "namespace ", name, " {\n\n")
	emitTypeDefs(b, iface, diags)
	for _, fn := range iface.Functions {
		emitFuncAlias(b, fn, iface, diags)
	}
	stringio.Write(b, "} // namespace ", name, "\n\n")
}

// sanitizeIdent sanitizes a declared WIT name into its emitted C++
// identifier and applies the mandatory reserved-word rename: a name
// that sanitizes to a C++ keyword gets a trailing "_" appended (§4.5
// "Identifier sanitization"). Each call uses a fresh, empty Scope
// backed only by Reserved(), so it guards solely against the closed
// keyword set — it says nothing about two distinct WIT names
// colliding with each other, which checkCollisions reports separately.
func sanitizeIdent(name string) string {
	return NewScope(nil).UniqueName(wit.SanitizeName(name))
}

// checkCollisions reports an error diagnostic when two distinct
// declared names within iface (records, variants, enums, functions)
// sanitize to the same emitted C++ identifier, rather than letting one
// silently shadow the other (§9 Open Question: "add a collision check
// and report it as an error"). This is a different concern from
// sanitizeIdent's reserved-word rename: a lone name that happens to
// collide with a C++ keyword is silently suffixed, not reported here.
func checkCollisions(iface *wit.Interface, diags *[]wit.Diagnostic) {
	declared := make(map[string]string) // emitted identifier -> first original name

	check := func(original string) {
		emitted := sanitizeIdent(original)
		if first, ok := declared[emitted]; ok {
			wit.Errorf(diags, "identifier collision in interface %q: %q and %q both sanitize to %q",
				iface.Name, first, original, emitted)
			return
		}
		declared[emitted] = original
	}

	for name := range iface.Records.All() {
		check(name)
	}
	for name := range iface.Variants.All() {
		check(name)
	}
	for name := range iface.Enums.All() {
		check(name)
	}
	for _, fn := range iface.Functions {
		check(fn.Name)
	}
}

func emitTypeDefs(b *strings.Builder, iface *wit.Interface, diags *[]wit.Diagnostic) {
	for name, enum := range iface.Enums.All() {
		stringio.Write(b, "enum class ", sanitizeIdent(name), " {\n")
		for i, c := range enum.Cases {
			stringio.Write(b, "    ", sanitizeIdent(c))
			if i < len(enum.Cases)-1 {
				stringio.Write(b, ",")
			}
			stringio.Write(b, "\n")
		}
		stringio.Write(b, "};\n\n")
	}
	for name, variant := range iface.Variants.All() {
		stringio.Write(b, "using ", sanitizeIdent(name), " = cmcpp::variant_t<")
		for i, c := range variant.Cases {
			if i > 0 {
				stringio.Write(b, ",")
			}
			if !c.HasType {
				stringio.Write(b, "cmcpp::monostate_t")
				continue
			}
			mapped, _ := mapOrSkip(c.Type, iface, diags)
			stringio.Write(b, mapped)
		}
		stringio.Write(b, ">;\n\n")
	}
	for name, rec := range iface.Records.All() {
		stringio.Write(b, "struct ", sanitizeIdent(name), " {\n")
		for _, f := range rec.Fields {
			mapped, _ := mapOrSkip(f.Type, iface, diags)
			stringio.Write(b, "    ", mapped, " ", sanitizeIdent(f.Name), ";\n")
		}
		stringio.Write(b, "};\n\n")
	}
}

// resultType computes the C++ return type of fn: void for no results, the
// mapped type for a single result, or a cmcpp::tuple_t<...> of the mapped
// types for several — names are discarded, matching the original's
// all-positional C++ return convention.
func resultType(fn *wit.FuncSig, iface *wit.Interface, diags *[]wit.Diagnostic) (string, bool) {
	switch len(fn.Results) {
	case 0:
		return "void", false
	case 1:
		return mapOrSkip(fn.Results[0].Type, iface, diags)
	default:
		var types []string
		var anyUnresolved bool
		for _, r := range fn.Results {
			t, unresolved := mapOrSkip(r.Type, iface, diags)
			types = append(types, t)
			anyUnresolved = anyUnresolved || unresolved
		}
		return fmt.Sprintf("cmcpp::tuple_t<%s>", strings.Join(types, ",")), anyUnresolved
	}
}

// mapOrSkip maps ref and reports whether the mapping touched an
// undefined local name, the condition that triggers the guest
// skip-with-comment policy (§4.5 "Skip policy").
func mapOrSkip(ref wit.TypeRef, iface *wit.Interface, diags *[]wit.Diagnostic) (string, bool) {
	var local []wit.Diagnostic
	mapped := wit.MapType(ref, iface, &local)
	*diags = append(*diags, local...)
	for _, d := range local {
		if strings.Contains(d.Message, "undefined local type") {
			return mapped, true
		}
	}
	return mapped, false
}

func emitFuncDecl(b *strings.Builder, fn *wit.FuncSig, iface *wit.Interface, diags *[]wit.Diagnostic) {
	ret, _ := resultType(fn, iface, diags)
	stringio.Write(b, ret, " ", sanitizeIdent(fn.Name), "(")
	for i, p := range fn.Params {
		if i > 0 {
			stringio.Write(b, ", ")
		}
		mapped, _ := mapOrSkip(p.Type, iface, diags)
		stringio.Write(b, mapped, " ", sanitizeIdent(p.Name))
	}
	stringio.Write(b, ");\n\n")
}

// emitFuncAlias emits the guest-export "using <fn>_t = ..." signature
// alias, or a TODO comment in its place when a referenced type is
// undefined locally (§4.5 Skip policy; §4.6 "undefined local type in
// a guest function").
func emitFuncAlias(b *strings.Builder, fn *wit.FuncSig, iface *wit.Interface, diags *[]wit.Diagnostic) {
	var paramTypes []string
	var anyUnresolved bool
	for _, p := range fn.Params {
		t, unresolved := mapOrSkip(p.Type, iface, diags)
		paramTypes = append(paramTypes, t)
		anyUnresolved = anyUnresolved || unresolved
	}
	ret, retUnresolved := resultType(fn, iface, diags)
	anyUnresolved = anyUnresolved || retUnresolved

	if anyUnresolved {
		stringio.Write(b, "// TODO: ", fn.Name, " - Type definitions for local types (variant/enum/record) not yet resolved\n\n")
		return
	}

	aliasName := sanitizeIdent(fn.Name) + "_t"
	stringio.Write(b, "using ", aliasName, " = ", ret, "(", strings.Join(paramTypes, ","), ");\n\n")
}

func emitGlueHeader() string {
	var b strings.Builder
	stringio.Write(&b,
		"#ifndef GENERATED_RUNTIME_GLUE_HPP\n",
		"#define GENERATED_RUNTIME_GLUE_HPP\n\n",
		"#include <cstddef>\n",
		"#include <vector>\n\n",
		"struct NativeSymbol;\n\n",
		"struct NativeRegistration {\n",
		"    const char* module_name;\n",
		"    NativeSymbol* symbols;\n",
		"    size_t count;\n",
		"};\n\n",
		"std::vector<NativeRegistration> get_import_registrations();\n",
		"int register_all_imports();\n",
		"void unregister_all_imports();\n\n",
		"#endif // GENERATED_RUNTIME_GLUE_HPP\n",
	)
	return b.String()
}

func emitGlue(pkg wit.Ident, imports []*wit.Interface, glueHeader, stem string, diags *[]wit.Diagnostic) string {
	var b strings.Builder
	stringio.Write(&b, "#include \"", stem, ".hpp\"\n")
	stringio.Write(&b, "#include \"", stem, "_wamr.hpp\"\n\n")

	for _, iface := range imports {
		arrayName := sanitizeIdent(iface.Name) + "_symbols"
		stringio.Write(&b, "NativeSymbol ", arrayName, "[] = {\n")
		for _, fn := range iface.Functions {
			fnName := sanitizeIdent(fn.Name)
			if iface.Synthetic {
				stringio.Write(&b, "    host_function(\"", fn.Name, "\", host::", fnName, "),\n")
			} else {
				stringio.Write(&b, "    host_function(\"", fn.Name, "\", host::", sanitizeIdent(iface.Name), "::", fnName, "),\n")
			}
		}
		stringio.Write(&b, "};\n\n")
	}

	stringio.Write(&b, "std::vector<NativeRegistration> get_import_registrations() {\n")
	stringio.Write(&b, "    return {\n")
	for _, iface := range imports {
		arrayName := sanitizeIdent(iface.Name) + "_symbols"
		moduleName := moduleNameOf(pkg, iface)
		stringio.Write(&b, "        {\"", moduleName, "\", ", arrayName, ", ", itoa(len(iface.Functions)), "},\n")
	}
	stringio.Write(&b, "    };\n}\n\n")

	stringio.Write(&b,
		"int register_all_imports() {\n",
		"    int count = 0;\n",
		"    for (const auto& reg : get_import_registrations()) {\n",
		"        if (!wasm_runtime_register_natives_raw(reg.module_name, reg.symbols, reg.count)) {\n",
		"            return -1;\n",
		"        }\n",
		"        count += reg.count;\n",
		"    }\n",
		"    return count;\n",
		"}\n\n",
		"void unregister_all_imports() {\n",
		"    for (const auto& reg : get_import_registrations()) {\n",
		"        wasm_runtime_unregister_natives(reg.module_name, reg.symbols);\n",
		"    }\n",
		"}\n",
	)
	return b.String()
}

// moduleNameOf returns the runtime registration module name for iface:
// "$root" for a synthetic world-level function, otherwise
// "<package>/<interface>" (§4.5 runtime-glue output, item 3).
func moduleNameOf(pkg wit.Ident, iface *wit.Interface) string {
	if iface.Synthetic {
		return "$root"
	}
	return pkg.UnversionedString() + "/" + iface.Name
}

func itoa(n int) string {
	return fmt.Sprintf("%d", n)
}
