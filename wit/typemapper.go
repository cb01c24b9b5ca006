package wit

import (
	"fmt"
	"strings"
)

// UnsupportedTypePrefix marks a mapped type string as referencing a
// resource, stream, or future — constructs recognized by the grammar
// but not bound by this emitter (§9 Open Question "resource/async").
// MapType also records a warning for it. The codegen emitter does not
// test for this prefix: it writes the tagged string into its output
// unchanged and does not skip the containing function.
const UnsupportedTypePrefix = "$unsupported:"

var primitiveTypes = map[string]string{
	"bool":   "bool",
	"u8":     "uint8_t",
	"u16":    "uint16_t",
	"u32":    "uint32_t",
	"u64":    "uint64_t",
	"s8":     "int8_t",
	"s16":    "int16_t",
	"s32":    "int32_t",
	"s64":    "int64_t",
	"f32":    "float",
	"f64":    "double",
	"char":   "char32_t",
	"string": "cmcpp::string_t",
}

var compoundPrefixes = []string{
	"list<", "option<", "result<", "tuple<", "own<", "borrow<", "stream<", "future<",
}

var unsupportedKeyword = map[string]bool{
	"own": true, "borrow": true, "stream": true, "future": true,
}

// MapType implements §4.4: a pure function from a WIT type-reference
// string to an emitted-language type string, parameterized by the
// enclosing interface so user-defined names resolve. Any diagnostics
// (undefined local type, unsupported construct) are appended to diags.
func MapType(ref TypeRef, iface *Interface, diags *[]Diagnostic) string {
	s := stripWhitespace(string(ref))
	if s == "result" {
		return "cmcpp::result_t<cmcpp::monostate_t,cmcpp::monostate_t>"
	}
	for _, prefix := range compoundPrefixes {
		if strings.HasPrefix(s, prefix) && strings.HasSuffix(s, ">") {
			kw := prefix[:len(prefix)-1]
			inner := s[len(prefix) : len(s)-1]
			return mapCompound(kw, inner, iface, diags)
		}
	}
	if mapped, ok := primitiveTypes[s]; ok {
		return mapped
	}
	if iface != nil {
		if _, ok := iface.Records.GetOK(s); ok {
			return sanitizeName(s)
		}
		if _, ok := iface.Variants.GetOK(s); ok {
			return sanitizeName(s)
		}
		if _, ok := iface.Enums.GetOK(s); ok {
			return sanitizeName(s)
		}
	}
	Warnf(diags, "undefined local type %q, using as-is", s)
	return s
}

func mapCompound(kw, inner string, iface *Interface, diags *[]Diagnostic) string {
	if unsupportedKeyword[kw] {
		Warnf(diags, "unsupported construct %q<%s> referenced", kw, inner)
		return UnsupportedTypePrefix + kw + "<" + inner + ">"
	}
	args := splitBalancedArgs(inner)
	mapped := make([]string, len(args))
	for i, a := range args {
		if a == "_" {
			mapped[i] = "cmcpp::monostate_t"
			continue
		}
		mapped[i] = MapType(TypeRef(a), iface, diags)
	}
	switch kw {
	case "list":
		return fmt.Sprintf("cmcpp::list_t<%s>", join1(mapped))
	case "option":
		return fmt.Sprintf("cmcpp::option_t<%s>", join1(mapped))
	case "tuple":
		return fmt.Sprintf("cmcpp::tuple_t<%s>", strings.Join(mapped, ","))
	case "result":
		switch len(mapped) {
		case 1:
			return fmt.Sprintf("cmcpp::result_t<%s,cmcpp::monostate_t>", mapped[0])
		case 2:
			return fmt.Sprintf("cmcpp::result_t<%s,%s>", mapped[0], mapped[1])
		default:
			Warnf(diags, "malformed result<%s>", inner)
			return "cmcpp::result_t<cmcpp::monostate_t,cmcpp::monostate_t>"
		}
	default:
		return kw + "<" + strings.Join(mapped, ",") + ">"
	}
}

func join1(s []string) string {
	if len(s) == 0 {
		return "cmcpp::monostate_t"
	}
	return s[0]
}

// splitBalancedArgs splits a compound type's inner content on top-level
// commas, tracking angle-bracket depth so nested generics such as
// "option<u32>,string" split into exactly two arguments rather than
// wherever the first comma happens to fall. This is the balanced
// matching required by §9's type-mapper Open Question; raw
// strings.Index/LastIndex scanning is deliberately not used.
func splitBalancedArgs(s string) []string {
	if s == "" {
		return nil
	}
	var args []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, s[start:i])
				start = i + 1
			}
		}
	}
	args = append(args, s[start:])
	return args
}

func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
