package wit

import "strings"

// sanitizeChars are replaced with "_" when transforming a WIT name for
// emission (§4.5 "Identifier sanitization").
const sanitizeChars = "-.:/"

// SanitizeName substitutes "_" for every character in {- . : /}. It does
// not apply the reserved-word suffix rule — that additionally depends on
// a collision scope and is applied by the emitter when declaring a new
// identifier (see codegen.Scope).
func SanitizeName(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(sanitizeChars, r) {
			return '_'
		}
		return r
	}, s)
}

func sanitizeName(s string) string { return SanitizeName(s) }
