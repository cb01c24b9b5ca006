package codegen

// Scope tracks identifiers already declared within a C++ lexical scope
// (a namespace or a parameter list) so UniqueName can append a
// disambiguating suffix on collision, following the same
// UniqueName/HasName shape the teacher's Go-identifier scope used but
// keyed to the C++ reserved-word set instead of Go's (§4.5 "identifier
// sanitization").
type Scope interface {
	HasName(name string) bool
	UniqueName(name string) string
}

type scope struct {
	parent Scope
	names  map[string]bool
}

// NewScope returns a [Scope] ready to use. If parent is nil, the
// built-in C++ reserved-word scope is used.
func NewScope(parent Scope) Scope {
	if parent == nil {
		parent = Reserved()
	}
	return &scope{parent: parent, names: make(map[string]bool)}
}

func (s *scope) HasName(name string) bool {
	return s.names[name] || s.parent.HasName(name)
}

func (s *scope) UniqueName(name string) string {
	for s.HasName(name) {
		name += "_"
	}
	s.names[name] = true
	return name
}

type reservedScope struct{}

// Reserved returns the immutable scope of C++ keywords.
func Reserved() Scope { return reservedScope{} }

func (reservedScope) HasName(name string) bool { return cppReserved[name] }

func (reservedScope) UniqueName(string) string {
	panic("cannot add a name to the reserved scope")
}

// cppReserved is the closed set of C++ keywords a sanitized identifier
// must not collide with (§4.5: "a trailing _ is appended" on
// collision).
var cppReserved = mapWords(
	"alignas", "alignof", "and", "and_eq", "asm", "auto", "bitand", "bitor",
	"bool", "break", "case", "catch", "char", "char8_t", "char16_t", "char32_t",
	"class", "compl", "concept", "const", "consteval", "constexpr", "constinit",
	"const_cast", "continue", "co_await", "co_return", "co_yield", "decltype",
	"default", "delete", "do", "double", "dynamic_cast", "else", "enum",
	"explicit", "export", "extern", "false", "float", "for", "friend", "goto",
	"if", "inline", "int", "long", "mutable", "namespace", "new", "noexcept",
	"not", "not_eq", "nullptr", "operator", "or", "or_eq", "private",
	"protected", "public", "register", "reinterpret_cast", "requires",
	"return", "short", "signed", "sizeof", "static", "static_assert",
	"static_cast", "struct", "switch", "template", "this", "thread_local",
	"throw", "true", "try", "typedef", "typeid", "typename", "union",
	"unsigned", "using", "virtual", "void", "volatile", "wchar_t", "while",
	"xor", "xor_eq",
)

func mapWords(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
