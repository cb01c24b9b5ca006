package wit

import "testing"

func TestLexer(t *testing.T) {
	src := `package example:p@1.2.3;
interface i {
  f: func(a: u32, b: list<option<u32>>) -> bool;
}
`
	want := []TokenType{
		PACKAGE, IDENT, COLON, IDENT, AT, SEMVER, SEMI,
		INTERFACE, IDENT, LBRACE,
		IDENT, COLON, FUNC, LPAREN,
		IDENT, COLON, IDENT, COMMA,
		IDENT, COLON, LIST, LANGLE, OPTION, LANGLE, IDENT, RANGLE, RANGLE,
		RPAREN, ARROW, IDENT, SEMI,
		RBRACE,
		EOF,
	}
	l := NewLexer(src)
	for i, wantType := range want {
		tok := l.Next()
		if tok.Type != wantType {
			t.Fatalf("token %d: got %s (%q), want %s", i, tok.Type, tok.Literal, wantType)
		}
	}
}

func TestLexerComments(t *testing.T) {
	src := "// line comment\npackage a:b; /* block\ncomment */ interface i {}"
	l := NewLexer(src)
	var types []TokenType
	for {
		tok := l.Next()
		types = append(types, tok.Type)
		if tok.Type == EOF {
			break
		}
	}
	want := []TokenType{PACKAGE, IDENT, COLON, IDENT, SEMI, INTERFACE, IDENT, LBRACE, RBRACE, EOF}
	if len(types) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(types), len(want), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, types[i], want[i])
		}
	}
}

func TestLookupIdentCaseSensitive(t *testing.T) {
	if LookupIdent("Interface") != IDENT {
		t.Errorf("LookupIdent(%q): expected IDENT, WIT keywords are case-sensitive", "Interface")
	}
	if LookupIdent("interface") != INTERFACE {
		t.Errorf("LookupIdent(%q): expected INTERFACE", "interface")
	}
}
