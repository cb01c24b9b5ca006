package wit

import "fmt"

// TokenType identifies the lexical category of a [Token].
type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF

	IDENT  // kebab- or snake-case identifier
	INT    // integer literal
	SEMVER // 1.2.3 style version literal: a digit run that contains '.'

	// Punctuation
	COLON     // :
	SEMI      // ;
	COMMA     // ,
	DOT       // .
	SLASH     // /
	AT        // @
	EQUALS    // =
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LANGLE    // <
	RANGLE    // >
	ARROW     // ->
	STAR      // *

	// Keywords
	PACKAGE
	WORLD
	INTERFACE
	USE
	IMPORT
	EXPORT
	TYPE
	RECORD
	VARIANT
	ENUM
	FLAGS
	OPTION
	RESULT
	TUPLE
	LIST
	FUNC
	STATIC
	RESOURCE
	CONSTRUCTOR
	METHOD
	INCLUDE
	AS
	WITH
	OWN
	BORROW
	STREAM
	FUTURE
)

var tokenNames = map[TokenType]string{
	ILLEGAL:     "ILLEGAL",
	EOF:         "EOF",
	IDENT:       "IDENT",
	INT:         "INT",
	SEMVER:      "SEMVER",
	COLON:       "':'",
	SEMI:        "';'",
	COMMA:       "','",
	DOT:         "'.'",
	SLASH:       "'/'",
	AT:          "'@'",
	EQUALS:      "'='",
	LPAREN:      "'('",
	RPAREN:      "')'",
	LBRACE:      "'{'",
	RBRACE:      "'}'",
	LANGLE:      "'<'",
	RANGLE:      "'>'",
	ARROW:       "'->'",
	STAR:        "'*'",
	PACKAGE:     "package",
	WORLD:       "world",
	INTERFACE:   "interface",
	USE:         "use",
	IMPORT:      "import",
	EXPORT:      "export",
	TYPE:        "type",
	RECORD:      "record",
	VARIANT:     "variant",
	ENUM:        "enum",
	FLAGS:       "flags",
	OPTION:      "option",
	RESULT:      "result",
	TUPLE:       "tuple",
	LIST:        "list",
	FUNC:        "func",
	STATIC:      "static",
	RESOURCE:    "resource",
	CONSTRUCTOR: "constructor",
	METHOD:      "method",
	INCLUDE:     "include",
	AS:          "as",
	WITH:        "with",
	OWN:         "own",
	BORROW:      "borrow",
	STREAM:      "stream",
	FUTURE:      "future",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// keywords maps the WIT keyword set from §4.1 to their token types.
// WIT identifiers are case-sensitive, so lookup below never folds case.
var keywords = map[string]TokenType{
	"package":     PACKAGE,
	"world":       WORLD,
	"interface":   INTERFACE,
	"use":         USE,
	"import":      IMPORT,
	"export":      EXPORT,
	"type":        TYPE,
	"record":      RECORD,
	"variant":     VARIANT,
	"enum":        ENUM,
	"flags":       FLAGS,
	"option":      OPTION,
	"result":      RESULT,
	"tuple":       TUPLE,
	"list":        LIST,
	"func":        FUNC,
	"static":      STATIC,
	"resource":    RESOURCE,
	"constructor": CONSTRUCTOR,
	"method":      METHOD,
	"include":     INCLUDE,
	"as":          AS,
	"with":        WITH,
	"own":         OWN,
	"borrow":      BORROW,
	"stream":      STREAM,
	"future":      FUTURE,
}

// LookupIdent returns the TokenType for a raw identifier string: the
// keyword's TokenType if ident names a WIT keyword, otherwise IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Position identifies a location within a WIT source file.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit produced by the [Lexer].
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %s", t.Type, t.Literal, t.Pos)
}
