package wit

import (
	"fmt"
	"strings"
)

// Parser is a hand-written recursive-descent LL parser over the WIT
// surface grammar (§4.1). Interface bodies accept use, record, variant,
// enum and function items; constructs the emitter does not support
// (resource, include, flags, type aliases) are parsed structurally and
// recorded as [SkippedItem] rather than rejected. The own, borrow,
// stream and future type constructors are accepted inside type
// references. World bodies accept import, export, use and include
// items; use and include items there are consumed and discarded. Any
// other item is reported as a syntax error.
type Parser struct {
	lex  *Lexer
	cur  Token
	errs ErrorList
}

// NewParser returns a Parser ready to parse src.
func NewParser(src string) *Parser {
	p := &Parser{lex: NewLexer(src)}
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.lex.Next()
}

func (p *Parser) errorf(format string, args ...any) {
	p.errs.Add(p.cur.Pos, format, args...)
}

// expect consumes the current token if it has type tt, returning its
// literal. Otherwise it records a syntax error and returns "" without
// advancing, so the caller can attempt local recovery.
func (p *Parser) expect(tt TokenType) string {
	if p.cur.Type != tt {
		p.errorf("expected %s, found %s", tt, p.cur.Type)
		return ""
	}
	lit := p.cur.Literal
	p.next()
	return lit
}

// ParseFile parses a complete WIT source file, returning the concrete
// syntax tree and any accumulated [ErrorList]. Per §4.1, all errors are
// accumulated and reported together; the caller treats a non-nil error
// as fatal for this file.
func ParseFile(src string) (*File, error) {
	p := NewParser(src)
	f := p.parseFile()
	return f, p.errs.Err()
}

func (p *Parser) parseFile() *File {
	f := &File{}
	if p.cur.Type == PACKAGE {
		f.Package = p.parsePackageDecl()
	}
	for p.cur.Type != EOF {
		switch p.cur.Type {
		case INTERFACE:
			f.Decls = append(f.Decls, p.parseInterfaceDecl())
		case WORLD:
			f.Decls = append(f.Decls, p.parseWorldDecl())
		default:
			p.errorf("unexpected token %s at top level", p.cur.Type)
			p.next()
		}
	}
	return f
}

func (p *Parser) parsePackageDecl() *PackageDeclNode {
	pos := p.cur.Pos
	p.expect(PACKAGE)
	ns := p.expect(IDENT)
	p.expect(COLON)
	name := p.expect(IDENT)
	var version string
	if p.cur.Type == AT {
		p.next()
		version = p.expect(SEMVER)
		if version == "" {
			version = p.expect(INT)
		}
	}
	p.expect(SEMI)
	return &PackageDeclNode{Namespace: ns, Name: name, Version: version, Pos: pos}
}

func (p *Parser) parseInterfaceDecl() *InterfaceDecl {
	pos := p.cur.Pos
	p.expect(INTERFACE)
	name := p.expect(IDENT)
	return p.parseInterfaceBody(name, pos)
}

// parseInlineInterfaceBody parses the "interface { ... }" form used
// inline inside a world item, where the name comes from the preceding
// "id:" rather than a token following the "interface" keyword.
func (p *Parser) parseInlineInterfaceBody(name string, pos Position) *InterfaceDecl {
	p.expect(INTERFACE)
	return p.parseInterfaceBody(name, pos)
}

func (p *Parser) parseInterfaceBody(name string, pos Position) *InterfaceDecl {
	decl := &InterfaceDecl{Name: name, Pos: pos}
	p.expect(LBRACE)
	for p.cur.Type != RBRACE && p.cur.Type != EOF {
		start := p.cur
		decl.Items = append(decl.Items, p.parseInterfaceItem())
		p.recoverIfStuck(start)
	}
	p.expect(RBRACE)
	return decl
}

func (p *Parser) parseInterfaceItem() InterfaceItem {
	switch p.cur.Type {
	case USE:
		return p.parseUseDecl()
	case RECORD:
		return p.parseRecordDecl()
	case VARIANT:
		return p.parseVariantDecl()
	case ENUM:
		return p.parseEnumDecl()
	case FLAGS:
		return p.parseFlagsDecl()
	case TYPE:
		return p.parseTypeAlias()
	case RESOURCE:
		return p.parseResourceDecl()
	case INCLUDE:
		return p.parseIncludeDecl()
	case IDENT:
		return p.parseFuncItem()
	default:
		p.errorf("unexpected token %s in interface body", p.cur.Type)
		p.next()
		return &SkippedItem{Kind: "error", Pos: p.cur.Pos}
	}
}

func (p *Parser) parseUseDecl() *UseDecl {
	pos := p.cur.Pos
	p.expect(USE)
	var b strings.Builder
	for p.cur.Type != DOT && p.cur.Type != SEMI && p.cur.Type != EOF {
		b.WriteString(p.cur.Literal)
		p.next()
	}
	if p.cur.Type == DOT {
		p.skipBalancedOrUntilSemi()
	}
	if p.cur.Type == SEMI {
		p.next()
	}
	return &UseDecl{Path: b.String(), Pos: pos}
}

func (p *Parser) parseRecordDecl() *RecordDecl {
	pos := p.cur.Pos
	p.expect(RECORD)
	name := p.expect(IDENT)
	decl := &RecordDecl{Name: name, Pos: pos}
	p.expect(LBRACE)
	for p.cur.Type != RBRACE && p.cur.Type != EOF {
		start := p.cur
		fname := p.expect(IDENT)
		p.expect(COLON)
		ftype := p.parseTypeText()
		decl.Fields = append(decl.Fields, NamedType{Name: fname, Type: ftype})
		if p.cur.Type == COMMA {
			p.next()
		}
		p.recoverIfStuck(start)
	}
	p.expect(RBRACE)
	return decl
}

func (p *Parser) parseVariantDecl() *VariantDecl {
	pos := p.cur.Pos
	p.expect(VARIANT)
	name := p.expect(IDENT)
	decl := &VariantDecl{Name: name, Pos: pos}
	p.expect(LBRACE)
	for p.cur.Type != RBRACE && p.cur.Type != EOF {
		start := p.cur
		caseName := p.expect(IDENT)
		c := VariantCaseNode{Name: caseName}
		if p.cur.Type == LPAREN {
			p.next()
			c.Type = p.parseTypeText()
			c.HasType = true
			p.expect(RPAREN)
		}
		decl.Cases = append(decl.Cases, c)
		if p.cur.Type == COMMA {
			p.next()
		}
		p.recoverIfStuck(start)
	}
	p.expect(RBRACE)
	return decl
}

func (p *Parser) parseEnumDecl() *EnumDecl {
	pos := p.cur.Pos
	p.expect(ENUM)
	name := p.expect(IDENT)
	decl := &EnumDecl{Name: name, Pos: pos}
	p.expect(LBRACE)
	for p.cur.Type != RBRACE && p.cur.Type != EOF {
		start := p.cur
		decl.Cases = append(decl.Cases, p.expect(IDENT))
		if p.cur.Type == COMMA {
			p.next()
		}
		p.recoverIfStuck(start)
	}
	p.expect(RBRACE)
	return decl
}

// recoverIfStuck forces the parser past a token that a failed expect()
// left in place, so a malformed list item (e.g. a missing field name)
// cannot leave the enclosing loop spinning on the same token forever.
func (p *Parser) recoverIfStuck(before Token) {
	if p.cur.Type != EOF && p.cur.Pos == before.Pos && p.cur.Type == before.Type {
		p.next()
	}
}

func (p *Parser) parseFlagsDecl() *SkippedItem {
	pos := p.cur.Pos
	p.expect(FLAGS)
	name := p.expect(IDENT)
	p.skipBalancedOrUntilSemi()
	return &SkippedItem{Kind: "flags", Name: name, Pos: pos}
}

func (p *Parser) parseTypeAlias() *SkippedItem {
	pos := p.cur.Pos
	p.expect(TYPE)
	name := p.expect(IDENT)
	p.skipBalancedOrUntilSemi()
	return &SkippedItem{Kind: "type", Name: name, Pos: pos}
}

func (p *Parser) parseResourceDecl() *SkippedItem {
	pos := p.cur.Pos
	p.expect(RESOURCE)
	name := p.expect(IDENT)
	p.skipBalancedOrUntilSemi()
	return &SkippedItem{Kind: "resource", Name: name, Pos: pos}
}

func (p *Parser) parseIncludeDecl() *SkippedItem {
	pos := p.cur.Pos
	p.expect(INCLUDE)
	var b strings.Builder
	for p.cur.Type != SEMI && p.cur.Type != LBRACE && p.cur.Type != EOF {
		b.WriteString(p.cur.Literal)
		p.next()
	}
	p.skipBalancedOrUntilSemi()
	return &SkippedItem{Kind: "include", Name: b.String(), Pos: pos}
}

// skipBalancedOrUntilSemi consumes tokens up to and including the next
// top-level ';', or a full '{ … }' block (tracking nested braces)
// optionally followed by ';'. Used to skip the bodies of constructs the
// emitter does not support without needing to parse their grammar.
func (p *Parser) skipBalancedOrUntilSemi() {
	if p.cur.Type == LBRACE {
		depth := 0
		for {
			switch p.cur.Type {
			case LBRACE:
				depth++
			case RBRACE:
				depth--
			case EOF:
				return
			}
			p.next()
			if depth == 0 {
				break
			}
		}
		if p.cur.Type == SEMI {
			p.next()
		}
		return
	}
	for p.cur.Type != SEMI && p.cur.Type != EOF {
		p.next()
	}
	if p.cur.Type == SEMI {
		p.next()
	}
}

func (p *Parser) parseFuncItem() *FuncItemDecl {
	pos := p.cur.Pos
	name := p.expect(IDENT)
	p.expect(COLON)
	decl := p.parseFuncSignature(name, pos)
	p.expect(SEMI)
	return decl
}

// parseFuncSignature parses a "func(params) -> results" body, assuming
// the leading "name :" has already been consumed.
func (p *Parser) parseFuncSignature(name string, pos Position) *FuncItemDecl {
	p.expect(FUNC)
	decl := &FuncItemDecl{Name: name, Pos: pos}
	p.expect(LPAREN)
	for p.cur.Type != RPAREN && p.cur.Type != EOF {
		start := p.cur
		pname := p.expect(IDENT)
		p.expect(COLON)
		ptype := p.parseTypeText()
		decl.Params = append(decl.Params, NamedType{Name: pname, Type: ptype})
		if p.cur.Type == COMMA {
			p.next()
		}
		p.recoverIfStuck(start)
	}
	p.expect(RPAREN)
	if p.cur.Type == ARROW {
		p.next()
		if p.cur.Type == LPAREN {
			p.next()
			for p.cur.Type != RPAREN && p.cur.Type != EOF {
				start := p.cur
				rname := p.expect(IDENT)
				p.expect(COLON)
				rtype := p.parseTypeText()
				decl.Results = append(decl.Results, NamedType{Name: rname, Type: rtype})
				if p.cur.Type == COMMA {
					p.next()
				}
				p.recoverIfStuck(start)
			}
			p.expect(RPAREN)
		} else {
			decl.Results = append(decl.Results, NamedType{Name: "", Type: p.parseTypeText()})
		}
	}
	return decl
}

// compoundTypeKeywords are the type-constructor keywords that may be
// followed by a "<...>" argument list (§4.4: "matching of compound
// forms uses the literal prefix list<, option<, result<, tuple<"),
// extended here to own/borrow (resource handles) and stream/future so
// the parser accepts the full WIT surface grammar per §4.1.
var compoundTypeKeywords = map[TokenType]bool{
	LIST: true, OPTION: true, RESULT: true, TUPLE: true,
	OWN: true, BORROW: true, STREAM: true, FUTURE: true,
}

// parseTypeText reconstructs the canonical, whitespace-free textual form
// of a type reference from the token stream (§4.4: "Whitespace is
// stripped before matching"). The result is stored verbatim as a
// [TypeRef] string in the IR; the type mapper re-parses that string
// independently using its own balanced-bracket scanner.
func (p *Parser) parseTypeText() string {
	switch {
	case compoundTypeKeywords[p.cur.Type]:
		kw := p.cur.Literal
		p.next()
		if p.cur.Type != LANGLE {
			return kw // bare "result" with no payload
		}
		p.next()
		var parts []string
		if p.cur.Type == RANGLE {
			// e.g. "result<_, E>" is expressed with "_" below; an empty
			// "<>" is not valid WIT but tolerate it defensively.
		} else {
			parts = append(parts, p.parseTypeText())
			for p.cur.Type == COMMA {
				p.next()
				parts = append(parts, p.parseTypeText())
			}
		}
		p.expect(RANGLE)
		return fmt.Sprintf("%s<%s>", kw, strings.Join(parts, ","))
	case p.cur.Type == IDENT:
		lit := p.cur.Literal
		p.next()
		return lit
	default:
		p.errorf("expected type, found %s", p.cur.Type)
		return ""
	}
}

func (p *Parser) parseWorldDecl() *WorldDecl {
	pos := p.cur.Pos
	p.expect(WORLD)
	name := p.expect(IDENT)
	decl := &WorldDecl{Name: name, Pos: pos}
	p.expect(LBRACE)
	for p.cur.Type != RBRACE && p.cur.Type != EOF {
		switch p.cur.Type {
		case IMPORT:
			p.next()
			decl.Items = append(decl.Items, p.parseWorldItem(DirectionImport))
		case EXPORT:
			p.next()
			decl.Items = append(decl.Items, p.parseWorldItem(DirectionExport))
		case USE:
			p.parseUseDecl()
		case INCLUDE:
			p.parseIncludeDecl()
		default:
			p.errorf("unexpected token %s in world body", p.cur.Type)
			p.next()
		}
	}
	p.expect(RBRACE)
	return decl
}

func (p *Parser) parseWorldItem(dir Direction) WorldItem {
	pos := p.cur.Pos
	head := p.expect(IDENT)
	if p.cur.Type == COLON {
		p.next()
		switch p.cur.Type {
		case FUNC:
			fn := p.parseFuncSignature(head, pos)
			p.expect(SEMI)
			return WorldItem{Direction: dir, Kind: WorldItemFunc, Name: head, Func: fn, Pos: pos}
		case INTERFACE:
			iface := p.parseInlineInterfaceBody(head, pos)
			return WorldItem{Direction: dir, Kind: WorldItemInterface, Name: head, Iface: iface, Pos: pos}
		default:
			// Namespaced path: "ns:name[/ext][@version]"
			name := p.expect(IDENT)
			path := head + ":" + name + p.parseOptionalPathTail()
			p.expect(SEMI)
			return WorldItem{Direction: dir, Kind: WorldItemPath, Name: path, Pos: pos}
		}
	}
	path := head + p.parseOptionalPathTail()
	p.expect(SEMI)
	return WorldItem{Direction: dir, Kind: WorldItemPath, Name: path, Pos: pos}
}

// parseOptionalPathTail consumes any trailing "/ext" and "@version"
// segments of a package path reference.
func (p *Parser) parseOptionalPathTail() string {
	var b strings.Builder
	for p.cur.Type == SLASH || p.cur.Type == DOT {
		b.WriteString(p.cur.Literal)
		p.next()
		b.WriteString(p.cur.Literal)
		p.next()
	}
	if p.cur.Type == AT {
		b.WriteString("@")
		p.next()
		b.WriteString(p.cur.Literal)
		p.next()
	}
	return b.String()
}
