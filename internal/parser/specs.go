package parser

import (
	"strconv"

	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/diag"
	"declc/internal/dialect"
	"declc/internal/source"
	"declc/internal/token"
)

// declSpec accumulates the declaration specifiers shared by every declarator
// of a statement: the combined type bits plus whatever payload the leaf type
// node will need.
type declSpec struct {
	typ      ctype.Type
	span     source.Span
	tdef     ast.NodeID // typedef definition, when the type is a typedef name
	csu      ctype.TID  // BClass, BStruct, or BUnion when a tag was written
	tag      string
	enum     bool
	bitWidth uint32
	seenBase bool
	any      bool // at least one specifier token was consumed
}

// declSpecs consumes declaration specifiers until a token that cannot be
// one: keywords in any order, at most one typedef name, and [[...]]
// attribute specifiers. It never consumes the declarator.
func (p *Parser) declSpecs() (declSpec, bool) {
	spec := declSpec{tdef: ast.NoNode, span: p.tok.Span}
	for {
		switch {
		case p.tok.Is(token.Keyword):
			if !p.specKeyword(&spec) {
				return spec, false
			}

		case p.tok.Is(token.Ident) && !spec.seenBase:
			def, ok := p.reg.Lookup(p.tok.Text)
			if !ok {
				// Not a type name, so it must be the declarator.
				return spec, true
			}
			spec.tdef = def
			spec.seenBase = true
			spec.any = true
			spec.span = spec.span.Cover(p.tok.Span)
			p.next()

		case p.tok.Is(token.LBracket2):
			if !p.attrSpecifier(&spec) {
				return spec, false
			}

		default:
			return spec, true
		}
	}
}

func (p *Parser) specKeyword(spec *declSpec) bool {
	kw, _ := token.Lookup(p.tok.Text, p.lang)
	text := p.tok.Text
	spec.span = spec.span.Cover(p.tok.Span)
	spec.any = true
	p.next()

	switch {
	case text == "auto":
		// A storage class in old C and old C++, a type elsewhere.
		if dialect.AutoStorage.Intersects(p.lang) {
			spec.typ = spec.typ.OrTID(ctype.SAuto)
		} else {
			spec.typ = spec.typ.OrTID(ctype.BAuto)
			spec.seenBase = true
		}

	case text == "long" && spec.typ.Is(ctype.BLong):
		spec.typ = spec.typ.OrTID(ctype.BLongLong)
		spec.seenBase = true

	case text == "_BitInt":
		width, ok := p.bitIntWidth()
		if !ok {
			return false
		}
		spec.bitWidth = width
		spec.typ = spec.typ.OrTID(ctype.BBitInt)
		spec.seenBase = true

	case kw.TID == ctype.BStruct || kw.TID == ctype.BUnion || kw.TID == ctype.BClass:
		tag, ok := p.tagName()
		if !ok {
			return false
		}
		spec.csu, spec.tag = kw.TID, tag
		spec.typ = spec.typ.OrTID(kw.TID)
		spec.seenBase = true

	case kw.TID == ctype.BEnum:
		// "enum class" and "enum struct" keep the scoping keyword as an
		// extra base bit; the checker decides whether the dialect has it.
		if p.tok.Is(token.Keyword) && (p.tok.Text == "class" || p.tok.Text == "struct") {
			scoping, _ := token.Lookup(p.tok.Text, p.lang)
			spec.typ = spec.typ.OrTID(scoping.TID)
			p.next()
		}
		tag, ok := p.tagName()
		if !ok {
			return false
		}
		spec.enum, spec.tag = true, tag
		spec.typ = spec.typ.OrTID(ctype.BEnum)
		spec.seenBase = true

	default:
		spec.typ = spec.typ.OrTID(kw.TID)
		if ctype.PartOf(kw.TID) == ctype.PartBase {
			spec.seenBase = true
		}
	}
	return true
}

// newTypeNode builds the leaf type node of one declarator from the shared
// specifiers. Each declarator in a list gets a fresh node so the engine can
// graft onto each tree independently.
func (p *Parser) newTypeNode(spec declSpec) ast.NodeID {
	n := ast.Node{
		Depth: p.depth,
		Span:  spec.span,
		Type:  spec.typ,
	}
	switch {
	case spec.tdef != ast.NoNode:
		n.Kind = ast.KTypedef
		n.TypedefFor = spec.tdef
		n.Type = n.Type.OrTID(ctype.BTypedef)
	case spec.csu != 0:
		n.Kind = ast.KClassStructUnion
		n.CSUKind = spec.csu
		n.Tag = spec.tag
	case spec.enum:
		n.Kind = ast.KEnum
		n.Tag = spec.tag
	default:
		n.Kind = ast.KBuiltin
		n.BitWidth = spec.bitWidth
	}
	return p.tree.New(n)
}

// tagName parses the possibly scoped tag after struct, union, class, or
// enum.
func (p *Parser) tagName() (string, bool) {
	if !p.tok.Is(token.Ident) {
		p.errorAt(diag.SynExpectIdentifier, p.tok.Span,
			"expected identifier, found %s", p.tok.Kind)
		return "", false
	}
	name := p.tok.Text
	p.next()
	for p.tok.Is(token.Colon2) {
		p.next()
		if !p.tok.Is(token.Ident) {
			p.errorAt(diag.SynExpectIdentifier, p.tok.Span,
				"expected identifier, found %s", p.tok.Kind)
			return "", false
		}
		name += "::" + p.tok.Text
		p.next()
	}
	return name, true
}

// bitIntWidth parses the parenthesized width after _BitInt.
func (p *Parser) bitIntWidth() (uint32, bool) {
	if !p.expect(token.LParen, diag.SynUnexpectedToken) {
		return 0, false
	}
	if !p.tok.Is(token.Number) {
		p.errorAt(diag.SynUnexpectedToken, p.tok.Span,
			"expected number, found %s", p.tok.Kind)
		return 0, false
	}
	v, err := strconv.ParseUint(p.tok.Text, 0, 32)
	if err != nil {
		p.errorAt(diag.LexBadNumber, p.tok.Span,
			"invalid width %q", p.tok.Text)
		return 0, false
	}
	p.next()
	if !p.expect(token.RParen, diag.SynUnclosedParen) {
		return 0, false
	}
	return uint32(v), true
}

// attrSpecifier parses one [[...]] specifier into the accumulated attribute
// bits. Whether an attribute is legal for the dialect is the type-legality
// tables' question; only unknown names are rejected here.
func (p *Parser) attrSpecifier(spec *declSpec) bool {
	p.next()
	for {
		if !p.tok.Is(token.Ident) && !p.tok.Is(token.Keyword) {
			p.errorAt(diag.SynExpectIdentifier, p.tok.Span,
				"expected attribute name, found %s", p.tok.Kind)
			return false
		}
		attr, ok := token.Attrs[p.tok.Text]
		if !ok {
			p.errorAt(diag.SynUnexpectedToken, p.tok.Span,
				"unknown attribute %q", p.tok.Text)
			return false
		}
		spec.typ = spec.typ.OrTID(attr.TID)
		spec.span = spec.span.Cover(p.tok.Span)
		spec.any = true
		p.next()
		if !p.tok.Is(token.Comma) {
			break
		}
		p.next()
	}
	if !p.tok.Is(token.RBracket2) {
		p.errorAt(diag.SynExpectRBracket, p.tok.Span,
			`expected "]]", found %s`, p.tok.Kind)
		return false
	}
	p.next()
	return true
}
