package parser

import (
	"strconv"

	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/diag"
	"declc/internal/token"
)

// declarator parses one declarator over the type node typ and returns the
// root of the merged tree. Pointers and references build a chain in source
// order; a parenthesized group recurses one depth level down over a fresh
// placeholder, and the level's placeholder is patched away before returning
// so suffixes written outside the group attach at the right precedence.
func (p *Parser) declarator(typ ast.NodeID) (ast.NodeID, bool) {
	top := typ
	for {
		var kind ast.Kind
		switch {
		case p.tok.Is(token.Star):
			kind = ast.KPointer
		case p.tok.Is(token.Amp):
			kind = ast.KReference
		case p.tok.Is(token.Amp2):
			kind = ast.KRvalueReference
		}
		if kind == ast.KNone {
			break
		}
		sp := p.tok.Span
		p.next()
		node := p.tree.New(ast.Node{
			Kind:  kind,
			Depth: p.depth,
			Span:  sp,
			Type:  p.qualifiers(),
		})
		p.tree.SetChild(node, top)
		top = node
	}

	root := top
	switch {
	case p.tok.Is(token.LParen) && p.declParen():
		p.next()
		ph := p.tree.NewNode(ast.KPlaceholder, p.depth, p.tok.Span)
		p.depth++
		inner, ok := p.declarator(ph)
		p.depth--
		if !ok {
			return ast.NoNode, false
		}
		if !p.expect(token.RParen, diag.SynUnclosedParen) {
			return ast.NoNode, false
		}
		root = inner

	case p.tok.Is(token.Ident):
		name, ok := p.scopedName()
		if !ok {
			return ast.NoNode, false
		}
		p.tree.Get(top).SName = name
	}

	for {
		switch {
		case p.tok.Is(token.LBracket):
			arr, ok := p.arraySuffix()
			if !ok {
				return ast.NoNode, false
			}
			root = p.tree.InsertArray(root, arr)

		case p.tok.Is(token.LParen):
			fn, ok := p.funcSuffix()
			if !ok {
				return ast.NoNode, false
			}
			root = p.tree.InsertFunc(root, top, fn)

		default:
			return p.tree.PatchPlaceholder(p.tree.Root(typ), root), true
		}
	}
}

// declParen decides whether a "(" opens a parenthesized declarator or a
// parameter list, by looking one token past it. An identifier that names a
// typedef starts a parameter; any other identifier is the declared name.
func (p *Parser) declParen() bool {
	switch la := p.lx.Peek(); {
	case la.Is(token.Star) || la.Is(token.Amp) || la.Is(token.Amp2) ||
		la.Is(token.LParen):
		return true
	case la.Is(token.Ident):
		_, isType := p.reg.Lookup(la.Text)
		return !isType
	}
	return false
}

// qualifiers consumes cv, restrict, and _Atomic qualifier keywords.
func (p *Parser) qualifiers() ctype.Type {
	q := ctype.TNone
	for p.tok.Is(token.Keyword) {
		kw, _ := token.Lookup(p.tok.Text, p.lang)
		if !kw.TID.Intersects(ctype.SCVR | ctype.SAtomic) {
			break
		}
		q = q.OrTID(kw.TID)
		p.next()
	}
	return q
}

// scopedName parses a possibly ::-scoped declared name.
func (p *Parser) scopedName() (ast.ScopedName, bool) {
	var name ast.ScopedName
	name.Append(p.tok.Text, ast.ScopeNone)
	p.next()
	for p.tok.Is(token.Colon2) {
		p.next()
		if !p.tok.Is(token.Ident) {
			p.errorAt(diag.SynExpectIdentifier, p.tok.Span,
				"expected identifier, found %s", p.tok.Kind)
			return ast.ScopedName{}, false
		}
		name.Append(p.tok.Text, ast.ScopeNone)
		p.next()
	}
	return name, true
}

// arraySuffix parses one "[...]" dimension into an array node. The node gets
// a placeholder child so the engine can graft it by depth.
func (p *Parser) arraySuffix() (ast.NodeID, bool) {
	sp := p.tok.Span
	p.next()

	qual := ctype.TNone
	for p.tok.Is(token.Keyword) {
		kw, _ := token.Lookup(p.tok.Text, p.lang)
		switch {
		case p.tok.Text == "static":
			qual = qual.OrTID(ctype.SNonEmptyArray)
		case kw.TID.Intersects(ctype.SCVR | ctype.SAtomic):
			qual = qual.OrTID(kw.TID)
		default:
			p.errorAt(diag.SynUnexpectedToken, p.tok.Span,
				"%q can not be used here", p.tok.Text)
			return ast.NoNode, false
		}
		p.next()
	}

	arr := ast.Array{SizeKind: ast.ArraySizeNone}
	switch {
	case p.tok.Is(token.Number):
		size, err := strconv.ParseInt(p.tok.Text, 0, 64)
		if err != nil {
			p.errorAt(diag.SynBadArraySize, p.tok.Span,
				"invalid array size %q", p.tok.Text)
			return ast.NoNode, false
		}
		arr.SizeKind, arr.Size = ast.ArraySizeInt, size
		p.next()
	case p.tok.Is(token.Ident):
		arr.SizeKind, arr.SizeName = ast.ArraySizeName, p.tok.Text
		p.next()
	case p.tok.Is(token.Star):
		arr.SizeKind = ast.ArraySizeStar
		p.next()
	}

	sp = sp.Cover(p.tok.Span)
	if !p.expect(token.RBracket, diag.SynExpectRBracket) {
		return ast.NoNode, false
	}
	id := p.tree.New(ast.Node{
		Kind:  ast.KArray,
		Depth: p.depth,
		Span:  sp,
		Type:  qual,
		Array: arr,
	})
	p.tree.SetChild(id, p.tree.NewNode(ast.KPlaceholder, p.depth, sp))
	return id, true
}

// funcSuffix parses one "(...)" parameter list plus trailing member-function
// qualifiers into a function node.
func (p *Parser) funcSuffix() (ast.NodeID, bool) {
	sp := p.tok.Span
	p.next()
	fn := p.tree.New(ast.Node{Kind: ast.KFunction, Depth: p.depth, Span: sp})

	params, ok := p.params()
	if !ok {
		return ast.NoNode, false
	}

	qual := ctype.TNone
	for {
		switch {
		case p.tok.Is(token.Keyword):
			kw, _ := token.Lookup(p.tok.Text, p.lang)
			if !kw.TID.Intersects(ctype.SCV | ctype.SNoexcept) {
				p.errorAt(diag.SynUnexpectedToken, p.tok.Span,
					"%q can not follow a parameter list", p.tok.Text)
				return ast.NoNode, false
			}
			qual = qual.OrTID(kw.TID)
		case p.tok.Is(token.Amp):
			qual = qual.OrTID(ctype.SReference)
		case p.tok.Is(token.Amp2):
			qual = qual.OrTID(ctype.SRvalueReference)
		default:
			// Params may have grown the arena, so resolve fn again.
			n := p.tree.Get(fn)
			n.Func.Params = params
			n.Type = n.Type.Or(qual)
			return fn, true
		}
		p.next()
	}
}

// params parses a parameter list up to and including the closing paren. K&R
// identifier lists and "..." are accepted; where a variadic marker may appear
// is the checker's question.
func (p *Parser) params() ([]ast.Param, bool) {
	if p.tok.Is(token.RParen) {
		p.next()
		return nil, true
	}
	var params []ast.Param
	for {
		switch {
		case p.tok.Is(token.Ellipsis):
			id := p.tree.NewNode(ast.KVariadic, p.depth, p.tok.Span)
			params = append(params, ast.Param{Node: id})
			p.next()

		case p.tok.Is(token.Keyword) || p.tok.Is(token.LBracket2) || p.isTypeName():
			spec, ok := p.declSpecs()
			if !ok {
				return nil, false
			}
			typ := p.newTypeNode(spec)
			root, ok := p.declarator(typ)
			if !ok {
				return nil, false
			}
			params = append(params, ast.Param{Node: root})

		case p.tok.Is(token.Ident):
			id := p.tree.New(ast.Node{
				Kind:  ast.KName,
				Depth: p.depth,
				Span:  p.tok.Span,
				SName: ast.NameOf(p.tok.Text),
			})
			params = append(params, ast.Param{Node: id})
			p.next()

		default:
			p.errorAt(diag.SynUnexpectedToken, p.tok.Span,
				"expected parameter, found %s", p.tok.Kind)
			return nil, false
		}
		if !p.tok.Is(token.Comma) {
			break
		}
		p.next()
	}
	if !p.expect(token.RParen, diag.SynUnclosedParen) {
		return nil, false
	}
	return params, true
}

func (p *Parser) isTypeName() bool {
	if !p.tok.Is(token.Ident) {
		return false
	}
	_, ok := p.reg.Lookup(p.tok.Text)
	return ok
}
