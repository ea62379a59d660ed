// Package parser reads declaration statements and builds their trees,
// driving the construction engine with the paren-nesting depth of every
// declarator piece. It accepts the declaration subset: base types with
// storage classes, qualifiers, and attributes, pointers, references,
// arrays, function parameter lists, parenthesized declarators, multiple
// declarators per statement, typedef definitions, and casts.
package parser

import (
	"fmt"

	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/diag"
	"declc/internal/dialect"
	"declc/internal/lexer"
	"declc/internal/source"
	"declc/internal/token"
	"declc/internal/typedefs"
)

// Options configure parsing.
type Options struct {
	// Lang is the dialect to parse for, a single dialect bit.
	Lang     dialect.ID
	Reporter diag.Reporter
}

// Statement is one parsed statement: a declaration with one or more
// declarator trees sharing a base type, or a single cast tree.
type Statement struct {
	Roots []ast.NodeID
	Span  source.Span
}

type Parser struct {
	tree  *ast.Tree
	reg   *typedefs.Registry
	lx    *lexer.Lexer
	lang  dialect.ID
	rep   diag.Reporter
	tok   token.Token
	depth uint32
}

// New builds a parser over file. Trees are allocated into the registry's
// tree so typedef definitions and uses share one arena.
func New(file *source.File, reg *typedefs.Registry, opts Options) *Parser {
	lang := opts.Lang
	if lang == dialect.None {
		lang = dialect.C23
	}
	return &Parser{
		tree: reg.Tree(),
		reg:  reg,
		lx: lexer.New(file, lexer.Options{
			Lang:     lang,
			Reporter: opts.Reporter,
		}),
		lang: lang,
		rep:  opts.Reporter,
	}
}

// Tree returns the tree statements are built into.
func (p *Parser) Tree() *ast.Tree {
	return p.tree
}

// Parse reads statements until the end of input. It returns every statement
// that parsed cleanly and reports false if any statement did not; after an
// error the parser resynchronizes at the next semicolon.
func (p *Parser) Parse() ([]Statement, bool) {
	ok := true
	var stmts []Statement
	p.next()
	for !p.tok.Is(token.EOF) {
		if p.tok.Is(token.Semicolon) {
			p.next()
			continue
		}
		stmt, stmtOK := p.statement()
		if !stmtOK {
			ok = false
			p.resync()
			continue
		}
		stmts = append(stmts, stmt)
		switch {
		case p.tok.Is(token.Semicolon):
			p.next()
		case p.tok.Is(token.EOF):
		default:
			p.errorAt(diag.SynUnexpectedToken, p.tok.Span,
				"unexpected %s", p.tok.Kind)
			ok = false
			p.resync()
		}
	}
	return stmts, ok
}

func (p *Parser) statement() (Statement, bool) {
	if p.tok.Is(token.LParen) {
		return p.castC()
	}
	if p.tok.Is(token.Ident) {
		if kind, ok := namedCasts[p.tok.Text]; ok {
			return p.namedCast(kind)
		}
	}
	return p.decl()
}

// decl parses one declaration statement: declaration specifiers followed by
// a comma-separated declarator list. Each declarator gets its own type node
// built from the shared specifiers.
func (p *Parser) decl() (Statement, bool) {
	start := p.tok.Span
	spec, ok := p.declSpecs()
	if !ok {
		return Statement{}, false
	}
	if !spec.any && !p.tok.Is(token.Ident) {
		p.errorAt(diag.SynExpectType, p.tok.Span,
			"expected type specifier, found %s", p.tok.Kind)
		return Statement{}, false
	}

	var roots []ast.NodeID
	for {
		typ := p.newTypeNode(spec)
		root, ok := p.declarator(typ)
		if !ok {
			return Statement{}, false
		}
		if spec.typ.Intersects(ctype.STypedef) && !p.defineTypedef(root) {
			return Statement{}, false
		}
		roots = append(roots, root)
		if !p.tok.Is(token.Comma) {
			break
		}
		p.next()
	}
	return Statement{Roots: roots, Span: start.Cover(p.tok.Span)}, true
}

// defineTypedef registers root as a typedef definition under its declared
// name. An equivalent redefinition is silently accepted.
func (p *Parser) defineTypedef(root ast.NodeID) bool {
	name := p.tree.Name(p.tree.FindName(root))
	sp := p.tree.Get(root).Span
	if name == "" {
		p.errorAt(diag.SynExpectIdentifier, sp, "typedef requires a name")
		return false
	}
	if _, outcome := p.reg.Define(name, root); outcome == typedefs.Conflict {
		p.errorAt(diag.SemRedefinition, sp,
			"%q: redefinition with different type", name)
		return false
	}
	return true
}

var namedCasts = map[string]ast.CastKind{
	"const_cast":       ast.CastConst,
	"dynamic_cast":     ast.CastDynamic,
	"reinterpret_cast": ast.CastReinterpret,
	"static_cast":      ast.CastStatic,
}

// castC parses a C-style cast, "(int (*)[3])expr".
func (p *Parser) castC() (Statement, bool) {
	start := p.tok.Span
	p.next()
	root, ok := p.castType()
	if !ok {
		return Statement{}, false
	}
	if !p.expect(token.RParen, diag.SynUnclosedParen) {
		return Statement{}, false
	}
	return p.finishCast(ast.CastC, start, root)
}

// namedCast parses a C++ named cast, "static_cast<char*>(expr)".
func (p *Parser) namedCast(kind ast.CastKind) (Statement, bool) {
	start := p.tok.Span
	p.next()
	if !p.expect(token.Less, diag.SynUnexpectedToken) {
		return Statement{}, false
	}
	root, ok := p.castType()
	if !ok {
		return Statement{}, false
	}
	if !p.expect(token.Greater, diag.SynUnexpectedToken) {
		return Statement{}, false
	}
	if !p.expect(token.LParen, diag.SynUnexpectedToken) {
		return Statement{}, false
	}
	stmt, ok := p.finishCast(kind, start, root)
	if !ok {
		return Statement{}, false
	}
	if !p.expect(token.RParen, diag.SynUnclosedParen) {
		return Statement{}, false
	}
	return stmt, true
}

// castType parses the abstract declaration naming the target type.
func (p *Parser) castType() (ast.NodeID, bool) {
	spec, ok := p.declSpecs()
	if !ok {
		return ast.NoNode, false
	}
	if !spec.any {
		p.errorAt(diag.SynExpectType, p.tok.Span,
			"expected type specifier, found %s", p.tok.Kind)
		return ast.NoNode, false
	}
	typ := p.newTypeNode(spec)
	return p.declarator(typ)
}

// finishCast wraps the target type in a cast node and attaches the operand
// name, when one follows.
func (p *Parser) finishCast(kind ast.CastKind, start source.Span, typ ast.NodeID) (Statement, bool) {
	cast := p.tree.New(ast.Node{
		Kind:     ast.KCast,
		Depth:    p.depth,
		Span:     start.Cover(p.tree.Get(typ).Span),
		CastKind: kind,
	})
	if p.tok.Is(token.Ident) {
		p.tree.Get(cast).SName = ast.NameOf(p.tok.Text)
		p.next()
	}
	p.tree.SetChild(cast, typ)
	return Statement{Roots: []ast.NodeID{cast}, Span: p.tree.Get(cast).Span}, true
}

func (p *Parser) next() {
	p.tok = p.lx.Next()
}

func (p *Parser) expect(kind token.Kind, code diag.Code) bool {
	if !p.tok.Is(kind) {
		p.errorAt(code, p.tok.Span, "expected %s, found %s", kind, p.tok.Kind)
		return false
	}
	p.next()
	return true
}

func (p *Parser) errorAt(code diag.Code, sp source.Span, format string, args ...any) {
	diag.ReportError(p.rep, code, sp, fmt.Sprintf(format, args...)).Emit()
}

// resync skips to the end of the current statement so later statements can
// still be parsed after an error.
func (p *Parser) resync() {
	for !p.tok.IsEnd() {
		p.next()
	}
	if p.tok.Is(token.Semicolon) {
		p.next()
	}
}
