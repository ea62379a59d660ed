// Package lexer tokenizes declaration text. The token stream is flat and
// small; the lexer keeps a one-token lookahead buffer for the parser.
package lexer

import (
	"declc/internal/diag"
	"declc/internal/dialect"
	"declc/internal/source"
	"declc/internal/token"
)

// Options configure lexing.
type Options struct {
	// Lang decides which spellings are keywords.
	Lang     dialect.ID
	Reporter diag.Reporter
}

type Lexer struct {
	file *source.File
	off  uint32
	opts Options
	look *token.Token
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{file: file, opts: opts}
}

// Next returns the next token, reporting and skipping anything it cannot
// tokenize. After the end of input it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipSpace()
	if lx.eof() {
		return token.Token{Kind: token.EOF, Span: lx.spanFrom(lx.off)}
	}

	ch := lx.peek()
	switch {
	case isIdentStart(ch):
		return lx.scanIdent()
	case isDigit(ch):
		return lx.scanNumber()
	default:
		return lx.scanPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) eof() bool {
	return lx.off >= uint32(len(lx.file.Content))
}

func (lx *Lexer) peek() byte {
	return lx.file.Content[lx.off]
}

func (lx *Lexer) peekAt(delta uint32) (byte, bool) {
	if lx.off+delta >= uint32(len(lx.file.Content)) {
		return 0, false
	}
	return lx.file.Content[lx.off+delta], true
}

func (lx *Lexer) spanFrom(start uint32) source.Span {
	return source.Span{File: lx.file.ID, Start: start, End: lx.off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) skipSpace() {
	for !lx.eof() {
		switch ch := lx.peek(); {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			lx.off++
		case ch == '/' && lx.at(1, '/'):
			for !lx.eof() && lx.peek() != '\n' {
				lx.off++
			}
		case ch == '/' && lx.at(1, '*'):
			lx.off += 2
			for !lx.eof() {
				if lx.peek() == '*' && lx.at(1, '/') {
					lx.off += 2
					break
				}
				lx.off++
			}
		default:
			return
		}
	}
}

func (lx *Lexer) at(delta uint32, want byte) bool {
	ch, ok := lx.peekAt(delta)
	return ok && ch == want
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ch == '$' ||
		(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func (lx *Lexer) scanIdent() token.Token {
	start := lx.off
	for !lx.eof() && isIdentPart(lx.peek()) {
		lx.off++
	}
	sp := lx.spanFrom(start)
	text := lx.text(sp)
	kind := token.Ident
	if _, ok := token.Lookup(text, lx.opts.Lang); ok {
		kind = token.Keyword
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

func (lx *Lexer) scanNumber() token.Token {
	start := lx.off
	for !lx.eof() && (isIdentPart(lx.peek())) {
		// Hex digits, the 0x prefix, and integer suffixes are all ident
		// bytes; the parser validates the spelling when it needs the value.
		lx.off++
	}
	sp := lx.spanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) scanPunct() token.Token {
	start := lx.off
	ch := lx.peek()
	lx.off++

	kind := token.Invalid
	switch ch {
	case '*':
		kind = token.Star
	case '&':
		kind = token.Amp
		if lx.at(0, '&') {
			lx.off++
			kind = token.Amp2
		}
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '[':
		kind = token.LBracket
		if lx.at(0, '[') {
			lx.off++
			kind = token.LBracket2
		}
	case ']':
		kind = token.RBracket
		if lx.at(0, ']') {
			lx.off++
			kind = token.RBracket2
		}
	case '<':
		kind = token.Less
	case '>':
		kind = token.Greater
	case ',':
		kind = token.Comma
	case ';':
		kind = token.Semicolon
	case ':':
		if lx.at(0, ':') {
			lx.off++
			kind = token.Colon2
		}
	case '.':
		if lx.at(0, '.') && lx.at(1, '.') {
			lx.off += 2
			kind = token.Ellipsis
		}
	}

	sp := lx.spanFrom(start)
	tok := token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
	if kind == token.Invalid {
		diag.ReportError(lx.opts.Reporter, diag.LexUnknownChar, sp,
			"unexpected character "+tok.Text).Emit()
	}
	return tok
}
