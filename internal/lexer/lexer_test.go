package lexer

import (
	"testing"

	"declc/internal/diag"
	"declc/internal/dialect"
	"declc/internal/source"
	"declc/internal/token"
)

func lex(t *testing.T, input string, lang dialect.ID) (*Lexer, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test", []byte(input))
	bag := diag.NewBag(16)
	return New(fs.Get(id), Options{Lang: lang, Reporter: diag.BagReporter{Bag: bag}}), bag
}

func collect(lx *Lexer) []token.Token {
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Is(token.EOF) {
			return toks
		}
	}
}

func TestTokenizeDeclaration(t *testing.T) {
	lx, bag := lex(t, "static int (*x)[3];", dialect.C11)
	toks := collect(lx)

	want := []struct {
		kind token.Kind
		text string
	}{
		{token.Keyword, "static"},
		{token.Keyword, "int"},
		{token.LParen, "("},
		{token.Star, "*"},
		{token.Ident, "x"},
		{token.RParen, ")"},
		{token.LBracket, "["},
		{token.Number, "3"},
		{token.RBracket, "]"},
		{token.Semicolon, ";"},
		{token.EOF, ""},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Kind != w.kind || toks[i].Text != w.text {
			t.Errorf("token %d: got %v %q, want %v %q",
				i, toks[i].Kind, toks[i].Text, w.kind, w.text)
		}
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestKeywordsAreDialectSensitive(t *testing.T) {
	lx, _ := lex(t, "bool class", dialect.C99)
	if tok := lx.Next(); !tok.Is(token.Ident) {
		t.Errorf(`"bool" in c99: got %v, want identifier`, tok.Kind)
	}
	if tok := lx.Next(); !tok.Is(token.Ident) {
		t.Errorf(`"class" in c99: got %v, want identifier`, tok.Kind)
	}

	lx, _ = lex(t, "bool class", dialect.CPP17)
	if tok := lx.Next(); !tok.Is(token.Keyword) {
		t.Errorf(`"bool" in c++17: got %v, want keyword`, tok.Kind)
	}
	if tok := lx.Next(); !tok.Is(token.Keyword) {
		t.Errorf(`"class" in c++17: got %v, want keyword`, tok.Kind)
	}
}

func TestCommentsAndDoublePunct(t *testing.T) {
	// Attribute names are context-sensitive: the lexer emits them as plain
	// identifiers and the parser resolves them inside [[...]].
	lx, _ := lex(t, "a[[nodiscard/*x*/]] // trailing\n::b&&...", dialect.CPP20)
	want := []token.Kind{
		token.Ident, token.LBracket2, token.Ident, token.RBracket2,
		token.Colon2, token.Ident, token.Amp2, token.Ellipsis, token.EOF,
	}
	for i, k := range want {
		if tok := lx.Next(); tok.Kind != k {
			t.Fatalf("token %d: got %v, want %v", i, tok.Kind, k)
		}
	}
}

func TestAttributeNamesAsIdentifiers(t *testing.T) {
	// An attribute spelling outside [[...]] is an ordinary identifier and
	// must be usable as a declarator name.
	lx, _ := lex(t, "int deprecated;", dialect.CPP20)
	lx.Next()
	if tok := lx.Next(); !tok.Is(token.Ident) || tok.Text != "deprecated" {
		t.Fatalf(`"deprecated": got %v %q, want identifier`, tok.Kind, tok.Text)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := lex(t, "int x", dialect.C11)
	if tok := lx.Peek(); tok.Text != "int" {
		t.Fatalf("peek: got %q", tok.Text)
	}
	if tok := lx.Next(); tok.Text != "int" {
		t.Fatalf("next after peek: got %q", tok.Text)
	}
	if tok := lx.Next(); tok.Text != "x" {
		t.Fatalf("second next: got %q", tok.Text)
	}
}

func TestUnknownCharacter(t *testing.T) {
	lx, bag := lex(t, "int @x", dialect.C11)
	lx.Next()
	tok := lx.Next()
	if !tok.Is(token.Invalid) {
		t.Fatalf("got %v, want invalid token", tok.Kind)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
}

func TestNumberSpellings(t *testing.T) {
	lx, _ := lex(t, "0x1F 010 42", dialect.C11)
	for _, want := range []string{"0x1F", "010", "42"} {
		tok := lx.Next()
		if !tok.Is(token.Number) || tok.Text != want {
			t.Fatalf("got %v %q, want number %q", tok.Kind, tok.Text, want)
		}
	}
}
