package token

import (
	"testing"

	"declc/internal/ctype"
	"declc/internal/dialect"
)

func TestLookupDialectGating(t *testing.T) {
	kw, ok := Lookup("restrict", dialect.C99)
	if !ok || !kw.TID.Has(ctype.SRestrict) {
		t.Errorf(`"restrict" in c99: got %v, %v`, kw, ok)
	}
	if _, ok := Lookup("restrict", dialect.CPP17); ok {
		t.Error(`"restrict" must not be a keyword in c++17`)
	}
	if _, ok := Lookup("not_a_keyword", dialect.C23); ok {
		t.Error("unknown spelling resolved")
	}
}

func TestAttrNamesAreNotKeywords(t *testing.T) {
	// Attribute names live in their own table; as bare spellings they stay
	// ordinary identifiers so they remain usable as declarator names.
	for name := range Attrs {
		if _, ok := Lookup(name, dialect.All); ok {
			t.Errorf("%q is both an attribute and a keyword", name)
		}
	}
	attr, ok := Attrs["nodiscard"]
	if !ok || !attr.TID.Has(ctype.ANodiscard) {
		t.Errorf(`"nodiscard": got %v, %v`, attr, ok)
	}
}

func TestTokenKindAndTable(t *testing.T) {
	// The Keyword kind and the KeywordInfo table are distinct names; a token
	// carries the kind, Lookup supplies the bits.
	tok := Token{Kind: Keyword, Text: "static"}
	if !tok.Is(Keyword) {
		t.Fatal("kind mismatch")
	}
	kw, ok := Lookup(tok.Text, dialect.C89)
	if !ok || !kw.TID.Has(ctype.SStatic) {
		t.Errorf(`"static": got %v, %v`, kw, ok)
	}
}
