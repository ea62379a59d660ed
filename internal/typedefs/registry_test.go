package typedefs

import (
	"bytes"
	"testing"

	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/dialect"
)

func TestPredefinedGatedByDialect(t *testing.T) {
	c89 := New(ast.NewTree(64), dialect.C89)
	if _, ok := c89.Lookup("size_t"); !ok {
		t.Error("size_t should exist in c89")
	}
	if _, ok := c89.Lookup("int32_t"); ok {
		t.Error("int32_t should not exist before c99")
	}

	c99 := New(ast.NewTree(64), dialect.C99)
	if _, ok := c99.Lookup("int32_t"); !ok {
		t.Error("int32_t should exist in c99")
	}
	if !c99.IsPredefined("int32_t") {
		t.Error("int32_t should be marked predefined")
	}

	cpp98 := New(ast.NewTree(64), dialect.CPP98)
	if _, ok := cpp98.Lookup("wchar_t"); ok {
		t.Error("wchar_t is a built-in type in c++, not a typedef")
	}
}

func TestDefineOutcomes(t *testing.T) {
	tree := ast.NewTree(64)
	r := New(tree, dialect.C11)

	intA := tree.New(ast.Node{Kind: ast.KBuiltin, Type: ctype.New(ctype.BInt)})
	intB := tree.New(ast.Node{Kind: ast.KBuiltin, Type: ctype.New(ctype.BInt)})
	charC := tree.New(ast.Node{Kind: ast.KBuiltin, Type: ctype.New(ctype.BChar)})

	got, outcome := r.Define("my_int", intA)
	if outcome != Added || got != intA {
		t.Fatalf("first Define = %v, %v", got, outcome)
	}
	got, outcome = r.Define("my_int", intB)
	if outcome != Equivalent || got != intA {
		t.Errorf("equivalent redefinition = %v, %v; want existing, Equivalent", got, outcome)
	}
	got, outcome = r.Define("my_int", charC)
	if outcome != Conflict || got != intA {
		t.Errorf("conflicting redefinition = %v, %v; want existing, Conflict", got, outcome)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	tree := ast.NewTree(64)
	r := New(tree, dialect.C11)

	// my_ptr: pointer to const char
	base := tree.New(ast.Node{
		Kind:  ast.KBuiltin,
		Type:  ctype.New(ctype.BChar, ctype.SConst),
		SName: ast.NameOf("my_ptr"),
	})
	ptr := tree.PointerTo(base)
	r.Define("my_ptr", ptr)

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	tree2 := ast.NewTree(64)
	r2 := New(tree2, dialect.C11)
	if err := r2.Load(&buf); err != nil {
		t.Fatalf("Load: %v", err)
	}

	id, ok := r2.Lookup("my_ptr")
	if !ok {
		t.Fatal("my_ptr missing after load")
	}
	n := tree2.Get(id)
	if n.Kind != ast.KPointer {
		t.Fatalf("loaded kind = %v, want pointer", n.Kind)
	}
	if n.SName.String() != "my_ptr" {
		t.Errorf("loaded name = %q, want my_ptr", n.SName.String())
	}
	pointee := tree2.Get(tree2.ChildID(id))
	if !pointee.Type.Is(ctype.BChar) || !pointee.Type.Is(ctype.SConst) {
		t.Error("pointee type lost in round trip")
	}
	// Predefined names are not duplicated by a load.
	if !r2.IsPredefined("size_t") {
		t.Error("predefined seeding lost")
	}
}
