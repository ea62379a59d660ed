package parser

import (
	"testing"

	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/diag"
	"declc/internal/dialect"
	"declc/internal/source"
	"declc/internal/typedefs"
)

func parse(t *testing.T, input string, lang dialect.ID) (*ast.Tree, []Statement, *diag.Bag, bool) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test", []byte(input))
	bag := diag.NewBag(16)
	reg := typedefs.New(ast.NewTree(32), lang)
	p := New(fs.Get(id), reg, Options{Lang: lang, Reporter: diag.BagReporter{Bag: bag}})
	stmts, ok := p.Parse()
	return p.Tree(), stmts, bag, ok
}

func parseOne(t *testing.T, input string, lang dialect.ID) (*ast.Tree, ast.NodeID) {
	t.Helper()
	tr, stmts, bag, ok := parse(t, input, lang)
	if !ok {
		t.Fatalf("parse %q failed: %v", input, bag.Items())
	}
	if len(stmts) != 1 || len(stmts[0].Roots) != 1 {
		t.Fatalf("parse %q: got %d statements, want 1 with 1 root", input, len(stmts))
	}
	return tr, stmts[0].Roots[0]
}

// wantChain walks the owning-child chain from id and checks each node's kind
// in order, returning the id of the last node.
func wantChain(t *testing.T, tr *ast.Tree, id ast.NodeID, kinds ...ast.Kind) ast.NodeID {
	t.Helper()
	for i, kind := range kinds {
		n := tr.Get(id)
		if n == nil {
			t.Fatalf("chain ended at link %d, want %s", i, kind)
		}
		if !n.Kind.Is(kind) {
			t.Fatalf("link %d is %s, want %s", i, n.Kind, kind)
		}
		if i < len(kinds)-1 {
			id = tr.ChildID(id)
		}
	}
	return id
}

func TestPointerToArray(t *testing.T) {
	tr, root := parseOne(t, "int (*x)[3];", dialect.C11)
	leaf := wantChain(t, tr, root, ast.KPointer, ast.KArray, ast.KBuiltin)
	if got := tr.Name(root); got != "x" {
		t.Errorf("name = %q, want %q", got, "x")
	}
	arr := tr.Get(tr.ChildID(root))
	if arr.Array.SizeKind != ast.ArraySizeInt || arr.Array.Size != 3 {
		t.Errorf("array size = %v/%d, want int 3", arr.Array.SizeKind, arr.Array.Size)
	}
	if !tr.Get(leaf).Type.Is(ctype.BInt) {
		t.Errorf("leaf type = %v, want int", tr.Get(leaf).Type)
	}
}

// The same tokens without the parentheses bind the array first.
func TestArrayOfPointers(t *testing.T) {
	tr, root := parseOne(t, "int *x[3];", dialect.C11)
	wantChain(t, tr, root, ast.KArray, ast.KPointer, ast.KBuiltin)
	if got := tr.Name(root); got != "x" {
		t.Errorf("name = %q, want %q", got, "x")
	}
}

func TestFunctionPointer(t *testing.T) {
	tr, root := parseOne(t, "int (*f)(char, double);", dialect.C11)
	wantChain(t, tr, root, ast.KPointer, ast.KFunction, ast.KBuiltin)
	if got := tr.Name(root); got != "f" {
		t.Errorf("name = %q, want %q", got, "f")
	}
	fn := tr.Get(tr.ChildID(root))
	if len(fn.Func.Params) != 2 {
		t.Fatalf("params = %d, want 2", len(fn.Func.Params))
	}
	if !tr.Get(fn.Func.Params[1].Node).Type.Is(ctype.BDouble) {
		t.Errorf("second param is not double")
	}
}

// A storage class written on the base type belongs to the declared function,
// not to its return type.
func TestStorageMovesToFunction(t *testing.T) {
	tr, root := parseOne(t, "static int f(void);", dialect.C11)
	wantChain(t, tr, root, ast.KFunction, ast.KBuiltin)
	n := tr.Get(root)
	if got := tr.Name(root); got != "f" {
		t.Errorf("name = %q, want %q", got, "f")
	}
	if !n.Type.Intersects(ctype.SStatic) {
		t.Error("function is not static")
	}
	if tr.Get(n.Func.Ret).Type.Intersects(ctype.SStatic) {
		t.Error("return type kept the storage class")
	}
	if len(n.Func.Params) != 1 || !tr.Get(n.Func.Params[0].Node).Type.Is(ctype.BVoid) {
		t.Errorf("params = %v, want one void", n.Func.Params)
	}
}

func TestDeclaratorList(t *testing.T) {
	tr, stmts, bag, ok := parse(t, "int *p, x;", dialect.C11)
	if !ok {
		t.Fatalf("parse failed: %v", bag.Items())
	}
	if len(stmts) != 1 || len(stmts[0].Roots) != 2 {
		t.Fatalf("got %d statements, want 1 with 2 roots", len(stmts))
	}
	first, second := stmts[0].Roots[0], stmts[0].Roots[1]
	wantChain(t, tr, first, ast.KPointer, ast.KBuiltin)
	wantChain(t, tr, second, ast.KBuiltin)
	if tr.Name(first) != "p" || tr.Name(second) != "x" {
		t.Errorf("names = %q, %q, want p, x", tr.Name(first), tr.Name(second))
	}
}

func TestQualifiedPointerAndArray(t *testing.T) {
	tr, root := parseOne(t, "char *const p;", dialect.C11)
	wantChain(t, tr, root, ast.KPointer, ast.KBuiltin)
	if !tr.Get(root).Type.Intersects(ctype.SConst) {
		t.Error("pointer is not const")
	}

	tr, root = parseOne(t, "int a[static 10];", dialect.C99)
	wantChain(t, tr, root, ast.KArray, ast.KBuiltin)
	n := tr.Get(root)
	if !n.Type.Intersects(ctype.SNonEmptyArray) {
		t.Error("dimension static was dropped")
	}
	if n.Array.SizeKind != ast.ArraySizeInt || n.Array.Size != 10 {
		t.Errorf("array size = %v/%d, want int 10", n.Array.SizeKind, n.Array.Size)
	}
}

func TestTypedefDefineAndUse(t *testing.T) {
	tr, stmts, bag, ok := parse(t, "typedef int i32; i32 *p;", dialect.C11)
	if !ok {
		t.Fatalf("parse failed: %v", bag.Items())
	}
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(stmts))
	}
	def := stmts[0].Roots[0]
	if tr.Name(def) != "i32" || !tr.Get(def).Type.Intersects(ctype.STypedef) {
		t.Fatalf("definition root is not typedef i32")
	}
	use := stmts[1].Roots[0]
	td := wantChain(t, tr, use, ast.KPointer, ast.KTypedef)
	if tr.Get(td).TypedefFor != def {
		t.Errorf("TypedefFor = %d, want %d", tr.Get(td).TypedefFor, def)
	}
	resolved := tr.Untypedef(td)
	if !tr.Get(resolved).Type.Is(ctype.BInt) {
		t.Errorf("typedef does not resolve to int")
	}
}

func TestTypedefRedefinition(t *testing.T) {
	_, _, bag, ok := parse(t, "typedef int i32; typedef char i32;", dialect.C11)
	if ok {
		t.Fatal("conflicting redefinition accepted")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SemRedefinition {
			found = true
		}
	}
	if !found {
		t.Fatalf("diagnostics = %v, want %s", bag.Items(), diag.SemRedefinition.ID())
	}

	_, stmts, bag, ok := parse(t, "typedef int i32; typedef int i32;", dialect.C11)
	if !ok {
		t.Fatalf("equivalent redefinition rejected: %v", bag.Items())
	}
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(stmts))
	}
}

func TestCStyleCast(t *testing.T) {
	tr, root := parseOne(t, "(int *)x;", dialect.C11)
	n := tr.Get(root)
	if !n.Kind.Is(ast.KCast) || n.CastKind != ast.CastC {
		t.Fatalf("root = %s/%s, want a C cast", n.Kind, n.CastKind)
	}
	if tr.Name(root) != "x" {
		t.Errorf("operand = %q, want %q", tr.Name(root), "x")
	}
	wantChain(t, tr, tr.ChildID(root), ast.KPointer, ast.KBuiltin)
}

func TestNamedCast(t *testing.T) {
	tr, root := parseOne(t, "static_cast<char *>(p)", dialect.CPP17)
	n := tr.Get(root)
	if !n.Kind.Is(ast.KCast) || n.CastKind != ast.CastStatic {
		t.Fatalf("root = %s/%s, want static_cast", n.Kind, n.CastKind)
	}
	if tr.Name(root) != "p" {
		t.Errorf("operand = %q, want %q", tr.Name(root), "p")
	}
	wantChain(t, tr, tr.ChildID(root), ast.KPointer, ast.KBuiltin)
}

// A bad statement is reported and skipped; the statements after it still
// parse.
func TestErrorRecovery(t *testing.T) {
	tr, stmts, bag, ok := parse(t, "int (;\nchar c;", dialect.C11)
	if ok {
		t.Fatal("broken input accepted")
	}
	if !bag.HasErrors() {
		t.Fatal("no error reported")
	}
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want the 1 that parsed", len(stmts))
	}
	wantChain(t, tr, stmts[0].Roots[0], ast.KBuiltin)
	if got := tr.Name(stmts[0].Roots[0]); got != "c" {
		t.Errorf("name = %q, want %q", got, "c")
	}
}

func TestScopedDeclaratorName(t *testing.T) {
	tr, root := parseOne(t, "int S::x;", dialect.CPP17)
	n := tr.Get(root)
	if got := n.SName.String(); got != "S::x" {
		t.Errorf("name = %q, want %q", got, "S::x")
	}
	if !n.SName.IsScoped() {
		t.Error("name is not scoped")
	}
}

func TestStructTag(t *testing.T) {
	tr, root := parseOne(t, "struct point *p;", dialect.C11)
	leaf := wantChain(t, tr, root, ast.KPointer, ast.KClassStructUnion)
	n := tr.Get(leaf)
	if n.Tag != "point" {
		t.Errorf("tag = %q, want %q", n.Tag, "point")
	}
	if n.CSUKind != ctype.BStruct {
		t.Errorf("kind = %v, want struct", n.CSUKind)
	}
	if tr.Name(root) != "p" {
		t.Errorf("name = %q, want %q", tr.Name(root), "p")
	}
}

func TestVariadicFunction(t *testing.T) {
	tr, root := parseOne(t, "int printf(const char *fmt, ...);", dialect.C11)
	n := tr.Get(root)
	if len(n.Func.Params) != 2 {
		t.Fatalf("params = %d, want 2", len(n.Func.Params))
	}
	last := tr.Get(n.Func.Params[1].Node)
	if !last.Kind.Is(ast.KVariadic) {
		t.Errorf("last param = %s, want variadic", last.Kind)
	}
}

// Nested parentheses at several depths exercise the grafting order: the
// outer array binds to the pointer written at the outer depth.
func TestNestedDeclarator(t *testing.T) {
	tr, root := parseOne(t, "int (*(*x)[3])[5];", dialect.C11)
	leaf := wantChain(t, tr, root,
		ast.KPointer, ast.KArray, ast.KPointer, ast.KArray, ast.KBuiltin)
	if got := tr.Name(root); got != "x" {
		t.Errorf("name = %q, want %q", got, "x")
	}
	outer := tr.Get(tr.ChildID(root))
	if outer.Array.Size != 3 {
		t.Errorf("outer array size = %d, want 3", outer.Array.Size)
	}
	if !tr.Get(leaf).Type.Is(ctype.BInt) {
		t.Errorf("leaf is not int")
	}
}
