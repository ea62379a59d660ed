package sema

import (
	"strings"
	"testing"

	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/diag"
	"declc/internal/dialect"
)

func builtin(tr *ast.Tree, name string, tids ...ctype.TID) ast.NodeID {
	return tr.New(ast.Node{
		Kind:  ast.KBuiltin,
		SName: ast.NameOf(name),
		Type:  ctype.New(tids...),
	})
}

func arrayOf(tr *ast.Tree, elem ast.NodeID, size int64) ast.NodeID {
	arr := tr.New(ast.Node{
		Kind:  ast.KArray,
		Array: ast.Array{SizeKind: ast.ArraySizeInt, Size: size},
	})
	tr.SetChild(arr, elem)
	return arr
}

func pointerTo(tr *ast.Tree, name string, to ast.NodeID) ast.NodeID {
	ptr := tr.New(ast.Node{Kind: ast.KPointer, SName: ast.NameOf(name)})
	tr.SetChild(ptr, to)
	return ptr
}

func function(tr *ast.Tree, name string, ret ast.NodeID, params ...ast.NodeID) ast.NodeID {
	fn := tr.New(ast.Node{Kind: ast.KFunction, SName: ast.NameOf(name)})
	tr.SetChild(fn, ret)
	for _, p := range params {
		n := tr.Get(fn)
		n.Func.Params = append(n.Func.Params, ast.Param{Node: p})
	}
	return fn
}

func checkOne(tr *ast.Tree, root ast.NodeID, lang dialect.ID) (*diag.Bag, bool) {
	bag := diag.NewBag(16)
	ok := Check(tr, root, Options{Lang: lang, Reporter: diag.BagReporter{Bag: bag}})
	return bag, ok
}

func wantError(t *testing.T, bag *diag.Bag, ok bool, code diag.Code) diag.Diagnostic {
	t.Helper()
	if ok {
		t.Fatal("Check = true, want an error")
	}
	if bag.Len() != 1 {
		t.Fatalf("bag has %d diagnostics, want exactly 1: %v", bag.Len(), bag.Items())
	}
	d := bag.Items()[0]
	if d.Code != code {
		t.Fatalf("code = %s, want %s", d.Code.ID(), code.ID())
	}
	return d
}

func wantHint(t *testing.T, d diag.Diagnostic, hint string) {
	t.Helper()
	want := "did you mean " + hint + "?"
	if len(d.Notes) == 0 || d.Notes[0].Msg != want {
		t.Fatalf("notes = %v, want %q", d.Notes, want)
	}
}

func TestArrayOfVoid(t *testing.T) {
	tr := ast.NewTree(8)
	arr := arrayOf(tr, builtin(tr, "", ctype.BVoid), 3)
	tr.Get(arr).SName = ast.NameOf("a")

	bag, ok := checkOne(tr, arr, dialect.C11)
	d := wantError(t, bag, ok, diag.SemArrayOfVoid)
	if d.Message != "array of void" {
		t.Errorf("message = %q", d.Message)
	}
	wantHint(t, d, "array of pointer to void")
}

func TestFunctionReturningArray(t *testing.T) {
	tr := ast.NewTree(8)
	arr := arrayOf(tr, builtin(tr, "", ctype.BInt), 3)
	fn := function(tr, "f", arr)

	bag, ok := checkOne(tr, fn, dialect.C11)
	d := wantError(t, bag, ok, diag.SemReturnArray)
	if d.Message != "function returning array" {
		t.Errorf("message = %q", d.Message)
	}
	wantHint(t, d, "function returning pointer")
}

// int i, i; is a legal pair of tentative definitions in C but a redefinition
// in C++, and int j, *j; is a redefinition in both.
func TestDeclaratorListRedefinition(t *testing.T) {
	newPair := func() (*ast.Tree, []ast.NodeID) {
		tr := ast.NewTree(8)
		return tr, []ast.NodeID{
			builtin(tr, "i", ctype.BInt),
			builtin(tr, "i", ctype.BInt),
		}
	}

	tr, roots := newPair()
	bag := diag.NewBag(16)
	if !CheckList(tr, roots, Options{Lang: dialect.C11, Reporter: diag.BagReporter{Bag: bag}}) {
		t.Fatalf("same-type pair rejected in C: %v", bag.Items())
	}
	if bag.Len() != 0 {
		t.Fatalf("bag not empty: %v", bag.Items())
	}

	tr, roots = newPair()
	bag = diag.NewBag(16)
	if CheckList(tr, roots, Options{Lang: dialect.CPP17, Reporter: diag.BagReporter{Bag: bag}}) {
		t.Fatal("same-name pair accepted in C++")
	}
	if got := bag.Items()[0].Code; got != diag.SemTentativeDef {
		t.Errorf("code = %s, want %s", got.ID(), diag.SemTentativeDef.ID())
	}

	tr = ast.NewTree(8)
	roots = []ast.NodeID{
		builtin(tr, "j", ctype.BInt),
		pointerTo(tr, "j", builtin(tr, "", ctype.BInt)),
	}
	bag = diag.NewBag(16)
	if CheckList(tr, roots, Options{Lang: dialect.C11, Reporter: diag.BagReporter{Bag: bag}}) {
		t.Fatal("different-type pair accepted in C")
	}
	d := bag.Items()[0]
	if d.Code != diag.SemRedefinition {
		t.Errorf("code = %s, want %s", d.Code.ID(), diag.SemRedefinition.ID())
	}
	if !strings.Contains(d.Message, "different type") {
		t.Errorf("message = %q", d.Message)
	}
}

func TestStaticMemberOperator(t *testing.T) {
	tr := ast.NewTree(8)
	ret := builtin(tr, "", ctype.BInt)
	param := builtin(tr, "", ctype.BInt)
	op := tr.New(ast.Node{
		Kind:   ast.KOperator,
		OperID: ast.OperEq,
		Type:   ctype.New(ctype.SStatic),
	})
	tr.SetChild(op, ret)
	tr.Get(op).Func.Params = []ast.Param{{Node: param}}

	bag, ok := checkOne(tr, op, dialect.CPP17)
	d := wantError(t, bag, ok, diag.SemOperMember)
	if d.Message != "member operators can not be static" {
		t.Errorf("message = %q", d.Message)
	}
}

// The structural pass reports and stops before the type pass ever looks at
// the same node, so restrict on a pointer to reference yields only the
// pointer-to-reference error.
func TestStructuralErrorPreemptsTypePass(t *testing.T) {
	tr := ast.NewTree(8)
	inner := builtin(tr, "", ctype.BInt)
	ref := tr.New(ast.Node{Kind: ast.KReference})
	tr.SetChild(ref, inner)
	ptr := tr.New(ast.Node{Kind: ast.KPointer, Type: ctype.New(ctype.SRestrict)})
	tr.SetChild(ptr, ref)

	bag, ok := checkOne(tr, ptr, dialect.CPP17)
	d := wantError(t, bag, ok, diag.SemPointerToReference)
	wantHint(t, d, "reference to pointer")
}

func TestRecheckIsDeterministic(t *testing.T) {
	tr := ast.NewTree(8)
	ptr := pointerTo(tr, "p", builtin(tr, "", ctype.BInt))

	bag := diag.NewBag(16)
	opts := Options{Lang: dialect.C23, Reporter: diag.BagReporter{Bag: bag}}
	for i := 0; i < 2; i++ {
		if !Check(tr, ptr, opts) {
			t.Fatalf("check %d failed: %v", i, bag.Items())
		}
	}
	if bag.Len() != 0 {
		t.Fatalf("bag not empty after two passes: %v", bag.Items())
	}
}

// A typedef of void is usable behind a pointer but not as a variable type.
func TestTypedefOfVoid(t *testing.T) {
	tr := ast.NewTree(8)
	def := builtin(tr, "V", ctype.BVoid)
	td := tr.New(ast.Node{Kind: ast.KTypedef, TypedefFor: def})
	ptr := pointerTo(tr, "p", td)

	bag, ok := checkOne(tr, ptr, dialect.C11)
	if !ok {
		t.Fatalf("pointer to typedef of void rejected: %v", bag.Items())
	}

	tr = ast.NewTree(8)
	def = builtin(tr, "V", ctype.BVoid)
	td = tr.New(ast.Node{Kind: ast.KTypedef, TypedefFor: def, SName: ast.NameOf("v")})

	bag, ok = checkOne(tr, td, dialect.C11)
	d := wantError(t, bag, ok, diag.SemVariableOfVoid)
	wantHint(t, d, "pointer to void")
}

func TestMainMustReturnInt(t *testing.T) {
	tr := ast.NewTree(8)
	fn := function(tr, "main", builtin(tr, "", ctype.BChar))

	bag, ok := checkOne(tr, fn, dialect.C11)
	d := wantError(t, bag, ok, diag.SemMainSignature)
	if d.Message != "main must return int" {
		t.Errorf("message = %q", d.Message)
	}
}

func TestNamedVoidParameter(t *testing.T) {
	tr := ast.NewTree(8)
	fn := function(tr, "f",
		builtin(tr, "", ctype.BInt),
		builtin(tr, "x", ctype.BVoid))

	bag, ok := checkOne(tr, fn, dialect.C11)
	wantError(t, bag, ok, diag.SemVoidParam)
}

func TestMemberOperatorArity(t *testing.T) {
	tr := ast.NewTree(8)
	ret := builtin(tr, "", ctype.BInt)
	params := []ast.Param{
		{Node: builtin(tr, "", ctype.BInt)},
		{Node: builtin(tr, "", ctype.BInt)},
		{Node: builtin(tr, "", ctype.BInt)},
	}
	op := tr.New(ast.Node{Kind: ast.KOperator, OperID: ast.OperPlus})
	tr.SetChild(op, ret)
	n := tr.Get(op)
	n.Func.Member = ast.OverloadMember
	n.Func.Params = params

	bag, ok := checkOne(tr, op, dialect.CPP17)
	d := wantError(t, bag, ok, diag.SemOperArity)
	if d.Message != "operator + must have at most 1 parameter" {
		t.Errorf("message = %q", d.Message)
	}
}

func TestRegisterDeprecatedWarning(t *testing.T) {
	tr := ast.NewTree(8)
	v := builtin(tr, "r", ctype.BInt, ctype.SRegister)

	bag, ok := checkOne(tr, v, dialect.CPP11)
	if !ok {
		t.Fatalf("register variable rejected in c++11: %v", bag.Items())
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.WrnRegisterDeprecated {
		t.Fatalf("diagnostics = %v, want one %s", bag.Items(),
			diag.WrnRegisterDeprecated.ID())
	}
	if bag.Items()[0].Severity != diag.SevWarning {
		t.Errorf("severity = %v, want warning", bag.Items()[0].Severity)
	}
}

func TestReferenceNotSupportedInC(t *testing.T) {
	tr := ast.NewTree(8)
	ref := tr.New(ast.Node{Kind: ast.KReference, SName: ast.NameOf("r")})
	tr.SetChild(ref, builtin(tr, "", ctype.BInt))

	bag, ok := checkOne(tr, ref, dialect.C11)
	d := wantError(t, bag, ok, diag.SemReferenceNotSupported)
	if d.Message != "references not supported in c11" {
		t.Errorf("message = %q", d.Message)
	}
}

// The type pass names the dialects where a rejected combination would have
// been legal.
func TestTypeLegalityReportsLegalDialects(t *testing.T) {
	tr := ast.NewTree(8)
	b := builtin(tr, "b", ctype.BBool)

	bag, ok := checkOne(tr, b, dialect.C89)
	d := wantError(t, bag, ok, diag.TypIllegalType)
	if len(d.Notes) != 1 || !strings.HasPrefix(d.Notes[0].Msg, "legal in ") {
		t.Fatalf("notes = %v, want a \"legal in\" note", d.Notes)
	}
}

func TestLambdaCaptures(t *testing.T) {
	capture := func(tr *ast.Tree, kind ast.CaptureKind, name string) ast.NodeID {
		return tr.New(ast.Node{
			Kind:    ast.KCapture,
			Capture: ast.Capture{Kind: kind},
			SName:   ast.NameOf(name),
		})
	}
	lambda := func(tr *ast.Tree, captures ...ast.NodeID) ast.NodeID {
		l := tr.New(ast.Node{Kind: ast.KLambda, Captures: captures})
		tr.SetChild(l, builtin(tr, "", ctype.BInt))
		return l
	}

	tr := ast.NewTree(8)
	l := lambda(tr,
		capture(tr, ast.CaptureVariable, "x"),
		capture(tr, ast.CaptureVariable, "x"))
	bag, ok := checkOne(tr, l, dialect.CPP17)
	d := wantError(t, bag, ok, diag.SemLambdaCapture)
	if d.Message != `"x" previously captured` {
		t.Errorf("message = %q", d.Message)
	}

	tr = ast.NewTree(8)
	l = lambda(tr,
		capture(tr, ast.CaptureVariable, "x"),
		capture(tr, ast.CaptureCopy, ""))
	bag, ok = checkOne(tr, l, dialect.CPP17)
	d = wantError(t, bag, ok, diag.SemLambdaCapture)
	if d.Message != "default capture must be specified first" {
		t.Errorf("message = %q", d.Message)
	}
}

// The warning pass keeps going after the first finding.
func TestWarningPassCompletes(t *testing.T) {
	tr := ast.NewTree(8)
	fn := function(tr, "f", builtin(tr, "", ctype.BVoid))
	tr.Get(fn).Type = ctype.New(ctype.SThrow, ctype.ANodiscard)

	bag, ok := checkOne(tr, fn, dialect.CPP20)
	if !ok {
		t.Fatalf("declaration rejected: %v", bag.Items())
	}
	var codes []diag.Code
	for _, d := range bag.Items() {
		codes = append(codes, d.Code)
	}
	want := map[diag.Code]bool{
		diag.WrnNodiscardVoid:   false,
		diag.WrnThrowDeprecated: false,
	}
	for _, code := range codes {
		if _, expected := want[code]; expected {
			want[code] = true
		}
	}
	for code, found := range want {
		if !found {
			t.Errorf("missing warning %s in %v", code.ID(), codes)
		}
	}
}

func TestConstevalOnVariable(t *testing.T) {
	tr := ast.NewTree(8)
	v := builtin(tr, "x", ctype.BInt, ctype.SConsteval)

	bag, ok := checkOne(tr, v, dialect.CPP20)
	d := wantError(t, bag, ok, diag.SemConstevalNonFunc)
	if d.Message != "only functions can be consteval" {
		t.Errorf("message = %q", d.Message)
	}
}

func TestAutoWithMultipleDeclarators(t *testing.T) {
	newPair := func() (*ast.Tree, []ast.NodeID) {
		tr := ast.NewTree(8)
		return tr, []ast.NodeID{
			builtin(tr, "a", ctype.BAuto),
			builtin(tr, "b", ctype.BAuto),
		}
	}

	tr, roots := newPair()
	bag := diag.NewBag(16)
	if CheckList(tr, roots, Options{Lang: dialect.CPP03, Reporter: diag.BagReporter{Bag: bag}}) {
		t.Fatal("auto pair accepted in c++03")
	}
	if got := bag.Items()[0].Code; got != diag.SemKindNotSupported {
		t.Errorf("code = %s, want %s", got.ID(), diag.SemKindNotSupported.ID())
	}

	tr, roots = newPair()
	bag = diag.NewBag(16)
	if !CheckList(tr, roots, Options{Lang: dialect.CPP14, Reporter: diag.BagReporter{Bag: bag}}) {
		t.Fatalf("auto pair rejected in c++14: %v", bag.Items())
	}
}
