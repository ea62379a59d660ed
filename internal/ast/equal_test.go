package ast

import (
	"testing"

	"declc/internal/ctype"
)

func TestEqualComparesPayloads(t *testing.T) {
	tr := NewTree(32)
	intA := newBuiltin(tr, 0, ctype.BInt)
	intB := newBuiltin(tr, 0, ctype.BInt)

	// Names are not compared: "typedef int x" and "typedef int y" describe
	// the same type.
	tdX := tr.New(Node{Kind: KTypedef, TypedefFor: intA, SName: NameOf("x")})
	tdY := tr.New(Node{Kind: KTypedef, TypedefFor: intB, SName: NameOf("y")})
	if !tr.Equal(tdX, tdY) {
		t.Error("typedefs of the same type compared unequal")
	}

	charT := newBuiltin(tr, 0, ctype.BChar)
	tdC := tr.New(Node{Kind: KTypedef, TypedefFor: charT})
	if tr.Equal(tdX, tdC) {
		t.Error("typedefs of different types compared equal")
	}

	plus := tr.New(Node{Kind: KOperator, OperID: OperPlus, Func: Func{Ret: intA}})
	minus := tr.New(Node{Kind: KOperator, OperID: OperMinus, Func: Func{Ret: intA}})
	if tr.Equal(plus, minus) {
		t.Error("distinct operators compared equal")
	}

	st := tr.New(Node{Kind: KClassStructUnion, CSUKind: ctype.BStruct, Tag: "t"})
	un := tr.New(Node{Kind: KClassStructUnion, CSUKind: ctype.BUnion, Tag: "t"})
	if tr.Equal(st, un) {
		t.Error("struct and union compared equal")
	}

	a3 := tr.New(Node{Kind: KArray, Array: Array{SizeKind: ArraySizeInt, Size: 3}})
	tr.SetChild(a3, intA)
	a4 := tr.New(Node{Kind: KArray, Array: Array{SizeKind: ArraySizeInt, Size: 4}})
	tr.SetChild(a4, intB)
	if tr.Equal(a3, a4) {
		t.Error("arrays of different sizes compared equal")
	}
}

func TestEqualFunctionParams(t *testing.T) {
	tr := NewTree(32)
	ret := newBuiltin(tr, 0, ctype.BInt)

	one := tr.New(Node{Kind: KFunction, Func: Func{
		Ret:    ret,
		Params: []Param{{Node: newBuiltin(tr, 0, ctype.BChar)}},
	}})
	tr.SetChild(one, ret)
	same := tr.New(Node{Kind: KFunction, Func: Func{
		Ret:    ret,
		Params: []Param{{Node: newBuiltin(tr, 0, ctype.BChar)}},
	}})
	tr.SetChild(same, ret)
	two := tr.New(Node{Kind: KFunction, Func: Func{
		Ret: ret,
		Params: []Param{
			{Node: newBuiltin(tr, 0, ctype.BChar)},
			{Node: newBuiltin(tr, 0, ctype.BChar)},
		},
	}})
	tr.SetChild(two, ret)

	if !tr.Equal(one, same) {
		t.Error("identical prototypes compared unequal")
	}
	if tr.Equal(one, two) {
		t.Error("different parameter counts compared equal")
	}
}
