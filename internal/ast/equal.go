package ast

// Equal reports whether two subtrees describe the same type. Names are not
// compared; "typedef int x" and "typedef int y" describe the same type.
func (t *Tree) Equal(a, b NodeID) bool {
	if a == b {
		return true
	}
	na, nb := t.Get(a), t.Get(b)
	if na == nil || nb == nil {
		return na == nil && nb == nil
	}
	if na.Kind != nb.Kind || !na.Type.Equal(nb.Type) {
		return false
	}
	switch {
	case na.Kind.Is(KArray):
		if na.Array.SizeKind != nb.Array.SizeKind ||
			na.Array.Size != nb.Array.Size {
			return false
		}
	case na.Kind.Is(KBuiltin):
		if na.BitWidth != nb.BitWidth {
			return false
		}
	case na.Kind.Is(KOperator):
		if na.OperID != nb.OperID {
			return false
		}
	case na.Kind.Is(KClassStructUnion):
		if na.CSUKind != nb.CSUKind {
			return false
		}
	case na.Kind.Is(KTypedef):
		return t.Equal(na.TypedefFor, nb.TypedefFor)
	}
	if na.Kind.Is(KAnyFunctionLike) {
		if len(na.Func.Params) != len(nb.Func.Params) {
			return false
		}
		for i := range na.Func.Params {
			if !t.Equal(na.Func.Params[i].Node, nb.Func.Params[i].Node) {
				return false
			}
		}
	}
	return t.Equal(t.ChildID(a), t.ChildID(b))
}
