package ast

// CopyInto deep-copies the subtree at id into dst and returns the new root
// id. Owned children, parameters, captures, and typedef targets are all
// copied, so the result is self-contained; weak parent references are rebuilt
// within the copy.
func (t *Tree) CopyInto(dst *Tree, id NodeID) NodeID {
	if id == NoNode {
		return NoNode
	}
	n := *t.Get(id)
	n.Parent = NoNode

	if len(n.Func.Params) > 0 {
		params := make([]Param, len(n.Func.Params))
		for i, p := range n.Func.Params {
			params[i] = Param{Node: t.CopyInto(dst, p.Node)}
		}
		n.Func.Params = params
	}
	if len(n.Captures) > 0 {
		caps := make([]NodeID, len(n.Captures))
		for i, c := range n.Captures {
			caps[i] = t.CopyInto(dst, c)
		}
		n.Captures = caps
	}
	if len(n.BindingNames) > 0 {
		n.BindingNames = append([]string(nil), n.BindingNames...)
	}
	n.TypedefFor = t.CopyInto(dst, n.TypedefFor)

	child := t.CopyInto(dst, t.ChildID(id))
	nid := dst.New(n)
	dst.SetChild(nid, child)
	return nid
}
