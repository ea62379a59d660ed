package ast

import (
	"declc/internal/ctype"
)

// Visitor is called for each node along a walk. Returning true stops the walk
// at the current node.
type Visitor func(id NodeID, n *Node) bool

// VisitDown walks from id through the single-child chain toward the leaf and
// returns the id of the node the visitor stopped at, or NoNode. Parameters
// are not visited; they are separate subtrees.
func (t *Tree) VisitDown(id NodeID, v Visitor) NodeID {
	for id != NoNode {
		n := t.Get(id)
		if v(id, n) {
			return id
		}
		id = t.ChildID(id)
	}
	return NoNode
}

// VisitUp walks weak parent references from id toward the root and returns
// the id of the node the visitor stopped at, or NoNode.
func (t *Tree) VisitUp(id NodeID, v Visitor) NodeID {
	for id != NoNode {
		n := t.Get(id)
		if v(id, n) {
			return id
		}
		id = n.Parent
	}
	return NoNode
}

// FindKindAny returns the first node at or below id whose kind is in kinds.
func (t *Tree) FindKindAny(id NodeID, kinds Kind) NodeID {
	return t.VisitDown(id, func(_ NodeID, n *Node) bool {
		return n.Kind.Is(kinds)
	})
}

// FindName returns the first node at or below id with a non-empty name.
func (t *Tree) FindName(id NodeID) NodeID {
	return t.VisitDown(id, func(_ NodeID, n *Node) bool {
		return !n.SName.Empty()
	})
}

// FindTypeAny returns the first node at or below id whose type intersects
// want in any part.
func (t *Tree) FindTypeAny(id NodeID, want ctype.Type) NodeID {
	return t.VisitDown(id, func(_ NodeID, n *Node) bool {
		return n.Type.Base&want.Base != 0 ||
			n.Type.Store&want.Store != 0 ||
			n.Type.Attr&want.Attr != 0
	})
}

// IsParamPack reports whether any node at or below id is a parameter pack.
func (t *Tree) IsParamPack(id NodeID) bool {
	return t.VisitDown(id, func(_ NodeID, n *Node) bool {
		return n.ParamPack
	}) != NoNode
}
