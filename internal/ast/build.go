package ast

import (
	"declc/internal/ctype"
)

// This file is the declarator construction engine. The parser hands it
// partially built subtrees in source order; depth (how nested within
// parentheses a node was written) decides precedence when grafting, so
// "int (*p)[3]" and "int *p[3]" come out structurally different even though
// the tokens arrive in the same order.

// InsertArray adds array into the declaration rooted at id and returns the id
// to use as the new production value. It always succeeds; semantic legality
// of the result is the checker's concern, not the builder's.
func (t *Tree) InsertArray(id, array NodeID) NodeID {
	rv := t.insertArrayImpl(id, array)
	arr := t.Get(array)
	taken := t.TakeStorage(arr.Array.Of)
	arr.Type = arr.Type.Or(taken)
	return rv
}

func (t *Tree) insertArrayImpl(id, array NodeID) NodeID {
	if id == NoNode {
		return array
	}
	n := t.Get(id)
	a := t.Get(array)

	switch {
	case n.Kind.Is(KArray):
		return t.appendArray(id, array)

	case n.Kind.Is(KPointer) && n.Depth > a.Depth:
		t.insertArrayImpl(n.Ptr.To, array)
		return id
	}

	// Depth controls the precedence of what is an array of what.
	if n.Depth > a.Depth {
		// Graft the array between this node and its child:
		//
		//	[child] --> [id]        becomes  [child] --> [array] --> [id]
		if n.Kind.IsParent() {
			t.SetChild(array, t.ChildID(id))
		}
		t.SetChild(id, array)
		return id
	}
	// The array becomes the enclosing node:
	//
	//	[id] --> [id-parent]    becomes  [id] --> [array] --> [id-parent]
	if t.IsParent(n.Parent) {
		t.SetChild(n.Parent, array)
	}
	t.SetChild(array, id)
	return array
}

// appendArray appends array to the end of an existing array chain, so that
// "array 3 of array 5 of int" plus "array 7" yields "array 3 of array 5 of
// array 7 of int". Intervening pointers written at an outer depth are
// recursed through, otherwise "type (*(*x)[3])[5]" would come out as a
// pointer to int instead of a pointer to array 5 of int.
func (t *Tree) appendArray(id, array NodeID) NodeID {
	n := t.Get(id)

	switch {
	case n.Kind.Is(KPointer):
		if t.Get(array).Depth >= n.Depth {
			break
		}
		fallthrough
	case n.Kind.Is(KArray):
		// On the next-to-last call this re-parents the appended array;
		// on earlier calls it is a no-op.
		appended := t.appendArray(t.ChildID(id), array)
		t.SetChild(id, appended)
		return id
	}

	// End of the chain: the new array becomes an array of this node.
	t.SetChild(array, id)
	return array
}

// InsertFunc adds a function-like node fn with return type ret into the
// declaration rooted at id and returns the id to use as the new production
// value. Like InsertArray it is total; it never fails.
func (t *Tree) InsertFunc(id, ret, fn NodeID) NodeID {
	rv := t.insertFuncImpl(id, ret, fn)
	root := t.Get(rv)
	if root.SName.Empty() {
		root.SName = t.TakeName(id)
	}
	taken := t.TakeStorage(t.Get(fn).Func.Ret)
	root = t.Get(rv)
	root.Type = root.Type.Or(taken)
	return rv
}

func (t *Tree) insertFuncImpl(id, ret, fn NodeID) NodeID {
	n := t.Get(id)

	if n.Kind.Is(KArray | KAnyPointer | KAnyReference) {
		child := t.ChildID(id)
		switch ck := t.kindOf(child); {
		case ck.Is(KArray | KPointer | KPointerToMember | KAnyReference):
			if n.Depth > t.Get(fn).Depth {
				t.insertFuncImpl(child, ret, fn)
				return id
			}

		case ck.Is(KPlaceholder):
			if ret == id {
				break
			}
			t.SetChild(id, fn)
			fallthrough
		case ck.Is(KBlock):
			t.SetChild(fn, ret)
			return id
		}
	}

	t.SetChild(fn, ret)
	return fn
}

func (t *Tree) kindOf(id NodeID) Kind {
	n := t.Get(id)
	if n == nil {
		return KNone
	}
	return n.Kind
}

// TakeStorage strips the storage classes and attributes from the built-in or
// typedef node at or below id and returns them, so that "static int f()"
// makes the function static rather than its return type.
func (t *Tree) TakeStorage(id NodeID) ctype.Type {
	if id == NoNode {
		return ctype.TNone
	}
	found := t.FindKindAny(id, KBuiltin|KTypedef)
	if found == NoNode {
		return ctype.TNone
	}
	n := t.Get(found)
	taken := ctype.Type{
		Store: n.Type.Store & ctype.SAnyStorageLike,
		Attr:  n.Type.Attr,
	}
	n.Type.Store &^= ctype.SAnyStorageLike
	n.Type.Attr = ctype.ANone
	return taken
}

// TakeName moves the first non-empty scoped name at or below id out of its
// owning node, keeping the at-most-one-owner invariant.
func (t *Tree) TakeName(id NodeID) ScopedName {
	found := t.FindName(id)
	if found == NoNode {
		return ScopedName{}
	}
	return t.Get(found).SName.Take()
}

// TakeTypeAny strips and returns the bits of want present on the first node
// at or below id that carries any of them.
func (t *Tree) TakeTypeAny(id NodeID, want ctype.Type) ctype.Type {
	found := t.FindTypeAny(id, want)
	if found == NoNode {
		return ctype.TNone
	}
	n := t.Get(found)
	taken := ctype.Type{
		Base:  n.Type.Base & want.Base,
		Store: n.Type.Store & want.Store,
		Attr:  n.Type.Attr & want.Attr,
	}
	n.Type = n.Type.AndNot(want)
	return taken
}

// PatchPlaceholder merges a type subtree into a declarator subtree by
// replacing the declarator's placeholder, deciding by depth which of the two
// roots survives.
func (t *Tree) PatchPlaceholder(typeID, declID NodeID) NodeID {
	if declID == NoNode {
		return typeID
	}

	typ := t.Get(typeID)
	if typ.Parent == NoNode {
		placeholder := t.FindKindAny(declID, KPlaceholder)
		if placeholder != NoNode {
			if placeholder == declID {
				// The declarator is nothing but the placeholder, as in a
				// redundantly parenthesized name.
				if typ.SName.Empty() {
					typ.SName = t.TakeName(declID)
				}
				return typeID
			}
			if typ.Depth >= t.Get(declID).Depth {
				// The type subtree is the final tree; the declarator
				// (containing only the placeholder) is discarded.
				if typ.SName.Empty() {
					typ.SName = t.TakeName(declID)
				}
				return typeID
			}
			// Excise the placeholder: the type's root takes its place
			// under the placeholder's parent.
			typeRoot := t.Root(typeID)
			t.SetChild(t.Get(placeholder).Parent, typeRoot)
		}
	}

	// The declarator is the final tree; the type subtree may be discarded,
	// so move its storage, attributes, and name over.
	taken := t.TakeStorage(typeID)
	decl := t.Get(declID)
	decl.Type.Store |= taken.Store
	decl.Type.Attr |= taken.Attr
	if decl.SName.Empty() {
		decl.SName = t.TakeName(typeID)
	}
	return declID
}

// PointerTo wraps id in a new pointer node at the same depth and moves the
// name up to the pointer, returning the pointer's id.
func (t *Tree) PointerTo(id NodeID) NodeID {
	n := t.Get(id)
	ptr := t.New(Node{
		Kind:  KPointer,
		Depth: n.Depth,
		Span:  n.Span,
	})
	t.Get(ptr).SName = t.TakeName(id)
	t.SetChild(ptr, id)
	return ptr
}

// Untypedef follows typedef references until a non-typedef node.
func (t *Tree) Untypedef(id NodeID) NodeID {
	for {
		n := t.Get(id)
		if n == nil || !n.Kind.Is(KTypedef) {
			return id
		}
		id = n.TypedefFor
	}
}

// Unreference resolves typedefs and collapses reference layers, returning the
// ultimately referred-to node.
func (t *Tree) Unreference(id NodeID) NodeID {
	for {
		id = t.Untypedef(id)
		n := t.Get(id)
		if n == nil || !n.Kind.Is(KReference) {
			return id
		}
		id = n.Ptr.To
	}
}

// Unpointer resolves typedefs and, if the result is a pointer, returns the
// resolved pointee; otherwise NoNode.
func (t *Tree) Unpointer(id NodeID) NodeID {
	id = t.Untypedef(id)
	n := t.Get(id)
	if n == nil || !n.Kind.Is(KPointer) {
		return NoNode
	}
	return t.Untypedef(n.Ptr.To)
}

// unpointerCV is like Unpointer but also reports the const and volatile
// qualifiers of the first pointee, which for a typedef'd pointee live on the
// typedef layer rather than on the resolved node.
func (t *Tree) unpointerCV(id NodeID) (NodeID, ctype.TID) {
	id = t.Untypedef(id)
	n := t.Get(id)
	if n == nil || !n.Kind.Is(KPointer) {
		return NoNode, ctype.SNone
	}
	to := n.Ptr.To
	cv := t.Get(to).Type.Store & ctype.SCV
	return t.Untypedef(to), cv
}

// unreferenceCV is like Unreference but also reports the const and volatile
// qualifiers of the first referred-to node.
func (t *Tree) unreferenceCV(id NodeID) (NodeID, ctype.TID) {
	id = t.Untypedef(id)
	n := t.Get(id)
	if n == nil || !n.Kind.Is(KReference) {
		return NoNode, ctype.SNone
	}
	to := n.Ptr.To
	cv := t.Get(to).Type.Store & ctype.SCV
	return t.Unreference(to), cv
}

// IsBuiltinAny reports whether id resolves to a built-in type whose base bits
// are all within tids.
func (t *Tree) IsBuiltinAny(id NodeID, tids ctype.TID) bool {
	id = t.Untypedef(id)
	n := t.Get(id)
	if n == nil || !n.Kind.Is(KBuiltin) {
		return false
	}
	return n.Type.Base.Only(tids)
}

// IsPtrToTIDAny reports whether id resolves to a pointer whose pointee
// carries any of the given bits, counting cv qualifiers on typedef layers.
func (t *Tree) IsPtrToTIDAny(id NodeID, tids ctype.TID) bool {
	to, cv := t.unpointerCV(id)
	return t.isTIDAny(to, cv, tids)
}

// IsRefToTIDAny is the reference analogue of IsPtrToTIDAny.
func (t *Tree) IsRefToTIDAny(id NodeID, tids ctype.TID) bool {
	to, cv := t.unreferenceCV(id)
	return t.isTIDAny(to, cv, tids)
}

func (t *Tree) isTIDAny(id NodeID, cv ctype.TID, tids ctype.TID) bool {
	n := t.Get(id)
	if n == nil {
		return false
	}
	typ := n.Type
	if ctype.PartOf(tids) == ctype.PartStore {
		typ.Store |= cv
	}
	return typ.Intersects(tids)
}
