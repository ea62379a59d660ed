package ast

import (
	"declc/internal/ctype"
	"declc/internal/source"
)

// ArraySizeKind says how an array's size was written.
type ArraySizeKind uint8

const (
	ArraySizeNone ArraySizeKind = iota // T a[]
	ArraySizeInt                       // T a[3]
	ArraySizeName                      // T a[n], a VLA
	ArraySizeStar                      // T a[*], a VLA in a prototype
)

// CaptureKind classifies one lambda capture.
type CaptureKind uint8

const (
	CaptureVariable  CaptureKind = iota
	CaptureCopy                  // [=]
	CaptureReference             // [&]
	CaptureThis                  // [this]
	CaptureStarThis              // [*this]
)

// CastKind classifies a C++ named cast, or CastC for a C-style cast.
type CastKind uint8

const (
	CastC CastKind = iota
	CastConst
	CastDynamic
	CastReinterpret
	CastStatic
)

func (k CastKind) String() string {
	switch k {
	case CastConst:
		return "const_cast"
	case CastDynamic:
		return "dynamic_cast"
	case CastReinterpret:
		return "reinterpret_cast"
	case CastStatic:
		return "static_cast"
	}
	return "cast"
}

// Alignment is an explicit alignas specification.
type Alignment struct {
	// Bytes is the alignment in bytes, or 0 when Type is set instead.
	Bytes uint32
	// TypeName is the alignas(type) operand, if any.
	TypeName string
}

func (a Alignment) IsSet() bool {
	return a.Bytes != 0 || a.TypeName != ""
}

// Array holds the array-specific payload.
type Array struct {
	Of       NodeID
	SizeKind ArraySizeKind
	Size     int64  // meaningful when SizeKind is ArraySizeInt
	SizeName string // meaningful when SizeKind is ArraySizeName
}

// Param is one function parameter.
type Param struct {
	Node NodeID
}

// Func holds the payload shared by every function-like kind. Member records
// what the user declared explicitly, if anything; the inferred answer comes
// from OperOverload and may stay OverloadUnspecified.
type Func struct {
	Ret    NodeID
	Params []Param
	Member Overload
}

// Capture holds the payload of a lambda capture node.
type Capture struct {
	Kind CaptureKind
}

// Ptr holds the payload of pointer and reference kinds.
type Ptr struct {
	To NodeID
}

// PtrMbr holds the payload of a pointer-to-member node.
type PtrMbr struct {
	To    NodeID
	Class ScopedName
}

// Node is a single AST node. Exactly one payload field is meaningful,
// selected by Kind; the rest stay zero. Parent is a weak back-reference and
// never implies ownership.
type Node struct {
	Kind   Kind
	Depth  uint32
	Span   source.Span
	Type   ctype.Type
	Align  Alignment
	SName  ScopedName
	Parent NodeID

	// ParamPack marks a C++ parameter pack (T&&... args).
	ParamPack bool

	// BitWidth is a bit-field width for built-in types, 0 when absent.
	BitWidth uint32

	Array    Array
	Func     Func
	Ptr      Ptr
	PtrMbr   PtrMbr
	Capture  Capture
	CastKind CastKind
	OperID   OperID

	// TypedefFor is a weak reference to the defining node of a typedef;
	// the referenced node is owned by the typedef registry, not this tree.
	TypedefFor NodeID
	// EnumOf is the fixed underlying type of an enum, if declared.
	EnumOf NodeID
	// CSUKind distinguishes class, struct, and union nodes.
	CSUKind ctype.TID
	// Tag is the tag name of a class, struct, union, or enum type. It is
	// separate from SName, which names the declared object.
	Tag string
	// BindingNames are the identifiers of a structured binding.
	BindingNames []string
	// Captures are the capture nodes of a lambda.
	Captures []NodeID
	// ConceptName is the name of the constraining concept, if any.
	ConceptName string
}

// Tree owns a set of nodes. Node links are NodeIDs into the tree's arena.
type Tree struct {
	Nodes *Arena[Node]
}

func NewTree(capHint uint) *Tree {
	return &Tree{Nodes: NewArena[Node](capHint)}
}

// Get resolves an id; it returns nil for NoNode.
func (t *Tree) Get(id NodeID) *Node {
	return t.Nodes.Get(uint32(id))
}

// New allocates a node and returns its id.
func (t *Tree) New(n Node) NodeID {
	return NodeID(t.Nodes.Allocate(n))
}

// NewNode allocates a node of the given kind at the given depth.
func (t *Tree) NewNode(kind Kind, depth uint32, span source.Span) NodeID {
	return t.New(Node{Kind: kind, Depth: depth, Span: span})
}

// ChildID returns the single owning child slot of a parent node, or NoNode.
// Function-like kinds own their return type through this slot; parameters are
// owned separately.
func (t *Tree) ChildID(id NodeID) NodeID {
	n := t.Get(id)
	if n == nil {
		return NoNode
	}
	switch {
	case n.Kind.Is(KArray):
		return n.Array.Of
	case n.Kind.Is(KPointer | KAnyReference | KCast):
		return n.Ptr.To
	case n.Kind.Is(KPointerToMember):
		return n.PtrMbr.To
	case n.Kind.Is(KAnyFunctionLike):
		return n.Func.Ret
	case n.Kind.Is(KEnum):
		return n.EnumOf
	}
	return NoNode
}

// SetChild links child into parent's owning slot and sets child's weak
// parent back-reference. A NoNode child clears the slot.
func (t *Tree) SetChild(parent, child NodeID) {
	p := t.Get(parent)
	switch {
	case p.Kind.Is(KArray):
		p.Array.Of = child
	case p.Kind.Is(KPointer | KAnyReference | KCast):
		p.Ptr.To = child
	case p.Kind.Is(KPointerToMember):
		p.PtrMbr.To = child
	case p.Kind.Is(KAnyFunctionLike):
		p.Func.Ret = child
	case p.Kind.Is(KEnum):
		p.EnumOf = child
	}
	if c := t.Get(child); c != nil {
		c.Parent = parent
	}
}

// Root walks weak parent references up from id to the tree root.
func (t *Tree) Root(id NodeID) NodeID {
	for {
		n := t.Get(id)
		if n == nil || n.Parent == NoNode {
			return id
		}
		id = n.Parent
	}
}

// IsParent reports whether the node owns a child slot.
func (t *Tree) IsParent(id NodeID) bool {
	n := t.Get(id)
	return n != nil && n.Kind.IsParent()
}

// Name returns the node's scoped name rendered as text.
func (t *Tree) Name(id NodeID) string {
	n := t.Get(id)
	if n == nil {
		return ""
	}
	return n.SName.String()
}
