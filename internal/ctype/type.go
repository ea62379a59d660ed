package ctype

// Type is the full type information of one AST node: three independent
// bit-sets combined by bitwise-or within each part.
type Type struct {
	Base  TID
	Store TID
	Attr  TID
}

var (
	TNone = Type{Base: BNone, Store: SNone, Attr: ANone}
	TAny  = Type{Base: ^TID(0), Store: ^TID(0), Attr: ^TID(0)}
)

// New builds a Type from any mix of TIDs; each lands in its tagged part.
func New(tids ...TID) Type {
	t := TNone
	for _, tid := range tids {
		t = t.OrTID(tid)
	}
	return t
}

// OrTID returns t with the given TID merged into its part.
func (t Type) OrTID(tid TID) Type {
	switch PartOf(tid) {
	case PartStore:
		t.Store |= tid &^ tidTagMask
	case PartAttr:
		t.Attr |= tid &^ tidTagMask
	default:
		t.Base |= tid &^ tidTagMask
	}
	return t
}

// Or returns the union of t and other.
func (t Type) Or(other Type) Type {
	return Type{
		Base:  t.Base | other.Base,
		Store: t.Store | other.Store,
		Attr:  t.Attr | other.Attr,
	}
}

// AndNot returns t with every bit of other cleared.
func (t Type) AndNot(other Type) Type {
	return Type{
		Base:  t.Base &^ (other.Base &^ tidTagMask),
		Store: t.Store &^ (other.Store &^ tidTagMask),
		Attr:  t.Attr &^ (other.Attr &^ tidTagMask),
	}
}

// IsNone reports whether no part has any bit set.
func (t Type) IsNone() bool {
	return t.Base.IsNone() && t.Store.IsNone() && t.Attr.IsNone()
}

// Is reports whether every bit of want (in its part) is set in t.
func (t Type) Is(want TID) bool {
	return t.part(want).Has(want)
}

// Intersects reports whether t shares at least one bit with want.
func (t Type) Intersects(want TID) bool {
	return t.part(want).Intersects(want)
}

func (t Type) part(tid TID) TID {
	switch PartOf(tid) {
	case PartStore:
		return t.Store | tidTagStore
	case PartAttr:
		return t.Attr | tidTagAttr
	default:
		return t.Base | tidTagBase
	}
}

// Equal reports whether two types carry exactly the same bits.
func (t Type) Equal(other Type) bool {
	return t.Base&^tidTagMask == other.Base&^tidTagMask &&
		t.Store&^tidTagMask == other.Store&^tidTagMask &&
		t.Attr&^tidTagMask == other.Attr&^tidTagMask
}
