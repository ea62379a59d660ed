package ctype

// TID is one bit-set worth of type information. The low nibble tags which of
// the three parts the bits belong to (base, storage/qualifier, attribute), so
// a TID value always identifies its own part and parts can never be mixed by
// accident.
type TID uint64

// Part identifies which of the three bit-sets a TID belongs to.
type Part uint8

const (
	PartBase Part = iota
	PartStore
	PartAttr
)

const (
	tidTagBase  TID = 0x1
	tidTagStore TID = 0x2
	tidTagAttr  TID = 0x4
	tidTagMask  TID = 0xF
)

// Base-type bits.
const (
	BVoid TID = tidTagBase | 1<<(iota+4)
	BAuto
	BBitInt
	BBool
	BChar
	BChar8
	BChar16
	BChar32
	BWChar
	BShort
	BInt
	BLong
	BLongLong // always combined with BLong
	BSigned
	BUnsigned
	BFloat
	BDouble
	BComplex
	BImaginary
	BEnum
	BStruct
	BUnion
	BClass
	// BTypedef exists only so the legality tables have a row for alias
	// names; it has no printable representation of its own.
	BTypedef
)

// Storage-class and qualifier bits.
const (
	// storage classes
	SAuto TID = tidTagStore | 1<<(iota+4)
	SBlock
	SExtern
	SExternC
	SRegister
	SStatic
	SThreadLocal
	STypedef
	// storage-class-like
	SConsteval
	SConstexpr
	SConstinit
	SDefault
	SDelete
	SExplicit
	SFinal
	SFriend
	SInline
	SMutable
	SNoexcept
	SOverride
	SThis
	SThrow
	SVirtual
	SPureVirtual
	// qualifiers
	SAtomic
	SConst
	SNonEmptyArray // "static" inside an array parameter dimension
	SReference     // ref-qualifier on a member function
	SRvalueReference
	SRestrict
	SVolatile
)

// Attribute bits.
const (
	ACarriesDependency TID = tidTagAttr | 1<<(iota+4)
	ADeprecated
	AMaybeUnused
	ANodiscard
	ANoreturn
	ANoUniqueAddress
	AReproducible
	AUnsequenced
	// Microsoft calling conventions
	AMSCCdecl
	AMSCClrcall
	AMSCFastcall
	AMSCStdcall
	AMSCThiscall
	AMSCVectorcall
)

// Convenience masks.
const (
	BNone TID = tidTagBase
	SNone TID = tidTagStore
	ANone TID = tidTagAttr

	BAnyChar     = BChar | BChar8 | BChar16 | BChar32 | BWChar
	BAnyFloat    = BFloat | BDouble
	BAnyIntegral = BBool | BBitInt | BAnyChar | BShort | BInt | BLong |
		BLongLong | BSigned | BUnsigned
	BAnyArithmetic = BAnyIntegral | BAnyFloat | BComplex | BImaginary
	BAnyClass      = BStruct | BUnion | BClass
	BAnyECSU       = BEnum | BAnyClass

	SCV           = SConst | SVolatile
	SCVR          = SCV | SRestrict
	SAnyQualifier = SAtomic | SCVR | SNonEmptyArray | SReference | SRvalueReference
	SAnyStorage   = SAuto | SBlock | SExtern | SExternC | SRegister | SStatic |
		SThreadLocal | STypedef
	SAnyStorageLike = SAnyStorage | SConsteval | SConstexpr | SConstinit |
		SDefault | SDelete | SExplicit | SFinal | SFriend | SInline |
		SMutable | SNoexcept | SOverride | SThis | SThrow | SVirtual |
		SPureVirtual
	SConstructorOnly = SExplicit
	SFuncLikeOnly    = SDefault | SDelete | SExplicit | SFinal | SFriend |
		SNoexcept | SOverride | SThis | SThrow | SVirtual | SPureVirtual |
		SConsteval
	SRefQualifier = SReference | SRvalueReference

	AAnyMSCCall = AMSCCdecl | AMSCClrcall | AMSCFastcall | AMSCStdcall |
		AMSCThiscall | AMSCVectorcall
	// Attributes that only make sense on objects or functions, never on
	// e.g. casts or plain type names.
	AAnyObject = ACarriesDependency | ADeprecated | AMaybeUnused |
		ANodiscard | ANoreturn | ANoUniqueAddress | AReproducible |
		AUnsequenced
)

// PartOf returns which part t's tag names.
func PartOf(t TID) Part {
	switch t & tidTagMask {
	case tidTagStore:
		return PartStore
	case tidTagAttr:
		return PartAttr
	default:
		return PartBase
	}
}

// IsNone reports whether no bits beyond the part tag are set.
func (t TID) IsNone() bool {
	return t&^tidTagMask == 0
}

// Has reports whether every bit of want is set in t.
func (t TID) Has(want TID) bool {
	want &^= tidTagMask
	return t&want == want
}

// Intersects reports whether t and other share at least one non-tag bit.
func (t TID) Intersects(other TID) bool {
	return t&other&^tidTagMask != 0
}

// Only reports whether t sets no bits outside allowed.
func (t TID) Only(allowed TID) bool {
	return t&^tidTagMask&^allowed == 0
}
