package ctype

import (
	"strings"
)

// baseNameOrder is the conventional keyword order for rendering base types
// in diagnostics: "unsigned long long int", not "int long long unsigned".
var baseNameOrder = []TID{
	BSigned, BUnsigned, BShort, BLong, BLongLong,
	BVoid, BAuto, BBool, BChar, BChar8, BChar16, BChar32, BWChar,
	BInt, BBitInt, BFloat, BDouble, BComplex, BImaginary,
	BEnum, BStruct, BUnion, BClass,
}

// Name returns the keyword literal of a single bit, or "" when unknown.
func Name(tid TID) string {
	for _, infos := range [][]typeInfo{baseInfo, qualInfo, storeInfo, attrInfo} {
		for i := range infos {
			if infos[i].tid == tid {
				return infos[i].literal
			}
		}
	}
	return ""
}

// String renders the type the way a diagnostic quotes it: storage classes,
// then qualifiers, then base-type keywords, then attributes.
func (t Type) String() string {
	var parts []string
	for _, info := range storeInfo {
		if t.Intersects(info.tid) {
			parts = append(parts, info.literal)
		}
	}
	for _, info := range qualInfo {
		if info.tid == SNonEmptyArray || info.tid == SReference || info.tid == SRvalueReference {
			continue // rendered positionally, not as keywords
		}
		if t.Intersects(info.tid) {
			parts = append(parts, info.literal)
		}
	}
	parts = append(parts, t.baseNames()...)
	for _, info := range attrInfo {
		if t.Intersects(info.tid) {
			parts = append(parts, info.literal)
		}
	}
	return strings.Join(parts, " ")
}

func (t Type) baseNames() []string {
	var parts []string
	for _, tid := range baseNameOrder {
		if t.Intersects(tid) {
			if name := Name(tid); name != "" {
				parts = append(parts, name)
			}
		}
	}
	return parts
}

// StoreString renders only the storage-class and qualifier bits; handy for
// messages like "constructors can not be static".
func (t Type) StoreString() string {
	only := Type{Base: BNone, Store: t.Store, Attr: ANone}
	return only.String()
}
