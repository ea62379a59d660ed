package ast

import (
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// ScopeKind says what kind of scope an enclosing name component is.
type ScopeKind uint8

const (
	ScopeNone ScopeKind = iota
	ScopeNamespace
	ScopeClass
	ScopeStruct
	ScopeUnion
	ScopeEnum
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeNamespace:
		return "namespace"
	case ScopeClass:
		return "class"
	case ScopeStruct:
		return "struct"
	case ScopeUnion:
		return "union"
	case ScopeEnum:
		return "enum"
	}
	return "none"
}

// Scope is one component of a scoped name.
type Scope struct {
	Name string
	Kind ScopeKind
}

// ScopedName is an ordered sequence of scope components ending in the local
// identifier, e.g. S::T::x. Within a tree under construction at most one node
// owns a non-empty ScopedName at a time; ownership moves via Take, never
// copies.
type ScopedName struct {
	scopes []Scope
}

// NameOf builds an unscoped name.
func NameOf(name string) ScopedName {
	if name == "" {
		return ScopedName{}
	}
	return ScopedName{scopes: []Scope{{Name: name}}}
}

// Empty reports whether the name has no components.
func (sn *ScopedName) Empty() bool {
	return len(sn.scopes) == 0
}

// Count returns the number of components.
func (sn *ScopedName) Count() int {
	return len(sn.scopes)
}

// Local returns the rightmost (unqualified) identifier, or "".
func (sn *ScopedName) Local() string {
	if len(sn.scopes) == 0 {
		return ""
	}
	return sn.scopes[len(sn.scopes)-1].Name
}

// ScopeOf returns the i-th component.
func (sn *ScopedName) ScopeOf(i int) Scope {
	return sn.scopes[i]
}

// Append adds a component at the local end.
func (sn *ScopedName) Append(name string, kind ScopeKind) {
	sn.scopes = append(sn.scopes, Scope{Name: name, Kind: kind})
}

// Prepend adds an enclosing scope at the outermost end.
func (sn *ScopedName) Prepend(name string, kind ScopeKind) {
	sn.scopes = append([]Scope{{Name: name, Kind: kind}}, sn.scopes...)
}

// Take moves the name out of sn, leaving it empty.
func (sn *ScopedName) Take() ScopedName {
	taken := ScopedName{scopes: sn.scopes}
	sn.scopes = nil
	return taken
}

// SetLocalScopeKind sets the kind of the outermost enclosing scope, if any.
func (sn *ScopedName) SetLocalScopeKind(kind ScopeKind) {
	if len(sn.scopes) > 1 {
		sn.scopes[len(sn.scopes)-2].Kind = kind
	}
}

// Qualifier returns the scope components without the local identifier.
func (sn *ScopedName) Qualifier() []Scope {
	if len(sn.scopes) < 2 {
		return nil
	}
	return sn.scopes[:len(sn.scopes)-1]
}

// IsScoped reports whether the name has at least one enclosing scope.
func (sn *ScopedName) IsScoped() bool {
	return len(sn.scopes) > 1
}

// EncodeMsgpack serializes the name as its scope list so snapshots survive
// the unexported field.
func (sn ScopedName) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(sn.scopes)
}

func (sn *ScopedName) DecodeMsgpack(dec *msgpack.Decoder) error {
	return dec.Decode(&sn.scopes)
}

func (sn ScopedName) String() string {
	if len(sn.scopes) == 0 {
		return ""
	}
	parts := make([]string, len(sn.scopes))
	for i, s := range sn.scopes {
		parts[i] = s.Name
	}
	return strings.Join(parts, "::")
}
