package dialect

import (
	"fmt"
	"math/bits"
	"strings"
)

// ID is a set of C/C++ dialects, one bit per supported standard. A single
// dialect is an ID with exactly one bit set; legality answers are IDs with
// any number of bits.
type ID uint32

const (
	CKnR ID = 1 << iota
	C89
	C95
	C99
	C11
	C17
	C23

	CPP98
	CPP03
	CPP11
	CPP14
	CPP17
	CPP20
	CPP23
)

const (
	None ID = 0
	AllC ID = CKnR | C89 | C95 | C99 | C11 | C17 | C23
	CPP  ID = CPP98 | CPP03 | CPP11 | CPP14 | CPP17 | CPP20 | CPP23
	All  ID = AllC | CPP

	latestC   = C23
	latestCPP = CPP23
)

// IsC reports whether every dialect in id is a C standard.
func (id ID) IsC() bool {
	return id != None && id&CPP == None
}

// IsCPP reports whether every dialect in id is a C++ standard.
func (id ID) IsCPP() bool {
	return id != None && id&AllC == None
}

// Has reports whether id contains every dialect in want.
func (id ID) Has(want ID) bool {
	return id&want == want
}

// Intersects reports whether id and other share at least one dialect.
func (id ID) Intersects(other ID) bool {
	return id&other != None
}

// IsOne reports whether exactly one dialect bit is set.
func (id ID) IsOne() bool {
	return bits.OnesCount32(uint32(id)) == 1
}

// Min returns id and every newer dialect in both families.
func Min(id ID) ID {
	c := CMin(id)
	if c == None {
		return CPPMin(id)
	}
	return c | CPP
}

// CMin returns the C dialects from id onward; None when id is not a C bit.
func CMin(id ID) ID {
	if id&AllC == None {
		return None
	}
	return rangeOf(id, latestC) & AllC
}

// CMax returns the C dialects up to and including id.
func CMax(id ID) ID {
	if id&AllC == None {
		return None
	}
	return rangeOf(CKnR, id) & AllC
}

// CPPMin returns the C++ dialects from id onward; None when id is not C++.
func CPPMin(id ID) ID {
	if id&CPP == None {
		return None
	}
	return rangeOf(id, latestCPP) & CPP
}

// CPPMax returns the C++ dialects up to and including id.
func CPPMax(id ID) ID {
	if id&CPP == None {
		return None
	}
	return rangeOf(CPP98, id) & CPP
}

func rangeOf(lo, hi ID) ID {
	return (hi | (hi - 1)) &^ (lo - 1)
}

var names = []struct {
	id      ID
	name    string
	aliases []string
}{
	{CKnR, "knr", []string{"knrc", "k&r", "k&rc"}},
	{C89, "c89", []string{"c90"}},
	{C95, "c95", nil},
	{C99, "c99", nil},
	{C11, "c11", nil},
	{C17, "c17", []string{"c18"}},
	{C23, "c23", nil},
	{CPP98, "c++98", nil},
	{CPP03, "c++03", nil},
	{CPP11, "c++11", nil},
	{CPP14, "c++14", nil},
	{CPP17, "c++17", nil},
	{CPP20, "c++20", nil},
	{CPP23, "c++23", nil},
}

// Parse maps a dialect name like "c99" or "c++17" to its single-bit ID.
func Parse(name string) (ID, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, n := range names {
		if n.name == want {
			return n.id, nil
		}
		for _, alias := range n.aliases {
			if alias == want {
				return n.id, nil
			}
		}
	}
	return None, fmt.Errorf("unknown dialect %q", name)
}

// Name returns the canonical name of a single dialect bit.
func Name(id ID) string {
	for _, n := range names {
		if n.id == id {
			return n.name
		}
	}
	return "none"
}

// List returns the canonical names of all supported dialects, oldest first.
func List() []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, n.name)
	}
	return out
}

// String renders a dialect set for diagnostics: "c99" for a single dialect,
// "c99 or later" / "c++11 or later" for contiguous suffix ranges, and a
// comma list otherwise. The empty set renders as "no dialect".
func (id ID) String() string {
	if id == None {
		return "no dialect"
	}
	if id == All {
		return "all dialects"
	}
	if id.IsOne() {
		return Name(id)
	}
	var parts []string
	if c := id & AllC; c != None {
		if CMin(lowestBit(c)) == c {
			parts = append(parts, Name(lowestBit(c))+" or later")
		} else {
			parts = append(parts, strings.Join(listNames(c), ", "))
		}
	}
	if cpp := id & CPP; cpp != None {
		if cpp == CPP {
			parts = append(parts, "all c++ dialects")
		} else if CPPMin(lowestBit(cpp)) == cpp {
			parts = append(parts, Name(lowestBit(cpp))+" or later")
		} else {
			parts = append(parts, strings.Join(listNames(cpp), ", "))
		}
	}
	return strings.Join(parts, "; ")
}

func listNames(id ID) []string {
	var out []string
	for _, n := range names {
		if id&n.id != None {
			out = append(out, n.name)
		}
	}
	return out
}

func lowestBit(id ID) ID {
	return id & -id
}
