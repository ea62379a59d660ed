package typedefs

import (
	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/dialect"
)

// predef describes one standard typedef name as the built-in type it stands
// for in practice on common ABIs.
type predef struct {
	name  string
	langs dialect.ID
	base  ctype.TID
}

var stddef = dialect.Min(dialect.C89)
var stdint = dialect.CMin(dialect.C99) | dialect.CPPMin(dialect.CPP11)

var predefs = []predef{
	{"size_t", stddef, ctype.BUnsigned | ctype.BLong},
	{"ptrdiff_t", stddef, ctype.BLong},
	{"ssize_t", stddef, ctype.BLong},

	{"int8_t", stdint, ctype.BSigned | ctype.BChar},
	{"int16_t", stdint, ctype.BShort | ctype.BInt},
	{"int32_t", stdint, ctype.BInt},
	{"int64_t", stdint, ctype.BLong | ctype.BLongLong | ctype.BInt},
	{"uint8_t", stdint, ctype.BUnsigned | ctype.BChar},
	{"uint16_t", stdint, ctype.BUnsigned | ctype.BShort | ctype.BInt},
	{"uint32_t", stdint, ctype.BUnsigned | ctype.BInt},
	{"uint64_t", stdint, ctype.BUnsigned | ctype.BLong | ctype.BLongLong | ctype.BInt},
	{"intptr_t", stdint, ctype.BLong},
	{"uintptr_t", stdint, ctype.BUnsigned | ctype.BLong},
	{"intmax_t", stdint, ctype.BLong | ctype.BLongLong | ctype.BInt},
	{"uintmax_t", stdint, ctype.BUnsigned | ctype.BLong | ctype.BLongLong | ctype.BInt},

	// wchar_t is a distinct built-in type in C++, a typedef only in C.
	{"wchar_t", dialect.CMin(dialect.C95), ctype.BInt},
}

func (r *Registry) seed(lang dialect.ID) {
	for _, p := range predefs {
		if !p.langs.Intersects(lang) {
			continue
		}
		id := r.tree.New(ast.Node{
			Kind:  ast.KBuiltin,
			Type:  ctype.New(p.base),
			SName: ast.NameOf(p.name),
		})
		r.defs[p.name] = id
		r.predefined[p.name] = true
	}
}
