package sema

import (
	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/diag"
	"declc/internal/dialect"
)

var udefConvStorage = ctype.SConst | ctype.SConsteval | ctype.SConstexpr |
	ctype.SExplicit | ctype.SFinal | ctype.SFriend | ctype.SInline |
	ctype.SNoexcept | ctype.SOverride | ctype.SPureVirtual | ctype.SThrow |
	ctype.SVirtual

func (c *checker) checkUdefConv(id ast.NodeID, n *ast.Node) bool {
	if !c.lang.Intersects(dialect.CPP) {
		c.error(diag.SemKindNotSupported, n.Span, "%s",
			c.notSupported("user-defined conversion operators")).Emit()
		return false
	}
	if bad := n.Type.Store & ctype.SAnyStorageLike &^ udefConvStorage; !bad.IsNone() {
		c.error(diag.SemUDefConv, n.Span,
			"user-defined conversion operators can not be %s",
			ctype.Type{Store: bad}.StoreString()).Emit()
		return false
	}
	if n.Type.Intersects(ctype.SFriend) && !n.SName.IsScoped() {
		c.error(diag.SemUDefConv, n.Span,
			"friend user-defined conversion operator must use a qualified name").Emit()
		return false
	}
	if raw := c.rawGet(n.Func.Ret); raw != nil && raw.Kind.Is(ast.KArray) {
		c.error(diag.SemUDefConv, n.Span,
			"user-defined conversion operator can not convert to an array").
			WithHint("pointer to array").Emit()
		return false
	}
	return c.checkFunc(id, n) && c.checkFuncParams(id, n) && c.checkFuncStorage(n)
}

func (c *checker) checkUdefLitParams(n *ast.Node) bool {
	params := n.Func.Params
	switch len(params) {
	case 0:
		c.error(diag.SemUDefLitParams, n.Span,
			"user-defined literal must have at least 1 parameter").Emit()
		return false

	case 1:
		p := params[0].Node
		if !c.isUdefLitParam(p) {
			c.error(diag.SemUDefLitParams, n.Span,
				"invalid parameter type for user-defined literal").
				WithNote(n.Span, "must be one of unsigned long long, long double, "+
					"a character type, or const char*").Emit()
			return false
		}

	case 2:
		first := params[1-1].Node
		if !(c.tree.IsPtrToTIDAny(first, ctype.SConst) &&
			c.tree.IsPtrToTIDAny(first, ctype.BAnyChar)) {
			c.error(diag.SemUDefLitParams, n.Span,
				"first parameter of a 2-parameter user-defined literal "+
					"must be a pointer to a const character type").Emit()
			return false
		}
		if !c.isSizeT(params[1].Node) {
			c.error(diag.SemUDefLitParams, n.Span,
				"second parameter of a user-defined literal must be std::size_t").Emit()
			return false
		}

	default:
		c.error(diag.SemUDefLitParams, n.Span,
			"user-defined literal may have at most 2 parameters").Emit()
		return false
	}
	return true
}

var udefLitBases = []ctype.TID{
	ctype.BChar,
	ctype.BChar8,
	ctype.BChar16,
	ctype.BChar32,
	ctype.BWChar,
	ctype.BUnsigned | ctype.BLong | ctype.BLongLong,
	ctype.BUnsigned | ctype.BLong | ctype.BLongLong | ctype.BInt,
	ctype.BLong | ctype.BDouble,
}

func (c *checker) isUdefLitParam(id ast.NodeID) bool {
	raw := c.rawGet(id)
	if raw != nil && raw.Kind.Is(ast.KBuiltin) {
		for _, want := range udefLitBases {
			if raw.Type.Base == ctype.New(want).Base {
				return true
			}
		}
	}
	return c.tree.IsPtrToTIDAny(id, ctype.SConst) &&
		c.tree.IsPtrToTIDAny(id, ctype.BChar)
}
