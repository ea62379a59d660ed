package sema

import (
	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/diag"
	"declc/internal/dialect"
)

func (c *checker) checkCast(n *ast.Node) bool {
	if n.CastKind != ast.CastC && !c.lang.Intersects(dialect.CPP) {
		c.error(diag.SemCastIllegal, n.Span, "%s",
			c.notSupported(n.CastKind.String())).Emit()
		return false
	}

	if found := c.tree.FindTypeAny(n.Ptr.To, ctype.Type{Store: ctype.SAnyStorage}); found != ast.NoNode {
		bad := c.tree.Get(found).Type.Store & ctype.SAnyStorage
		c.error(diag.SemCastIllegal, n.Span, "cast into %s is illegal",
			ctype.Type{Store: bad}.StoreString()).Emit()
		return false
	}

	to := n.Ptr.To
	raw := c.rawGet(to)
	switch n.CastKind {
	case ast.CastC, ast.CastStatic:
		if raw != nil && raw.Kind.Is(ast.KAnyFunctionLike) {
			c.error(diag.SemCastIllegal, n.Span, "cast into function is illegal").
				WithHint("cast into pointer to function").Emit()
			return false
		}

	case ast.CastConst:
		if raw == nil || !raw.Kind.Is(ast.KAnyPointer|ast.KAnyReference) {
			c.error(diag.SemCastIllegal, n.Span,
				"const_cast must be to a pointer, pointer to member, or reference").Emit()
			return false
		}

	case ast.CastDynamic:
		if !c.tree.IsPtrToTIDAny(to, ctype.BAnyClass) &&
			!c.tree.IsRefToTIDAny(to, ctype.BAnyClass) {
			c.error(diag.SemCastIllegal, n.Span,
				"dynamic_cast must be to a pointer or reference to a class").Emit()
			return false
		}

	case ast.CastReinterpret:
		if c.tree.IsBuiltinAny(to, ctype.BVoid) {
			c.error(diag.SemCastIllegal, n.Span,
				"reinterpret_cast can not be to void").Emit()
			return false
		}
	}
	return true
}

func (c *checker) checkEnum(n *ast.Node) bool {
	if n.Type.Intersects(ctype.BStruct|ctype.BClass) && !c.langHas(dialect.EnumClass) {
		c.error(diag.SemKindNotSupported, n.Span, "%s",
			c.notSupported(`"enum class"`)).Emit()
		return false
	}
	if n.BitWidth > 0 {
		c.error(diag.SemBitFieldType, n.Span, "enumerations can not be bit-fields").Emit()
		return false
	}
	if n.EnumOf != ast.NoNode {
		if !c.langHas(dialect.EnumFixedType) {
			c.error(diag.SemEnumFixedType, n.Span, "%s",
				c.notSupported("enumerations with a fixed underlying type")).Emit()
			return false
		}
		if !c.tree.IsBuiltinAny(n.EnumOf, ctype.BAnyIntegral) {
			c.error(diag.SemEnumFixedType, n.Span,
				"enumeration underlying type must be integral").Emit()
			return false
		}
	}
	return true
}
