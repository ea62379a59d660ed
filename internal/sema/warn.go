package sema

import (
	"strings"

	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/diag"
	"declc/internal/dialect"
)

// warnPass walks the whole chain and emits every applicable warning. Unlike
// the error passes it never stops early.
func (c *checker) warnPass(id ast.NodeID) {
	for id != ast.NoNode {
		n := c.tree.Get(id)
		c.warnVisit(id, n)
		if n.Kind.Is(ast.KAnyFunctionLike) {
			for _, p := range n.Func.Params {
				if c.langHas(dialect.VolatileFuncDeprecated) &&
					c.tree.Get(p.Node).Type.Intersects(ctype.SVolatile) {
					c.warn(diag.WrnVolatileFunc, c.tree.Get(p.Node).Span,
						`"volatile" parameters are deprecated`).Emit()
				}
				c.warnPass(p.Node)
			}
		}
		id = c.tree.ChildID(id)
	}
}

func (c *checker) warnVisit(id ast.NodeID, n *ast.Node) {
	c.warnName(n)

	if n.Type.Intersects(ctype.SRegister) && c.langHas(dialect.RegisterDeprecated) {
		c.warn(diag.WrnRegisterDeprecated, n.Span, `"register" is deprecated`).Emit()
	}

	switch {
	case n.Kind.Is(ast.KUserDefLiteral):
		if name := n.SName.Local(); name != "" && !strings.HasPrefix(name, "_") {
			c.warn(diag.WrnUDLNoUnderscore, n.Span,
				"%q: user-defined literals not starting with '_' are reserved",
				name).Emit()
		}

	case n.Kind.Is(ast.KAnyFunctionLike):
		if c.langHas(dialect.VolatileFuncDeprecated) &&
			c.returnsVolatile(n.Func.Ret) {
			c.warn(diag.WrnVolatileFunc, n.Span,
				`"volatile" return types are deprecated`).Emit()
		}
		if n.Type.Intersects(ctype.ANodiscard) &&
			c.tree.IsBuiltinAny(n.Func.Ret, ctype.BVoid) {
			c.warn(diag.WrnNodiscardVoid, n.Span,
				"[[nodiscard]] %ss can not return void", n.Kind).Emit()
		}
		if n.Type.Intersects(ctype.SThrow) && c.langHas(dialect.ThrowDeprecated) {
			c.warn(diag.WrnThrowDeprecated, n.Span, `"throw" is deprecated`).
				WithHint(`"noexcept"`).Emit()
		}

	case n.Kind.Is(ast.KName):
		if c.langHas(dialect.Prototypes) {
			c.warn(diag.WrnImplicitInt, n.Span,
				`missing type specifier; "int" assumed`).Emit()
		}
	}
}

func (c *checker) returnsVolatile(ret ast.NodeID) bool {
	if n := c.tree.Get(ret); n != nil && n.Type.Intersects(ctype.SVolatile) {
		return true
	}
	if raw := c.rawGet(ret); raw != nil && raw.Type.Intersects(ctype.SVolatile) {
		return true
	}
	return false
}

// warnName flags reserved identifiers in every component of a scoped name.
func (c *checker) warnName(n *ast.Node) {
	for i := 0; i < n.SName.Count(); i++ {
		name := n.SName.ScopeOf(i).Name
		if langs := reservedName(name); langs.Intersects(c.lang) {
			c.warn(diag.WrnReservedIdentifier, n.Span,
				"%q is a reserved identifier", name).Emit()
		}
	}
}

// reservedName returns the dialects in which the identifier is reserved:
// a leading underscore followed by an uppercase letter or another underscore
// is reserved everywhere, and any interior double underscore is additionally
// reserved in C++.
func reservedName(name string) dialect.ID {
	if len(name) >= 2 && name[0] == '_' &&
		(name[1] == '_' || (name[1] >= 'A' && name[1] <= 'Z')) {
		return dialect.All
	}
	if strings.Contains(name, "__") {
		return dialect.CPP
	}
	return dialect.None
}
