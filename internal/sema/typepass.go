package sema

import (
	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/diag"
	"declc/internal/dialect"
)

// typePass walks the chain from id toward the leaf asking the type tables
// whether each node's full bit combination is legal in the selected dialect,
// stopping at the first violation. It never revisits what the structural pass
// already rejected.
func (c *checker) typePass(id ast.NodeID, st state) bool {
	for id != ast.NoNode {
		n := c.tree.Get(id)
		if !c.typeVisit(id, n, st) {
			return false
		}
		if n.Kind.Is(ast.KAnyFunctionLike) {
			for _, p := range n.Func.Params {
				if !c.typePass(p.Node, state{funcID: id}) {
					return false
				}
			}
		}
		id = c.tree.ChildID(id)
	}
	return true
}

func (c *checker) typeVisit(id ast.NodeID, n *ast.Node, st state) bool {
	if ok := ctype.Check(n.Type); !ok.Intersects(c.lang) {
		rb := c.error(diag.TypIllegalType, n.Span, "%q is illegal for %s in %s",
			n.Type.String(), n.Kind, dialect.Name(c.lang))
		if ok != dialect.None {
			rb.WithNote(n.Span, "legal in "+ok.String())
		}
		rb.Emit()
		return false
	}

	if n.Kind.Is(ast.KAnyFunctionLike) {
		if n.Type.Intersects(ctype.SConstexpr) &&
			!c.langHas(dialect.ConstexprVoidReturn) &&
			c.tree.IsBuiltinAny(n.Func.Ret, ctype.BVoid) {
			c.error(diag.TypConstexprVoid, n.Span, "%s",
				c.notSupported("constexpr "+n.Kind.String()+" returning void")).Emit()
			return false
		}
	} else {
		if n.Type.Intersects(ctype.SNonEmptyArray) && !n.Kind.Is(ast.KArray) {
			c.error(diag.TypIllegalStorage, n.Span,
				`%ss can not be "non-empty"`, n.Kind).Emit()
			return false
		}
		if n.Type.Intersects(ctype.AAnyMSCCall) && !n.Kind.Is(ast.KPointer) {
			c.error(diag.TypAttrNonObject, n.Span,
				"calling conventions can apply only to functions and "+
					"pointers to functions").Emit()
			return false
		}
	}

	if bad := n.Type.Attr & ctype.AAnyObject; !bad.IsNone() &&
		!n.Kind.Is(ast.KAnyObject|ast.KAnyFunctionLike) {
		c.error(diag.TypAttrNonObject, n.Span, "%s can not be %s",
			n.Kind, ctype.Type{Attr: bad}.String()).Emit()
		return false
	}

	if n.Type.Intersects(ctype.SRestrict) {
		if !c.checkRestrict(id, n) {
			return false
		}
	}

	if n.ParamPack && st.funcID != ast.NoNode &&
		n.Kind.Is(ast.KBuiltin) && !n.Type.Is(ctype.BAuto) {
		c.error(diag.TypParamPack, n.Span, "%s",
			c.notSupported(`parameter packs for non-"auto" parameters`)).Emit()
		return false
	}
	return true
}

// checkRestrict enforces that restrict applies only to pointers to object
// types. Arrays of restrict pointers and restrict on function-like nodes are
// left to the kinds that own them.
func (c *checker) checkRestrict(id ast.NodeID, n *ast.Node) bool {
	switch {
	case n.Kind.Is(ast.KArray | ast.KAnyFunctionLike | ast.KAnyReference):
		return true
	case n.Kind.Is(ast.KPointer):
		pointee := c.rawGet(n.Ptr.To)
		if pointee != nil && !pointee.Kind.Is(ast.KAnyObject) {
			c.error(diag.TypRestrict, n.Span,
				"pointer to %s can not be restrict", pointee.Kind).Emit()
			return false
		}
		return true
	default:
		c.error(diag.TypRestrict, n.Span, "%s can not be restrict", n.Kind).Emit()
		return false
	}
}
