package sema

import (
	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/diag"
)

func (c *checker) checkPointer(id ast.NodeID, n *ast.Node) bool {
	to := c.tree.ChildID(id)
	raw := c.rawGet(to)
	if raw == nil {
		return true
	}
	switch {
	case raw.Kind.Is(ast.KAnyReference):
		c.error(diag.SemPointerToReference, n.Span, "pointer to reference").
			WithHint("reference to pointer").Emit()
		return false

	case raw.Kind.Is(ast.KBuiltin) && raw.Type.Is(ctype.BAuto):
		c.error(diag.SemKindNotSupported, n.Span, `pointer to "auto" is illegal`).Emit()
		return false

	case raw.Type.Intersects(ctype.SRegister):
		c.error(diag.SemPointerToRegister, n.Span, "pointer to register").Emit()
		return false
	}
	if n.Type.Intersects(ctype.AAnyMSCCall) && !raw.Kind.Is(ast.KAnyFunctionLike) {
		c.error(diag.SemKindNotSupported, n.Span,
			"%s can be used only on functions and pointers to functions",
			ctype.Type{Attr: n.Type.Attr & ctype.AAnyMSCCall}.String()).Emit()
		return false
	}
	return true
}

func (c *checker) checkReference(n *ast.Node) bool {
	if cv := n.Type.Store & ctype.SCV; !cv.IsNone() {
		// Qualifiers belong on what is referred to, never on the
		// reference itself.
		quals := ctype.Type{Store: cv}.StoreString()
		c.error(diag.SemReferenceQualified, n.Span, "references can not be %s", quals).
			WithHint("reference to " + quals).Emit()
		return false
	}
	if c.tree.IsBuiltinAny(n.Ptr.To, ctype.BVoid) {
		c.error(diag.SemReferenceToVoid, n.Span, "reference to void").
			WithHint("pointer to void").Emit()
		return false
	}
	return true
}
