package sema

import (
	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/diag"
	"declc/internal/dialect"
)

func (c *checker) checkArray(id ast.NodeID, n *ast.Node, st state) bool {
	if n.Type.Intersects(ctype.SAtomic) {
		c.error(diag.SemQualArrayNotSupported, n.Span, `"_Atomic" arrays are illegal`).Emit()
		return false
	}
	if qual := n.Type.Store & (ctype.SCVR | ctype.SNonEmptyArray); !qual.IsNone() {
		if st.funcID == ast.NoNode {
			c.error(diag.SemQualArrayNotSupported, n.Span,
				"arrays can be qualified only as function parameters").Emit()
			return false
		}
		if !c.langHas(dialect.QualifiedArrays) {
			c.error(diag.SemQualArrayNotSupported, n.Span, "%s",
				c.notSupported("qualified array parameters")).Emit()
			return false
		}
	}

	switch n.Array.SizeKind {
	case ast.ArraySizeNone:
		if n.Type.Intersects(ctype.SNonEmptyArray) {
			c.error(diag.SemArraySize, n.Span, `"non-empty" requires an array size`).Emit()
			return false
		}
	case ast.ArraySizeInt:
		if n.Array.Size <= 0 {
			c.error(diag.SemArraySize, n.Span, "array size must be greater than 0").Emit()
			return false
		}
	case ast.ArraySizeName:
		if !c.langHas(dialect.VLAs) {
			c.error(diag.SemVLANotSupported, n.Span, "%s",
				c.notSupported("variable length arrays")).Emit()
			return false
		}
	case ast.ArraySizeStar:
		if !c.langHas(dialect.VLAs) {
			c.error(diag.SemVLANotSupported, n.Span, "%s",
				c.notSupported("variable length arrays")).Emit()
			return false
		}
		if st.funcID == ast.NoNode {
			c.error(diag.SemArraySize, n.Span,
				`"[*]" can be used only in function prototypes`).Emit()
			return false
		}
	}

	raw := c.rawGet(n.Array.Of)
	if raw == nil {
		return true
	}
	switch {
	case raw.Kind.Is(ast.KBuiltin) && raw.Type.Is(ctype.BVoid):
		c.error(diag.SemArrayOfVoid, n.Span, "array of void").
			WithHint("array of pointer to void").Emit()
		return false

	case raw.Kind.Is(ast.KAnyFunctionLike):
		c.error(diag.SemArrayOfFunction, n.Span, "array of %s", raw.Kind).
			WithHint("array of pointer to function").Emit()
		return false

	case raw.Kind.Is(ast.KAnyReference):
		c.error(diag.SemArrayOfReference, n.Span, "array of reference").
			WithHint("reference to array").Emit()
		return false

	case raw.Kind.Is(ast.KArray) && raw.Array.SizeKind == ast.ArraySizeNone:
		// Only the outermost dimension of a multidimensional array may be
		// left unsized.
		c.error(diag.SemArraySize, raw.Span, "array dimension required").Emit()
		return false

	case raw.Type.Intersects(ctype.SRegister):
		c.error(diag.SemInvalidArrayElem, n.Span, "array of register").Emit()
		return false
	}
	return true
}
