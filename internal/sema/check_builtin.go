package sema

import (
	"math/bits"
	"strings"

	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/diag"
	"declc/internal/dialect"
)

// bitIntMaxWidth is the minimum maximum width every implementation must
// support for _BitInt.
const bitIntMaxWidth = 128

func (c *checker) checkAlignas(n *ast.Node) bool {
	if !n.Align.IsSet() {
		return true
	}
	switch {
	case n.Type.Intersects(ctype.STypedef):
		c.error(diag.SemAlignment, n.Span, "types can not be aligned").Emit()
		return false
	case n.Type.Intersects(ctype.SRegister):
		c.error(diag.SemAlignment, n.Span, "aligned variables can not be register").Emit()
		return false
	case n.BitWidth > 0:
		c.error(diag.SemAlignment, n.Span, "bit-fields can not be aligned").Emit()
		return false
	case !n.Kind.Is(ast.KAnyObject):
		c.error(diag.SemAlignment, n.Span, "%s can not be aligned", n.Kind).Emit()
		return false
	case !c.langHas(dialect.Alignment):
		c.error(diag.SemAlignment, n.Span, "%s", c.notSupported("alignment")).Emit()
		return false
	case n.Align.Bytes != 0 && bits.OnesCount32(n.Align.Bytes) != 1:
		c.error(diag.SemAlignment, n.Span,
			`"%d": alignment must be a power of 2`, n.Align.Bytes).Emit()
		return false
	}
	return true
}

func (c *checker) checkBuiltin(n *ast.Node, st state) bool {
	if n.Type.Base.IsNone() && !n.ParamPack && n.BitWidth == 0 {
		if !c.langHas(dialect.ImplicitInt) {
			c.error(diag.SemNoImplicitInt, n.Span, "%s",
				c.notSupported(`implicit "int"`)).Emit()
			return false
		}
	}
	if n.Type.Intersects(ctype.SInline) && !c.langHas(dialect.InlineVariables) {
		c.error(diag.SemInlineVariable, n.Span, "%s",
			c.notSupported("inline variables")).Emit()
		return false
	}

	if n.Type.Is(ctype.BBitInt) {
		min := uint32(2)
		if n.Type.Is(ctype.BUnsigned) {
			min = 1
		}
		if n.BitWidth < min {
			c.error(diag.SemBitIntWidth, n.Span,
				"_BitInt must have a width of at least %d %s", min, plural(min, "bit")).Emit()
			return false
		}
		if n.BitWidth > bitIntMaxWidth {
			c.error(diag.SemBitIntWidth, n.Span,
				"_BitInt must have a width of at most %d bits", bitIntMaxWidth).Emit()
			return false
		}
	} else if n.BitWidth > 0 {
		switch {
		case n.SName.IsScoped():
			c.error(diag.SemBitFieldWidth, n.Span,
				"scoped names can not have bit-field widths").Emit()
			return false
		case n.Type.Intersects(ctype.ANoUniqueAddress):
			c.error(diag.SemBitFieldWidth, n.Span,
				`"no_unique_address" can not be used with bit-fields`).Emit()
			return false
		case n.Type.Intersects(ctype.SAnyStorage):
			c.error(diag.SemBitFieldWidth, n.Span,
				"bit-fields can not have storage classes").Emit()
			return false
		case n.Type.Base.IsNone() || !n.Type.Base.Only(ctype.BAnyIntegral|ctype.BEnum):
			c.error(diag.SemBitFieldType, n.Span,
				"bit-fields can have only integral types").Emit()
			return false
		}
	}

	// A variable of void is illegal; "void" is still fine as a typedef
	// target, as a pointee (including behind a typedef), and in C as an
	// incomplete extern.
	if n.Type.Is(ctype.BVoid) &&
		n.Parent == ast.NoNode && st.funcID == ast.NoNode && !st.isPointee &&
		(!n.Type.Intersects(ctype.STypedef) || st.fromUse) &&
		!(c.lang.IsC() && n.Type.Intersects(ctype.SExtern)) {
		c.error(diag.SemVariableOfVoid, n.Span, "variable of void").
			WithHint("pointer to void").Emit()
		return false
	}
	return true
}

func (c *checker) checkBinding(n *ast.Node) bool {
	if !c.langHas(dialect.StructuredBindings) {
		c.error(diag.SemKindNotSupported, n.Span, "%s",
			c.notSupported("structured bindings")).Emit()
		return false
	}
	if bad := n.Type.Store & ctype.SAnyStorageLike &^
		(ctype.SStatic | ctype.SThreadLocal); !bad.IsNone() {
		c.error(diag.SemBindingName, n.Span, "structured bindings can not be %s",
			ctype.Type{Store: bad}.StoreString()).Emit()
		return false
	}
	seen := make(map[string]bool, len(n.BindingNames))
	for _, name := range n.BindingNames {
		if strings.Contains(name, "::") {
			c.error(diag.SemBindingName, n.Span,
				"%q: structured binding names can not be scoped", name).Emit()
			return false
		}
		if seen[name] {
			c.error(diag.SemBindingName, n.Span,
				"%q: redefinition of structured binding name", name).Emit()
			return false
		}
		seen[name] = true
	}
	return true
}

func plural(n uint32, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
