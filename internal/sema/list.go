package sema

import (
	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/diag"
	"declc/internal/dialect"
)

// checkList validates a comma-separated declarator list. The cross-declarator
// rules run first; each surviving tree is then checked on its own, stopping at
// the first failing one.
func (c *checker) checkList(roots []ast.NodeID) bool {
	if len(roots) == 0 {
		return true
	}

	if len(roots) > 1 {
		first := c.tree.Get(c.tree.Untypedef(roots[0]))
		if first.Kind.Is(ast.KBuiltin) && first.Type.Is(ctype.BAuto) &&
			!c.langHas(dialect.AutoMultiDecl) {
			c.error(diag.SemKindNotSupported, first.Span, "%s",
				c.notSupported(`"auto" with multiple declarators`)).Emit()
			return false
		}
	}

	// In C++ a repeated name is always a redefinition. In C the repeat is a
	// tentative definition and only a different type makes it an error.
	seen := make(map[string]ast.NodeID, len(roots))
	for _, id := range roots {
		nameID := c.tree.FindName(id)
		if nameID == ast.NoNode {
			continue
		}
		name := c.tree.Name(nameID)
		prev, dup := seen[name]
		if !dup {
			seen[name] = id
			continue
		}
		sp := c.tree.Get(nameID).Span
		if !c.langHas(dialect.TentativeDefs) {
			c.error(diag.SemTentativeDef, sp, "%q: redefinition", name).Emit()
			return false
		}
		if !c.tree.Equal(prev, id) {
			c.error(diag.SemRedefinition, sp,
				"%q: redefinition with different type", name).Emit()
			return false
		}
	}

	for _, id := range roots {
		if !c.check(id) {
			return false
		}
	}
	return true
}
