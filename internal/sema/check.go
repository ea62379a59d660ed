// Package sema validates a fully built declaration tree against the rules of
// a selected dialect. Checking runs three independent full-tree passes in a
// fixed order: a structural pass and a type-legality pass, each stopping at
// the first error, then a warning pass that always runs to completion.
package sema

import (
	"fmt"

	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/diag"
	"declc/internal/dialect"
	"declc/internal/source"
)

// Options configure one check.
type Options struct {
	// Lang is the dialect to check against, a single dialect bit.
	Lang     dialect.ID
	Reporter diag.Reporter
}

// Check validates a single declaration or cast tree. It reports at most one
// error plus any number of warnings, and returns false when an error was
// found. Checking never mutates the tree, so re-checking is deterministic.
func Check(tree *ast.Tree, root ast.NodeID, opts Options) bool {
	return newChecker(tree, opts).check(root)
}

// CheckList validates several declarators sharing one base type, as in
// "int *p, x;", enforcing the cross-declarator redefinition rules before
// checking each tree.
func CheckList(tree *ast.Tree, roots []ast.NodeID, opts Options) bool {
	return newChecker(tree, opts).checkList(roots)
}

// state is the traversal state threaded through the error and type passes.
type state struct {
	// funcID is the enclosing function-like node when walking a parameter
	// subtree, NoNode at the top level.
	funcID ast.NodeID
	// isPointee is set when walking the definition of a typedef that was
	// reached through a pointer; it is what makes a pointer to a typedef
	// of void legal even though a variable of void is not.
	isPointee bool
	// fromUse is set when walking a definition reached from a use of the
	// typedef name, as opposed to checking the defining declaration itself.
	fromUse bool
}

type checker struct {
	tree *ast.Tree
	lang dialect.ID
	rep  diag.Reporter
}

func newChecker(tree *ast.Tree, opts Options) *checker {
	lang := opts.Lang
	if lang == dialect.None {
		lang = dialect.C23
	}
	return &checker{tree: tree, lang: lang, rep: opts.Reporter}
}

func (c *checker) check(root ast.NodeID) bool {
	if root == ast.NoNode {
		return true
	}
	if !c.errorPass(root, state{}) {
		return false
	}
	if !c.typePass(root, state{}) {
		return false
	}
	c.warnPass(root)
	return true
}

func (c *checker) langHas(feature dialect.ID) bool {
	return feature.Intersects(c.lang)
}

// notSupported renders the standard "X not supported in c89" clause.
func (c *checker) notSupported(what string) string {
	return fmt.Sprintf("%s not supported in %s", what, dialect.Name(c.lang))
}

func (c *checker) error(code diag.Code, sp source.Span, format string, args ...any) *diag.ReportBuilder {
	return diag.ReportError(c.rep, code, sp, fmt.Sprintf(format, args...))
}

func (c *checker) warn(code diag.Code, sp source.Span, format string, args ...any) *diag.ReportBuilder {
	return diag.ReportWarning(c.rep, code, sp, fmt.Sprintf(format, args...))
}

// errorPass walks the single-child chain from id toward the leaf, stopping at
// the first structural error. Parameter subtrees are walked from within the
// function-param checks so they see the enclosing function in their state.
func (c *checker) errorPass(id ast.NodeID, st state) bool {
	for id != ast.NoNode {
		if !c.errorVisit(id, st) {
			return false
		}
		id = c.tree.ChildID(id)
	}
	return true
}

func (c *checker) errorVisit(id ast.NodeID, st state) bool {
	n := c.tree.Get(id)
	if !c.checkAlignas(n) {
		return false
	}

	switch {
	case n.Kind.Is(ast.KArray):
		if !c.checkArray(id, n, st) {
			return false
		}

	case n.Kind.Is(ast.KBuiltin):
		if !c.checkBuiltin(n, st) {
			return false
		}

	case n.Kind.Is(ast.KCast):
		if !c.checkCast(n) {
			return false
		}

	case n.Kind.Is(ast.KEnum):
		if !c.checkEnum(n) {
			return false
		}

	case n.Kind.Is(ast.KOperator):
		if !(c.checkOper(id, n) && c.checkRetType(n) && c.checkFunc(id, n) &&
			c.checkFuncParams(id, n) && c.checkFuncStorage(n)) {
			return false
		}

	case n.Kind.Is(ast.KBlock | ast.KFunction):
		if !(c.checkRetType(n) && c.checkFunc(id, n) &&
			c.checkFuncParams(id, n) && c.checkFuncStorage(n)) {
			return false
		}

	case n.Kind.Is(ast.KConstructor):
		if !(c.checkFunc(id, n) && c.checkFuncParams(id, n) &&
			c.checkCtorDtor(n) && c.checkFuncStorage(n)) {
			return false
		}

	case n.Kind.Is(ast.KDestructor):
		if !(c.checkCtorDtor(n) && c.checkFuncStorage(n)) {
			return false
		}

	case n.Kind.Is(ast.KLambda):
		if !(c.checkLambda(n) && c.checkFuncParams(id, n) && c.checkRetType(n)) {
			return false
		}

	case n.Kind.Is(ast.KPointerToMember):
		if !c.langHas(dialect.PointersToMember) {
			c.error(diag.SemKindNotSupported, n.Span, "%s",
				c.notSupported("pointers to member")).Emit()
			return false
		}
		if !c.checkPointer(id, n) {
			return false
		}

	case n.Kind.Is(ast.KPointer):
		if !c.checkPointer(id, n) {
			return false
		}

	case n.Kind.Is(ast.KRvalueReference):
		if !c.langHas(dialect.RvalueReferences) {
			c.error(diag.SemReferenceNotSupported, n.Span, "%s",
				c.notSupported("rvalue references")).Emit()
			return false
		}
		if !c.checkReference(n) {
			return false
		}

	case n.Kind.Is(ast.KReference):
		if !c.langHas(dialect.References) {
			c.error(diag.SemReferenceNotSupported, n.Span, "%s",
				c.notSupported("references")).Emit()
			return false
		}
		if !c.checkReference(n) {
			return false
		}

	case n.Kind.Is(ast.KTypedef):
		// A typedef node is a synonym for its definition, not a parent of
		// it, so the walk recurses into the definition manually. The fresh
		// state records whether the typedef was reached through a pointer
		// and whether this is a use of the name rather than its defining
		// declaration, which itself carries the typedef storage class.
		sub := state{
			isPointee: c.parentKind(id).Is(ast.KPointer),
			fromUse:   !n.Type.Intersects(ctype.STypedef),
		}
		return c.errorPass(n.TypedefFor, sub)

	case n.Kind.Is(ast.KUserDefConversion):
		if !c.checkUdefConv(id, n) {
			return false
		}

	case n.Kind.Is(ast.KUserDefLiteral):
		if !(c.checkRetType(n) && c.checkFunc(id, n) &&
			c.checkUdefLitParams(n) && c.checkFuncStorage(n)) {
			return false
		}

	case n.Kind.Is(ast.KStructuredBinding):
		if !c.checkBinding(n) {
			return false
		}

	case n.Kind.Is(ast.KVariadic):
		if st.funcID == ast.NoNode {
			c.error(diag.SemKindNotSupported, n.Span,
				`"..." can be used only as a function parameter`).Emit()
			return false
		}
	}

	if !n.Kind.Is(ast.KAnyFunctionLike) && n.Type.Intersects(ctype.SConsteval) {
		c.error(diag.SemConstevalNonFunc, n.Span, "only functions can be consteval").Emit()
		return false
	}
	return true
}

func (c *checker) parentKind(id ast.NodeID) ast.Kind {
	n := c.tree.Get(id)
	if n == nil || n.Parent == ast.NoNode {
		return ast.KNone
	}
	return c.tree.Get(n.Parent).Kind
}

// rawGet resolves typedefs from id and returns the underlying node.
func (c *checker) rawGet(id ast.NodeID) *ast.Node {
	return c.tree.Get(c.tree.Untypedef(id))
}
