package sema

import (
	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/diag"
)

var (
	ctorStorage = ctype.SConsteval | ctype.SConstexpr | ctype.SDefault |
		ctype.SDelete | ctype.SExplicit | ctype.SFriend | ctype.SInline |
		ctype.SNoexcept | ctype.SThrow

	dtorStorage = ctype.SDefault | ctype.SDelete | ctype.SFinal |
		ctype.SFriend | ctype.SInline | ctype.SNoexcept | ctype.SOverride |
		ctype.SPureVirtual | ctype.SThrow | ctype.SVirtual
)

func (c *checker) checkCtorDtor(n *ast.Node) bool {
	if n.Kind.Is(ast.KConstructor) {
		if bad := n.Type.Store & ctype.SAnyStorageLike &^ ctorStorage; !bad.IsNone() {
			c.error(diag.SemCtorStorage, n.Span, "constructors can not be %s",
				ctype.Type{Store: bad}.StoreString()).Emit()
			return false
		}
	} else {
		if bad := n.Type.Store & ctype.SAnyStorageLike &^ dtorStorage; !bad.IsNone() {
			c.error(diag.SemDtorStorage, n.Span, "destructors can not be %s",
				ctype.Type{Store: bad}.StoreString()).Emit()
			return false
		}
	}

	// An out-of-line definition "C::C" must repeat the class name.
	if n.SName.IsScoped() {
		class := n.SName.ScopeOf(n.SName.Count() - 2).Name
		if class != n.SName.Local() {
			c.error(diag.SemCtorDtorName, n.Span,
				`"%s": %s name must match the class name %q`,
				n.SName.String(), n.Kind, class).Emit()
			return false
		}
	}
	return true
}
