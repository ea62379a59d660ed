package sema

import (
	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/diag"
	"declc/internal/dialect"
)

// Storage classes and qualifiers legal on function-like declarations.
var (
	funcStorageC   = ctype.SExtern | ctype.SInline | ctype.SStatic | ctype.STypedef
	funcStorageCPP = ctype.SAnyStorageLike &^ (ctype.SAuto | ctype.SBlock |
		ctype.SMutable | ctype.SRegister | ctype.SThreadLocal)

	// Qualifiers that can apply only to member functions.
	memberFuncOnly = ctype.SCV | ctype.SRefQualifier | ctype.SVirtual |
		ctype.SPureVirtual | ctype.SOverride | ctype.SFinal | ctype.SDelete

	// Attributes that make sense on functions.
	funcAttrs = (ctype.AAnyObject &^ ctype.ANoUniqueAddress) | ctype.AAnyMSCCall
)

func (c *checker) checkRetType(n *ast.Node) bool {
	ret := n.Func.Ret
	raw := c.rawGet(ret)
	if raw == nil {
		return true
	}
	switch {
	case raw.Kind.Is(ast.KArray):
		c.error(diag.SemReturnArray, n.Span, "%s returning array", n.Kind).
			WithHint(n.Kind.String() + " returning pointer").Emit()
		return false

	case raw.Kind.Is(ast.KAnyFunctionLike):
		c.error(diag.SemReturnFunction, n.Span, "%s returning %s", n.Kind, raw.Kind).
			WithHint(n.Kind.String() + " returning pointer to function").Emit()
		return false

	case raw.Kind.Is(ast.KBuiltin) && raw.Type.Is(ctype.BAuto):
		if !c.langHas(dialect.AutoReturn) {
			c.error(diag.SemAutoReturn, n.Span, "%s",
				c.notSupported(`"auto" return types`)).Emit()
			return false
		}
	}
	return true
}

func (c *checker) checkFunc(id ast.NodeID, n *ast.Node) bool {
	if n.Kind.Is(ast.KFunction) && n.SName.Local() == "main" &&
		(c.lang.IsC() || n.SName.Count() == 1) {
		if !c.checkMain(n) {
			return false
		}
	}

	if n.Type.Intersects(ctype.SConstinit) {
		c.error(diag.SemFuncStorage, n.Span, `%ss can not be "constinit"`, n.Kind).Emit()
		return false
	}

	if n.Type.Intersects(ctype.SRefQualifier) {
		if !c.langHas(dialect.RefQualifiers) {
			c.error(diag.SemFuncStorage, n.Span, "%s",
				c.notSupported("reference qualified functions")).Emit()
			return false
		}
		if n.Type.Intersects(ctype.SExtern | ctype.SStatic) {
			c.error(diag.SemFuncStorage, n.Span,
				"reference qualified functions can not have linkage").Emit()
			return false
		}
	}

	if n.Type.Intersects(ctype.SExplicit) &&
		!n.Kind.Is(ast.KConstructor|ast.KUserDefConversion) {
		c.error(diag.SemFuncStorage, n.Span,
			"only constructors and user-defined conversions can be explicit").Emit()
		return false
	}

	switch n.Func.Member {
	case ast.OverloadMember:
		if n.Type.Intersects(ctype.SExtern | ctype.SExternC) {
			c.error(diag.SemMemberFunc, n.Span, "member functions can not be extern").Emit()
			return false
		}
	case ast.OverloadNonMember:
		if bad := n.Type.Store & memberFuncOnly; !bad.IsNone() {
			c.error(diag.SemNonMemberFunc, n.Span, "non-member functions can not be %s",
				ctype.Type{Store: bad}.StoreString()).Emit()
			return false
		}
	}

	if n.Type.Intersects(ctype.SDefault | ctype.SDelete) {
		if !c.langHas(dialect.DefaultDelete) {
			c.error(diag.SemFuncStorage, n.Span, "%s",
				c.notSupported(`"= default" and "= delete"`)).Emit()
			return false
		}
		if n.Type.Intersects(ctype.SDefault) && n.Kind.Is(ast.KFunction) {
			c.error(diag.SemFuncStorage, n.Span,
				`"= default" can be used only for special member functions`).Emit()
			return false
		}
	}

	if bad := n.Type.Attr &^ funcAttrs; !bad.IsNone() {
		c.error(diag.SemFuncStorage, n.Span, "%ss can not be %s",
			n.Kind, ctype.Type{Attr: bad}.String()).Emit()
		return false
	}

	if n.Type.Intersects(ctype.SVirtual) {
		if n.SName.Count() > 1 {
			c.error(diag.SemMemberFunc, n.Span,
				`"%s": virtual can not be used in file-scoped %ss`,
				n.SName.String(), n.Kind).Emit()
			return false
		}
	} else if n.Type.Intersects(ctype.SPureVirtual) {
		c.error(diag.SemMemberFunc, n.Span, "non-virtual %ss can not be pure", n.Kind).Emit()
		return false
	}
	return true
}

// checkFuncStorage rejects storage classes that can never apply to a
// function-like declaration in the current dialect, and "throw" outside C++.
func (c *checker) checkFuncStorage(n *ast.Node) bool {
	allowed := funcStorageCPP
	if c.lang.IsC() {
		allowed = funcStorageC
	}
	if bad := n.Type.Store & ctype.SAnyStorageLike &^ allowed; !bad.IsNone() {
		c.error(diag.SemFuncStorage, n.Span, "%ss can not be %s",
			n.Kind, ctype.Type{Store: bad}.StoreString()).Emit()
		return false
	}
	if n.Type.Intersects(ctype.SThrow) && !c.langHas(dialect.Throw) {
		c.error(diag.SemThrowNotSupported, n.Span, "%s", c.notSupported(`"throw"`)).
			WithHint(`"noexcept"`).Emit()
		return false
	}
	return true
}

func (c *checker) checkMain(n *ast.Node) bool {
	if c.lang.IsC() {
		if bad := n.Type.Store & ctype.SAnyStorageLike &^ ctype.SExtern; !bad.IsNone() {
			c.error(diag.SemMainSignature, n.Span, "main can not be %s",
				ctype.Type{Store: bad}.StoreString()).Emit()
			return false
		}
	}
	if !c.tree.IsBuiltinAny(n.Func.Ret, ctype.BInt|ctype.BSigned) {
		c.error(diag.SemMainSignature, n.Span, "main must return int").Emit()
		return false
	}
	params := n.Func.Params
	switch len(params) {
	case 0:
		// ok: int main()
	case 1:
		if !c.tree.IsBuiltinAny(params[0].Node, ctype.BVoid) {
			c.error(diag.SemMainSignature, n.Span,
				"a single parameter for main must be void").Emit()
			return false
		}
	case 2, 3:
		if !c.tree.IsBuiltinAny(params[0].Node, ctype.BInt|ctype.BSigned) {
			c.error(diag.SemMainSignature, n.Span,
				"first parameter of main must be int").Emit()
			return false
		}
		for _, p := range params[1:] {
			if !c.isMainCharPtrParam(p.Node) {
				c.error(diag.SemMainSignature, n.Span,
					"parameters of main must be pointer to pointer to char").Emit()
				return false
			}
		}
	default:
		c.error(diag.SemMainSignature, n.Span, "main must have 0-3 parameters").Emit()
		return false
	}
	return true
}

// isMainCharPtrParam accepts the argv/envp shapes: pointer to pointer to
// [const] char, or array of pointer to [const] char.
func (c *checker) isMainCharPtrParam(id ast.NodeID) bool {
	raw := c.rawGet(id)
	if raw == nil {
		return false
	}
	var inner ast.NodeID
	switch {
	case raw.Kind.Is(ast.KPointer):
		inner = raw.Ptr.To
	case raw.Kind.Is(ast.KArray):
		inner = raw.Array.Of
	default:
		return false
	}
	return c.tree.IsPtrToTIDAny(inner, ctype.BChar)
}

func (c *checker) checkFuncParams(id ast.NodeID, n *ast.Node) bool {
	seen := make(map[string]bool, len(n.Func.Params))
	nParams := len(n.Func.Params)
	for i, p := range n.Func.Params {
		pn := c.tree.Get(p.Node)

		var name string
		var scoped bool
		if nameID := c.tree.FindName(p.Node); nameID != ast.NoNode {
			sn := &c.tree.Get(nameID).SName
			name, scoped = sn.Local(), sn.IsScoped()
		}
		if scoped {
			c.error(diag.SemScopedParamName, pn.Span,
				"%q: function parameter names can not be scoped",
				c.tree.Name(c.tree.FindName(p.Node))).Emit()
			return false
		}
		if name != "" {
			if seen[name] {
				c.error(diag.SemParamRedefinition, pn.Span,
					"%q: redefinition of parameter", name).Emit()
				return false
			}
			seen[name] = true
		}

		if bad := pn.Type.Store & ctype.SAnyStorageLike &^ ctype.SRegister; !bad.IsNone() {
			c.error(diag.SemFuncStorage, pn.Span, "function parameters can not be %s",
				ctype.Type{Store: bad}.StoreString()).Emit()
			return false
		}
		if pn.BitWidth > 0 {
			c.error(diag.SemBitFieldWidth, pn.Span,
				"function parameters can not have bit-field widths").Emit()
			return false
		}

		raw := c.rawGet(p.Node)
		switch {
		case raw.Kind.Is(ast.KName):
			if !c.langHas(dialect.KnRFunctions) {
				c.error(diag.SemKnRFuncNotSupported, pn.Span,
					"%q: type specifier required for function parameters", name).Emit()
				return false
			}

		case raw.Kind.Is(ast.KBuiltin) && raw.Type.Is(ctype.BVoid):
			if name != "" {
				c.error(diag.SemVoidParam, pn.Span,
					`"void" parameters can not have a name`).Emit()
				return false
			}
			if nParams > 1 {
				c.error(diag.SemVoidParam, pn.Span,
					`"void" must be the only parameter`).Emit()
				return false
			}
			if !(pn.Type.Store & (ctype.SCVR | ctype.SAtomic)).IsNone() {
				c.error(diag.SemVoidParam, pn.Span,
					`"void" parameters can not be qualified`).Emit()
				return false
			}

		case raw.Kind.Is(ast.KBuiltin) && raw.Type.Is(ctype.BAuto):
			if !c.langHas(dialect.AutoParameters) {
				c.error(diag.SemKindNotSupported, pn.Span, "%s",
					c.notSupported(`"auto" parameters`)).Emit()
				return false
			}

		case raw.Kind.Is(ast.KVariadic):
			if i != nParams-1 {
				c.error(diag.SemVariadicNotLast, pn.Span,
					`"..." must be the last parameter`).Emit()
				return false
			}
			if nParams == 1 && !c.langHas(dialect.VariadicOnlyParams) {
				c.error(diag.SemVariadicNotLast, pn.Span,
					`"..." requires at least one other parameter`).Emit()
				return false
			}
			if n.Kind.Is(ast.KOperator) && n.OperID != ast.OperParens {
				c.error(diag.SemOperParams, pn.Span,
					"operators can not be variadic").Emit()
				return false
			}
		}

		if !c.errorPass(p.Node, state{funcID: id}) {
			return false
		}
	}
	return true
}
