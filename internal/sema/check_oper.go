package sema

import (
	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/diag"
	"declc/internal/dialect"
)

// allocStorage is the set of storage classes legal on allocation operators.
const allocStorage = ctype.SExtern | ctype.SFriend | ctype.SNoexcept |
	ctype.SStatic | ctype.SThrow

func allocOper(id ast.OperID) bool {
	switch id {
	case ast.OperNew, ast.OperNewArray, ast.OperDelete, ast.OperDeleteArray:
		return true
	}
	return false
}

func relationalOper(id ast.OperID) bool {
	switch id {
	case ast.OperEq2, ast.OperExclamEq, ast.OperLess, ast.OperLessEq,
		ast.OperGreater, ast.OperGreaterEq, ast.OperSpaceship:
		return true
	}
	return false
}

func (c *checker) checkOper(id ast.NodeID, n *ast.Node) bool {
	op := ast.LookupOper(n.OperID, c.lang)
	if op.Overload == ast.OverloadNotOverloadable {
		c.error(diag.SemOperNotOverloadable, n.Span,
			"operator %s can not be overloaded", op.Literal).Emit()
		return false
	}
	if !op.Langs.Intersects(c.lang) {
		c.error(diag.SemKindNotSupported, n.Span, "%s",
			c.notSupported("operator "+op.Literal)).Emit()
		return false
	}

	// Member-ness may be stated by the user, implied by a qualifier, or
	// inferred from arity; inference can legitimately stay unspecified.
	overload := c.tree.OperOverload(id, c.lang)

	switch n.Func.Member {
	case ast.OverloadMember:
		if op.Overload == ast.OverloadNonMember {
			c.error(diag.SemOperMember, n.Span,
				"operator %s can only be a non-member", op.Literal).Emit()
			return false
		}
	case ast.OverloadNonMember:
		if op.Overload == ast.OverloadMember {
			c.error(diag.SemOperMember, n.Span,
				"operator %s can only be a member", op.Literal).Emit()
			return false
		}
	}

	if overload == ast.OverloadMember && n.Type.Intersects(ctype.SStatic) &&
		!allocOper(n.OperID) &&
		!(n.OperID == ast.OperParens && c.langHas(dialect.StaticOpParens)) {
		c.error(diag.SemOperMember, n.Span, "member operators can not be static").Emit()
		return false
	}

	if allocOper(n.OperID) {
		if bad := n.Type.Store & ctype.SAnyStorageLike &^ allocStorage; !bad.IsNone() {
			c.error(diag.SemFuncStorage, n.Span, "operator %s can not be %s",
				op.Literal, ctype.Type{Store: bad}.StoreString()).Emit()
			return false
		}
	}

	if !c.checkOperRet(n, op) {
		return false
	}
	if !c.checkOperDefault(n, op) {
		return false
	}
	return c.checkOperParams(n, op, overload)
}

func (c *checker) checkOperRet(n *ast.Node, op *ast.Operator) bool {
	ret := n.Func.Ret
	switch n.OperID {
	case ast.OperArrow:
		if !c.tree.IsPtrToTIDAny(ret, ctype.BAnyClass) {
			c.error(diag.SemOperRet, n.Span,
				"operator -> must return a pointer to struct or class").Emit()
			return false
		}
	case ast.OperDelete, ast.OperDeleteArray:
		if !c.tree.IsBuiltinAny(ret, ctype.BVoid) {
			c.error(diag.SemOperRet, n.Span,
				"operator %s must return void", op.Literal).Emit()
			return false
		}
	case ast.OperNew, ast.OperNewArray:
		if !c.tree.IsPtrToTIDAny(ret, ctype.BVoid) {
			c.error(diag.SemOperRet, n.Span,
				"operator %s must return a pointer to void", op.Literal).Emit()
			return false
		}
	}
	return true
}

func (c *checker) checkOperDefault(n *ast.Node, op *ast.Operator) bool {
	if !n.Type.Intersects(ctype.SDefault) {
		return true
	}
	switch {
	case n.OperID == ast.OperEq:
		// defaulted copy assignment
	case relationalOper(n.OperID):
		if !c.langHas(dialect.DefaultedRelOps) {
			c.error(diag.SemOperDefault, n.Span, "%s",
				c.notSupported("defaulted relational operators")).Emit()
			return false
		}
	default:
		c.error(diag.SemOperDefault, n.Span,
			"only operator = and relational operators can be defaulted").Emit()
		return false
	}
	return true
}

func (c *checker) checkOperParams(n *ast.Node, op *ast.Operator, overload ast.Overload) bool {
	nParams := uint32(len(n.Func.Params))

	// The table range spans both forms of an either-overloadable operator: a
	// member gets the left operand as the implicit object, so it needs one
	// parameter fewer than the non-member spelling. Allocation operators take
	// the same explicit parameters either way, and when member-ness stayed
	// unspecified the whole range is acceptable.
	reqMin, reqMax := op.ParamsMin, op.ParamsMax
	if op.Overload == ast.OverloadEither && !allocOper(n.OperID) {
		switch overload {
		case ast.OverloadMember:
			if reqMax != ast.ParamsUnlimited && reqMax > reqMin {
				reqMax--
			}
		case ast.OverloadNonMember:
			if reqMax == ast.ParamsUnlimited || reqMin < reqMax {
				reqMin++
			}
		}
	}
	switch {
	case nParams < reqMin:
		c.error(diag.SemOperArity, n.Span,
			"operator %s must have at least %d %s",
			op.Literal, reqMin, plural(reqMin, "parameter")).Emit()
		return false
	case reqMax != ast.ParamsUnlimited && nParams > reqMax:
		c.error(diag.SemOperArity, n.Span,
			"operator %s must have at most %d %s",
			op.Literal, reqMax, plural(reqMax, "parameter")).Emit()
		return false
	}

	if overload == ast.OverloadNonMember && !allocOper(n.OperID) {
		found := false
		for _, p := range n.Func.Params {
			raw := c.rawGet(p.Node)
			if raw.Kind.Is(ast.KClassStructUnion|ast.KEnum) ||
				raw.Type.Intersects(ctype.BAnyECSU) ||
				c.tree.IsRefToTIDAny(p.Node, ctype.BAnyECSU) {
				found = true
				break
			}
		}
		if !found {
			c.error(diag.SemOperParams, n.Span,
				"at least 1 parameter of a non-member operator must be "+
					"an enum, class, struct, or union").Emit()
			return false
		}
	}

	if (n.OperID == ast.OperPlus2 || n.OperID == ast.OperMinus2) && nParams > 0 {
		// The dummy parameter distinguishing the postfix form must be int.
		postfix := (overload == ast.OverloadMember && nParams == 1) ||
			(overload == ast.OverloadNonMember && nParams == 2)
		last := n.Func.Params[nParams-1].Node
		if postfix && !c.tree.IsBuiltinAny(last, ctype.BInt) {
			c.error(diag.SemOperParams, n.Span,
				"parameter of postfix operator %s must be int", op.Literal).Emit()
			return false
		}
	}

	if nParams > 0 {
		first := n.Func.Params[0].Node
		switch n.OperID {
		case ast.OperDelete, ast.OperDeleteArray:
			if !c.tree.IsPtrToTIDAny(first, ctype.BVoid|ctype.BAnyClass) {
				c.error(diag.SemOperParams, n.Span,
					"first parameter of operator %s must be a pointer to void, "+
						"class, struct, or union", op.Literal).Emit()
				return false
			}
		case ast.OperNew, ast.OperNewArray:
			if !c.isSizeT(first) {
				c.error(diag.SemOperParams, n.Span,
					"first parameter of operator %s must be std::size_t",
					op.Literal).Emit()
				return false
			}
		}
	}
	return true
}

// isSizeT accepts size_t through a typedef or spelled as its underlying
// unsigned integer type.
func (c *checker) isSizeT(id ast.NodeID) bool {
	n := c.tree.Get(id)
	if n != nil && n.Kind.Is(ast.KTypedef) {
		if def := c.tree.Get(n.TypedefFor); def != nil && def.SName.Local() == "size_t" {
			return true
		}
	}
	raw := c.rawGet(id)
	return raw != nil && raw.Kind.Is(ast.KBuiltin) &&
		raw.Type.Is(ctype.BUnsigned) &&
		raw.Type.Base.Only(ctype.BUnsigned|ctype.BLong|ctype.BLongLong|ctype.BInt)
}
