// Package english renders declaration trees as prose, the explain half of
// the translator: "declare x as pointer to array 3 of int". The rendering
// follows the owning-child chain from the root toward the leaf type, one
// phrase per node.
package english

import (
	"fmt"
	"strings"

	"declc/internal/ast"
	"declc/internal/ctype"
	"declc/internal/dialect"
)

// Render returns the prose form of one declaration or cast tree.
func Render(tr *ast.Tree, root ast.NodeID, lang dialect.ID) string {
	r := renderer{tr: tr, lang: lang}
	n := tr.Get(root)
	switch {
	case n.Kind.Is(ast.KCast):
		r.cast(root)
	case n.Type.Intersects(ctype.STypedef):
		r.typedef_(root)
	default:
		r.declare(root)
	}
	return r.sb.String()
}

type renderer struct {
	tr   *ast.Tree
	lang dialect.ID
	sb   strings.Builder
}

func (r *renderer) declare(root ast.NodeID) {
	n := r.tr.Get(root)
	r.sb.WriteString("declare ")
	if !n.Kind.Is(ast.KUserDefConversion) {
		r.declaredName(root)
		r.sb.WriteString(" as ")
	}
	r.chain(root)
	r.alignment(n)
}

func (r *renderer) typedef_(root ast.NodeID) {
	r.sb.WriteString("define ")
	r.declaredName(root)
	r.sb.WriteString(" as ")
	r.chain(root)
}

func (r *renderer) cast(root ast.NodeID) {
	n := r.tr.Get(root)
	switch n.CastKind {
	case ast.CastConst:
		r.sb.WriteString("const ")
	case ast.CastDynamic:
		r.sb.WriteString("dynamic ")
	case ast.CastReinterpret:
		r.sb.WriteString("reinterpret ")
	case ast.CastStatic:
		r.sb.WriteString("static ")
	}
	r.sb.WriteString("cast")
	if !n.SName.Empty() {
		r.sb.WriteByte(' ')
		r.sb.WriteString(n.SName.String())
	}
	r.sb.WriteString(" into ")
	r.chain(r.tr.ChildID(root))
}

// declaredName writes the declared name, with enclosing scopes rendered
// innermost-first: S::T::x becomes "x of scope T of scope S".
func (r *renderer) declaredName(root ast.NodeID) {
	n := r.tr.Get(root)
	if n.Kind.Is(ast.KOperator) {
		r.sb.WriteString(ast.OperLiteral(n.OperID))
		return
	}
	named := r.tr.FindName(root)
	if named == ast.NoNode {
		return
	}
	sn := &r.tr.Get(named).SName
	r.sb.WriteString(sn.Local())
	for i := sn.Count() - 2; i >= 0; i-- {
		scope := sn.ScopeOf(i)
		kind := scope.Kind.String()
		if scope.Kind == ast.ScopeNone {
			kind = "scope"
		}
		fmt.Fprintf(&r.sb, " of %s %s", kind, scope.Name)
	}
}

// chain writes the prose of the subtree at id, recursing through the single
// owning-child chain.
func (r *renderer) chain(id ast.NodeID) {
	for id != ast.NoNode {
		n := r.tr.Get(id)
		switch {
		case n.Kind.Is(ast.KArray):
			r.notBase(n.Type)
			if n.Array.SizeKind == ast.ArraySizeStar {
				r.sb.WriteString("variable length ")
			}
			r.sb.WriteString("array ")
			if n.Type.Intersects(ctype.SNonEmptyArray) {
				r.sb.WriteString("non-empty ")
			}
			switch n.Array.SizeKind {
			case ast.ArraySizeInt:
				fmt.Fprintf(&r.sb, "%d ", n.Array.Size)
			case ast.ArraySizeName:
				r.sb.WriteString(n.Array.SizeName)
				r.sb.WriteByte(' ')
			}
			r.sb.WriteString("of ")

		case n.Kind.Is(ast.KPointer | ast.KAnyReference):
			r.notBase(n.Type)
			r.sb.WriteString(n.Kind.String())
			r.sb.WriteString(" to ")

		case n.Kind.Is(ast.KPointerToMember):
			r.notBase(n.Type)
			r.sb.WriteString("pointer to member of ")
			r.baseWord(n.Type)
			r.sb.WriteString(n.PtrMbr.Class.String())
			r.sb.WriteByte(' ')

		case n.Kind.Is(ast.KAnyFunctionLike):
			r.functionLike(id, n)

		case n.Kind.Is(ast.KBuiltin):
			if n.Type.Is(ctype.BBitInt) {
				r.notBase(n.Type)
				sign := ""
				if n.Type.Is(ctype.BUnsigned) {
					sign = "unsigned "
				}
				fmt.Fprintf(&r.sb, "%s_BitInt(%d)", sign, n.BitWidth)
			} else {
				r.typeName(n.Type)
				r.bitWidth(n)
			}

		case n.Kind.Is(ast.KClassStructUnion):
			r.typeName(n.Type)
			r.sb.WriteByte(' ')
			r.sb.WriteString(n.Tag)

		case n.Kind.Is(ast.KEnum):
			r.typeName(n.Type)
			r.sb.WriteByte(' ')
			r.sb.WriteString(n.Tag)
			if n.EnumOf != ast.NoNode {
				r.sb.WriteString(" of type ")
			}

		case n.Kind.Is(ast.KTypedef):
			extra := n.Type.AndNot(ctype.New(ctype.BTypedef, ctype.STypedef))
			if !extra.IsNone() {
				r.sb.WriteString(extra.String())
				r.sb.WriteByte(' ')
			}
			def := r.tr.Get(n.TypedefFor)
			if def != nil {
				r.sb.WriteString(def.SName.String())
			}
			r.bitWidth(n)

		case n.Kind.Is(ast.KName):
			// A bare K&R parameter name is implicitly int.
			r.sb.WriteString("int")

		case n.Kind.Is(ast.KVariadic):
			r.sb.WriteString("variadic")

		case n.Kind.Is(ast.KConcept):
			r.sb.WriteString(n.ConceptName)
			r.sb.WriteString(" concept")

		case n.Kind.Is(ast.KStructuredBinding):
			r.notBase(n.Type)
			r.sb.WriteString("structured binding")
		}
		id = r.tr.ChildID(id)
	}
}

func (r *renderer) functionLike(id ast.NodeID, n *ast.Node) {
	r.notBase(n.Type)
	switch {
	case n.Kind.Is(ast.KOperator):
		switch r.tr.OperOverload(id, r.lang) {
		case ast.OverloadMember:
			r.sb.WriteString("member ")
		case ast.OverloadNonMember:
			r.sb.WriteString("non-member ")
		}
	case n.Kind.Is(ast.KFunction) && n.Type.Intersects(memberFuncTIDs):
		r.sb.WriteString("member ")
	}
	r.sb.WriteString(n.Kind.String())
	if n.Kind.Is(ast.KOperator) {
		r.sb.WriteByte(' ')
		r.sb.WriteString(ast.OperLiteral(n.OperID))
	}
	if len(n.Func.Params) > 0 {
		r.sb.WriteString(" (")
		for i, param := range n.Func.Params {
			if i > 0 {
				r.sb.WriteString(", ")
			}
			if named := r.tr.FindName(param.Node); named != ast.NoNode {
				r.sb.WriteString(r.tr.Name(named))
				r.sb.WriteString(" as ")
			}
			r.chain(param.Node)
		}
		r.sb.WriteByte(')')
	}
	if n.Func.Ret != ast.NoNode {
		r.sb.WriteString(" returning ")
	}
}

// memberFuncTIDs are the qualifier bits that mark a plain function as a
// member function even without a scoped name.
const memberFuncTIDs = ctype.SCV | ctype.SRefQualifier | ctype.SVirtual |
	ctype.SOverride | ctype.SFinal | ctype.SDelete | ctype.SDefault

func (r *renderer) bitWidth(n *ast.Node) {
	if n.BitWidth > 0 {
		fmt.Fprintf(&r.sb, " width %d bits", n.BitWidth)
	}
}

func (r *renderer) alignment(n *ast.Node) {
	switch {
	case n.Align.Bytes != 0:
		fmt.Fprintf(&r.sb, " aligned as %d bytes", n.Align.Bytes)
	case n.Align.TypeName != "":
		fmt.Fprintf(&r.sb, " aligned as %s", n.Align.TypeName)
	}
}

// notBase writes the storage, qualifier, and attribute words of a type,
// followed by a space when there are any.
func (r *renderer) notBase(t ctype.Type) {
	only := ctype.Type{Base: ctype.BNone, Store: t.Store, Attr: t.Attr}
	only = only.AndNot(ctype.New(ctype.STypedef, ctype.SNonEmptyArray))
	if s := only.String(); s != "" {
		r.sb.WriteString(s)
		r.sb.WriteByte(' ')
	}
}

// typeName writes the full keyword rendering of a leaf type.
func (r *renderer) typeName(t ctype.Type) {
	r.sb.WriteString(t.AndNot(ctype.New(ctype.STypedef)).String())
}

// baseWord writes the class/struct/union keyword of a pointer-to-member's
// class type, followed by a space.
func (r *renderer) baseWord(t ctype.Type) {
	for _, tid := range []ctype.TID{ctype.BClass, ctype.BStruct, ctype.BUnion} {
		if t.Intersects(tid) {
			r.sb.WriteString(ctype.Name(tid))
			r.sb.WriteByte(' ')
			return
		}
	}
	r.sb.WriteString("class ")
}
