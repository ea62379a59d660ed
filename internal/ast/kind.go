package ast

// Kind identifies what a node is. A node has exactly one kind, but kinds are
// bits so a bitwise-or of kinds can be used to test membership in a set.
type Kind uint32

const (
	KPlaceholder Kind = 1 << iota // temporary node mid-construction
	KBuiltin
	KName // typeless parameter in K&R C
	KTypedef
	KVariadic
	KArray
	KBlock // Apple closure-pointer extension
	KFunction
	KPointer
	KOperator
	KPointerToMember
	KReference
	KRvalueReference
	KConstructor
	KDestructor
	KUserDefConversion
	KUserDefLiteral
	KLambda
	KCapture
	KEnum
	KClassStructUnion
	KConcept
	KCast
	KStructuredBinding

	KNone Kind = 0
)

// Kind sets used by the construction engine and the checker.
const (
	KAnyPointer      = KPointer | KPointerToMember
	KAnyReference    = KReference | KRvalueReference
	KAnyFunctionLike = KBlock | KConstructor | KDestructor | KFunction |
		KLambda | KOperator | KUserDefConversion | KUserDefLiteral
	// Kinds owning a single child through which construction recurses.
	KAnyParent = KArray | KAnyPointer | KAnyReference | KAnyFunctionLike |
		KCast | KEnum
	// Kinds that can be the leaf of a declaration's type.
	KAnyTypeSpecifier = KBuiltin | KTypedef | KEnum | KClassStructUnion |
		KName
	// Kinds denoting objects (things with storage).
	KAnyObject = KArray | KBuiltin | KClassStructUnion | KEnum |
		KPointer | KPointerToMember | KReference | KRvalueReference |
		KTypedef
)

// Is reports whether k is one of the kinds in set.
func (k Kind) Is(set Kind) bool {
	return k&set != KNone
}

// IsParent reports whether nodes of this kind own a child node.
func (k Kind) IsParent() bool {
	return k.Is(KAnyParent)
}

func (k Kind) String() string {
	switch k {
	case KPlaceholder:
		return "placeholder"
	case KBuiltin:
		return "built-in type"
	case KName:
		return "name"
	case KTypedef:
		return "typedef"
	case KVariadic:
		return "variadic"
	case KArray:
		return "array"
	case KBlock:
		return "block"
	case KFunction:
		return "function"
	case KPointer:
		return "pointer"
	case KOperator:
		return "operator"
	case KPointerToMember:
		return "pointer to member"
	case KReference:
		return "reference"
	case KRvalueReference:
		return "rvalue reference"
	case KConstructor:
		return "constructor"
	case KDestructor:
		return "destructor"
	case KUserDefConversion:
		return "user-defined conversion"
	case KUserDefLiteral:
		return "user-defined literal"
	case KLambda:
		return "lambda"
	case KCapture:
		return "capture"
	case KEnum:
		return "enumeration"
	case KClassStructUnion:
		return "class, struct, or union"
	case KConcept:
		return "concept"
	case KCast:
		return "cast"
	case KStructuredBinding:
		return "structured binding"
	}
	return "none"
}
