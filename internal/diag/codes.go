package diag

import (
	"fmt"
)

type Code uint16

const (
	// Unknown / unclassified.
	UnknownCode Code = 0

	// Lexical (1000-series).
	LexInfo        Code = 1000
	LexUnknownChar Code = 1001
	LexBadNumber   Code = 1002

	// Syntax (2000-series).
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynExpectIdentifier Code = 2002
	SynUnclosedParen    Code = 2003
	SynExpectRBracket   Code = 2004
	SynExpectType       Code = 2005
	SynBadArraySize     Code = 2006

	// Structural semantic errors (3000-series).
	SemInfo                  Code = 3000
	SemArrayOfVoid           Code = 3001
	SemArrayOfFunction       Code = 3002
	SemArrayOfReference      Code = 3003
	SemInvalidArrayElem      Code = 3004
	SemVLANotSupported       Code = 3005
	SemQualArrayNotSupported Code = 3006
	SemVariableOfVoid        Code = 3007
	SemNoImplicitInt         Code = 3008
	SemInlineVariable        Code = 3009
	SemBitFieldWidth         Code = 3010
	SemBitFieldType          Code = 3011
	SemPointerToReference    Code = 3012
	SemPointerToRegister     Code = 3013
	SemReferenceToVoid       Code = 3014
	SemReferenceQualified    Code = 3015
	SemReferenceNotSupported Code = 3016
	SemReturnArray           Code = 3017
	SemReturnFunction        Code = 3018
	SemAutoReturn            Code = 3019
	SemVoidParam             Code = 3020
	SemScopedParamName       Code = 3021
	SemKnRFuncNotSupported   Code = 3022
	SemVariadicNotLast       Code = 3023
	SemParamRedefinition     Code = 3024
	SemMainSignature         Code = 3025
	SemCtorStorage           Code = 3026
	SemDtorStorage           Code = 3027
	SemCtorDtorName          Code = 3028
	SemMemberFunc            Code = 3029
	SemNonMemberFunc         Code = 3030
	SemArraySize             Code = 3031
	SemOperArity             Code = 3032
	SemOperMember            Code = 3033
	SemOperParams            Code = 3034
	SemOperRet               Code = 3035
	SemOperNotOverloadable   Code = 3036
	SemOperDefault           Code = 3037
	SemLambdaCapture         Code = 3038
	SemAlignment             Code = 3039
	SemEnumFixedType         Code = 3040
	SemBindingName           Code = 3041
	SemCastIllegal           Code = 3042
	SemRedefinition          Code = 3043
	SemTentativeDef          Code = 3044
	SemFuncStorage           Code = 3045
	SemUDefLitParams         Code = 3046
	SemUDefConv              Code = 3047
	SemBitIntWidth           Code = 3048
	SemKindNotSupported      Code = 3049
	SemThrowNotSupported     Code = 3050
	SemConstevalNonFunc      Code = 3051

	// Type-legality errors (4000-series).
	TypInfo           Code = 4000
	TypIllegalType    Code = 4001
	TypConstexprVoid  Code = 4002
	TypAttrNonObject  Code = 4003
	TypRestrict       Code = 4004
	TypParamPack      Code = 4005
	TypIllegalStorage Code = 4006

	// Warnings (5000-series).
	WrnInfo               Code = 5000
	WrnRegisterDeprecated Code = 5001
	WrnVolatileFunc       Code = 5002
	WrnNodiscardVoid      Code = 5003
	WrnThrowDeprecated    Code = 5004
	WrnUDLNoUnderscore    Code = 5005
	WrnReservedIdentifier Code = 5006
	WrnImplicitInt        Code = 5007

	// I/O and configuration (6000-series).
	IoInfo       Code = 6000
	IoReadFailed Code = 6001
	IoConfig     Code = 6002
	IoSnapshot   Code = 6003
)

var codeDescription = map[Code]string{
	UnknownCode:              "Unknown error",
	LexInfo:                  "Lexical information",
	LexUnknownChar:           "Unknown character",
	LexBadNumber:             "Bad number",
	SynInfo:                  "Syntax information",
	SynUnexpectedToken:       "Unexpected token",
	SynExpectIdentifier:      "Expect identifier",
	SynUnclosedParen:         "Unclosed parenthesis",
	SynExpectRBracket:        "Expect closing bracket",
	SynExpectType:            "Expect type",
	SynBadArraySize:          "Bad array size",
	SemInfo:                  "Semantic information",
	SemArrayOfVoid:           "Array of void",
	SemArrayOfFunction:       "Array of function",
	SemArrayOfReference:      "Array of reference",
	SemInvalidArrayElem:      "Invalid array element",
	SemVLANotSupported:       "Variable length array not supported",
	SemQualArrayNotSupported: "Qualified array parameter not supported",
	SemVariableOfVoid:        "Variable of void",
	SemNoImplicitInt:         "Implicit int not supported",
	SemInlineVariable:        "Inline variable not supported",
	SemBitFieldWidth:         "Invalid bit-field width",
	SemBitFieldType:          "Invalid bit-field type",
	SemPointerToReference:    "Pointer to reference",
	SemPointerToRegister:     "Pointer to register",
	SemReferenceToVoid:       "Reference to void",
	SemReferenceQualified:    "Qualified reference",
	SemReferenceNotSupported: "Reference not supported",
	SemReturnArray:           "Function returning array",
	SemReturnFunction:        "Function returning function",
	SemAutoReturn:            "Auto return type not supported",
	SemVoidParam:             "Invalid void parameter",
	SemScopedParamName:       "Scoped parameter name",
	SemKnRFuncNotSupported:   "Untyped parameters not supported",
	SemVariadicNotLast:       "Variadic must be last",
	SemParamRedefinition:     "Parameter redefinition",
	SemMainSignature:         "Invalid main signature",
	SemCtorStorage:           "Invalid constructor storage class",
	SemDtorStorage:           "Invalid destructor storage class",
	SemCtorDtorName:          "Constructor/destructor name mismatch",
	SemMemberFunc:            "Invalid member function",
	SemNonMemberFunc:         "Invalid non-member function",
	SemArraySize:             "Invalid array size",
	SemOperArity:             "Invalid operator parameter count",
	SemOperMember:            "Invalid operator member placement",
	SemOperParams:            "Invalid operator parameters",
	SemOperRet:               "Invalid operator return type",
	SemOperNotOverloadable:   "Operator not overloadable",
	SemOperDefault:           "Invalid defaulted operator",
	SemLambdaCapture:         "Invalid lambda capture",
	SemAlignment:             "Invalid alignment",
	SemEnumFixedType:         "Invalid enum underlying type",
	SemBindingName:           "Invalid structured binding name",
	SemCastIllegal:           "Illegal cast",
	SemRedefinition:          "Redefinition",
	SemTentativeDef:          "Tentative definition not supported",
	SemFuncStorage:           "Invalid function storage class",
	SemUDefLitParams:         "Invalid user-defined literal parameters",
	SemUDefConv:              "Invalid user-defined conversion",
	SemBitIntWidth:           "Invalid _BitInt width",
	SemKindNotSupported:      "Declaration kind not supported",
	SemThrowNotSupported:     "Throw specification not supported",
	SemConstevalNonFunc:      "Consteval on non-function",
	TypInfo:                  "Type information",
	TypIllegalType:           "Illegal type combination",
	TypConstexprVoid:         "Constexpr function returning void",
	TypAttrNonObject:         "Attribute on non-object",
	TypRestrict:              "Invalid restrict context",
	TypParamPack:             "Invalid parameter pack",
	TypIllegalStorage:        "Illegal storage class combination",
	WrnInfo:                  "Warning information",
	WrnRegisterDeprecated:    "Register is deprecated",
	WrnVolatileFunc:          "Volatile function type is deprecated",
	WrnNodiscardVoid:         "Nodiscard function returning void",
	WrnThrowDeprecated:       "Throw specification is deprecated",
	WrnUDLNoUnderscore:       "User-defined literal name is reserved",
	WrnReservedIdentifier:    "Reserved identifier",
	WrnImplicitInt:           "Implicit int",
	IoInfo:                   "I/O information",
	IoReadFailed:             "Failed to read input",
	IoConfig:                 "Invalid configuration",
	IoSnapshot:               "Invalid typedef snapshot",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("TYP%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("WRN%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
