package dialect

// Named feature sets: for every dialect-sensitive construct, the set of
// dialects in which it is legal. The checker and the type tables route all
// dialect sensitivity through these values so supporting a new standard is a
// data change, not a logic change.
var (
	Void       = Min(C89)
	Prototypes = Min(C89)

	// K&R-style untyped parameters survived as an obsolescent feature
	// until C23 removed them.
	KnRFunctions = CMax(C17)
	ImplicitInt  = CMax(C95)

	VLAs            = CMin(C99)
	QualifiedArrays = CMin(C99)

	BoolType    = Min(C99)
	WideChar    = Min(C95)
	Char16And32 = CMin(C11) | CPPMin(CPP11)
	Char8       = CMin(C23) | CPPMin(CPP20)
	LongLong    = CMin(C99) | CPPMin(CPP11)
	LongFloat   = CMax(C89)
	LongDouble  = Min(C89)
	Complex     = CMin(C99)
	Imaginary   = CMin(C99)
	BitInt      = CMin(C23)
	Signed      = Min(C89)
	UnsignedMix = Min(C89) // unsigned char/short/long combinations

	Enums         = Min(C89)
	EnumClass     = CPPMin(CPP11)
	EnumFixedType = CMin(C23) | CPPMin(CPP11)

	AutoType    = CMin(C23) | CPPMin(CPP11)
	AutoStorage = CMax(C17) | CPPMax(CPP03)
	AutoReturn  = CPPMin(CPP14)

	Constexpr   = CMin(C23) | CPPMin(CPP11)
	Consteval   = CPPMin(CPP20)
	Constinit   = CPPMin(CPP20)
	Noexcept    = CPPMin(CPP11)
	Throw       = CPP
	ThreadLocal = CMin(C11) | CPPMin(CPP11)
	Atomic      = CMin(C11)
	Restrict    = CMin(C99)
	Inline      = CMin(C99) | CPP

	// register is legal in all C standards and in C++ until C++17
	// removed it; it is deprecated well before that (see the warning
	// pass).
	Register               = AllC | CPPMax(CPP14)
	RegisterDeprecated     = CMin(C23) | CPPMin(CPP11)
	VolatileFuncDeprecated = CPPMin(CPP20)
	ThrowDeprecated        = CPPMin(CPP11)

	References          = CPP
	PointersToMember    = CPP
	RvalueReferences    = CPPMin(CPP11)
	RefQualifiers       = CPPMin(CPP11)
	DefaultDelete       = CPPMin(CPP11)
	FinalOverride       = CPPMin(CPP11)
	Lambdas             = CPPMin(CPP11)
	StarThisCapture     = CPPMin(CPP17)
	StructuredBindings  = CPPMin(CPP17)
	InlineVariables     = CPPMin(CPP17)
	UserDefinedLiterals = CPPMin(CPP11)
	ExplicitObjParam    = CPPMin(CPP23)
	DefaultedRelOps     = CPPMin(CPP20)
	Concepts            = CPPMin(CPP20)
	CoAwait             = CPPMin(CPP20)
	Spaceship           = CPPMin(CPP20)
	AutoParameters      = CPPMin(CPP20)
	StaticOpParens      = CPPMin(CPP23)
	ConstexprVoidReturn = CMin(C23) | CPPMin(CPP14)
	VariadicOnlyParams  = CMin(C23) | CPP
	AutoMultiDecl       = CPPMin(CPP11)

	Nodiscard        = CMin(C23) | CPPMin(CPP17)
	Noreturn         = CMin(C11) | CPPMin(CPP11)
	AttrDeprecated   = CMin(C23) | CPPMin(CPP14)
	AttrMaybeUnused  = CMin(C23) | CPPMin(CPP17)
	AttrCarriesDep   = CPPMin(CPP11)
	AttrNoUniqueAddr = CPPMin(CPP20)
	AttrReproducible = CMin(C23)
	AttrUnsequenced  = CMin(C23)
	Alignment        = CMin(C11) | CPPMin(CPP11)

	// C has tentative definitions; C++ does not.
	TentativeDefs = AllC

	MSCExtensions = All
)
