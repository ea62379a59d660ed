package token

import (
	"declc/internal/ctype"
	"declc/internal/dialect"
)

// KeywordInfo describes one declaration keyword: the type bits its presence
// contributes and the dialects in which the spelling is a keyword at all.
// Outside Langs the spelling is an ordinary identifier; whether the bits are
// legal where they end up is the checker's question, not the lexer's.
type KeywordInfo struct {
	TID   ctype.TID
	Langs dialect.ID
}

var keywords = map[string]KeywordInfo{
	// base types
	"void":       {ctype.BVoid, dialect.All},
	"bool":       {ctype.BBool, dialect.CMin(dialect.C23) | dialect.CPP},
	"_Bool":      {ctype.BBool, dialect.CMin(dialect.C99)},
	"char":       {ctype.BChar, dialect.All},
	"char8_t":    {ctype.BChar8, dialect.Char8},
	"char16_t":   {ctype.BChar16, dialect.Char16And32},
	"char32_t":   {ctype.BChar32, dialect.Char16And32},
	"wchar_t":    {ctype.BWChar, dialect.WideChar},
	"short":      {ctype.BShort, dialect.All},
	"int":        {ctype.BInt, dialect.All},
	"long":       {ctype.BLong, dialect.All},
	"signed":     {ctype.BSigned, dialect.Signed},
	"unsigned":   {ctype.BUnsigned, dialect.All},
	"float":      {ctype.BFloat, dialect.All},
	"double":     {ctype.BDouble, dialect.All},
	"_Complex":   {ctype.BComplex, dialect.Complex},
	"_Imaginary": {ctype.BImaginary, dialect.Imaginary},
	"_BitInt":    {ctype.BBitInt, dialect.BitInt},
	"enum":       {ctype.BEnum, dialect.Enums},
	"struct":     {ctype.BStruct, dialect.All},
	"union":      {ctype.BUnion, dialect.All},
	"class":      {ctype.BClass, dialect.CPP},

	// storage classes
	"typedef":       {ctype.STypedef, dialect.All},
	"extern":        {ctype.SExtern, dialect.All},
	"static":        {ctype.SStatic, dialect.All},
	"register":      {ctype.SRegister, dialect.Register},
	"_Thread_local": {ctype.SThreadLocal, dialect.CMin(dialect.C11)},
	"thread_local":  {ctype.SThreadLocal, dialect.CMin(dialect.C23) | dialect.CPPMin(dialect.CPP11)},
	"inline":        {ctype.SInline, dialect.Inline},
	"constexpr":     {ctype.SConstexpr, dialect.Constexpr},
	"consteval":     {ctype.SConsteval, dialect.Consteval},
	"constinit":     {ctype.SConstinit, dialect.Constinit},
	"virtual":       {ctype.SVirtual, dialect.CPP},
	"explicit":      {ctype.SExplicit, dialect.CPP},
	"friend":        {ctype.SFriend, dialect.CPP},
	"mutable":       {ctype.SMutable, dialect.CPP},
	"noexcept":      {ctype.SNoexcept, dialect.Noexcept},

	// qualifiers
	"const":      {ctype.SConst, dialect.Min(dialect.C89)},
	"volatile":   {ctype.SVolatile, dialect.Min(dialect.C89)},
	"restrict":   {ctype.SRestrict, dialect.CMin(dialect.C99)},
	"__restrict": {ctype.SRestrict, dialect.All},
	"_Atomic":    {ctype.SAtomic, dialect.Atomic},

	// keyword-spelled attributes
	"_Noreturn": {ctype.ANoreturn, dialect.CMin(dialect.C11)},

	// "auto" is a storage class in old C and old C++ and a type in C23 and
	// C++11; the parser resolves it against the dialect.
	"auto": {ctype.SAuto, dialect.All},
}

// Lookup resolves a spelling to its keyword entry for the given dialect.
func Lookup(ident string, lang dialect.ID) (KeywordInfo, bool) {
	kw, ok := keywords[ident]
	if !ok || !kw.Langs.Intersects(lang) {
		return KeywordInfo{}, false
	}
	return kw, true
}

// Attrs maps the names usable inside [[...]] to attribute bits, with the
// dialects in which each is recognized.
var Attrs = map[string]KeywordInfo{
	"nodiscard":          {ctype.ANodiscard, dialect.Nodiscard},
	"noreturn":           {ctype.ANoreturn, dialect.Noreturn},
	"deprecated":         {ctype.ADeprecated, dialect.AttrDeprecated},
	"maybe_unused":       {ctype.AMaybeUnused, dialect.AttrMaybeUnused},
	"carries_dependency": {ctype.ACarriesDependency, dialect.AttrCarriesDep},
	"no_unique_address":  {ctype.ANoUniqueAddress, dialect.AttrNoUniqueAddr},
	"reproducible":       {ctype.AReproducible, dialect.AttrReproducible},
	"unsequenced":        {ctype.AUnsequenced, dialect.AttrUnsequenced},
}
