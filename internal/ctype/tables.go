package ctype

import (
	"declc/internal/dialect"
)

// typeInfo maps one bit to the dialects it is legal in at all, plus its
// keyword literal used in diagnostics.
type typeInfo struct {
	tid     TID
	langs   dialect.ID
	literal string
}

// The info arrays and the combination matrices below must have the same size
// and order.

var baseInfo = []typeInfo{
	{BVoid, dialect.Void, "void"},
	{BAuto, dialect.AutoType, "auto"},
	{BBitInt, dialect.BitInt, "_BitInt"},
	{BBool, dialect.BoolType, "bool"},
	{BChar, dialect.All, "char"},
	{BChar8, dialect.Char8, "char8_t"},
	{BChar16, dialect.Char16And32, "char16_t"},
	{BChar32, dialect.Char16And32, "char32_t"},
	{BWChar, dialect.WideChar, "wchar_t"},
	{BShort, dialect.All, "short"},
	{BInt, dialect.All, "int"},
	{BLong, dialect.All, "long"},
	// BLongLong is always combined with BLong, so its literal is a single
	// "long"; rendering both bits prints "long long".
	{BLongLong, dialect.LongLong, "long"},
	{BSigned, dialect.Signed, "signed"},
	{BUnsigned, dialect.All, "unsigned"},
	{BFloat, dialect.All, "float"},
	{BDouble, dialect.All, "double"},
	{BComplex, dialect.Complex, "_Complex"},
	{BImaginary, dialect.Imaginary, "_Imaginary"},
	{BEnum, dialect.Enums, "enum"},
	{BStruct, dialect.All, "struct"},
	{BUnion, dialect.All, "union"},
	{BClass, dialect.CPP, "class"},
	{BTypedef, dialect.All, ""},
}

var qualInfo = []typeInfo{
	{SAtomic, dialect.Atomic, "_Atomic"},
	{SConst, dialect.All, "const"},
	{SNonEmptyArray, dialect.QualifiedArrays, "static"},
	{SReference, dialect.RefQualifiers, "&"},
	{SRvalueReference, dialect.RefQualifiers, "&&"},
	{SRestrict, dialect.All, "restrict"},
	{SVolatile, dialect.All, "volatile"},
}

var storeInfo = []typeInfo{
	{SAuto, dialect.AutoStorage, "auto"},
	{SBlock, dialect.All, "__block"},
	{SExtern, dialect.All, "extern"},
	{SExternC, dialect.CPP, `extern "C"`},
	{SRegister, dialect.Register, "register"},
	{SStatic, dialect.All, "static"},
	{SThreadLocal, dialect.ThreadLocal, "thread_local"},
	{STypedef, dialect.All, "typedef"},
	{SConsteval, dialect.Consteval, "consteval"},
	{SConstexpr, dialect.Constexpr, "constexpr"},
	{SConstinit, dialect.Constinit, "constinit"},
	{SDefault, dialect.DefaultDelete, "default"},
	{SDelete, dialect.DefaultDelete, "delete"},
	{SExplicit, dialect.CPP, "explicit"},
	{SFinal, dialect.FinalOverride, "final"},
	{SFriend, dialect.CPP, "friend"},
	{SInline, dialect.Inline, "inline"},
	{SMutable, dialect.CPP, "mutable"},
	{SNoexcept, dialect.Noexcept, "noexcept"},
	{SOverride, dialect.FinalOverride, "override"},
	{SThis, dialect.ExplicitObjParam, "this"},
	{SThrow, dialect.Throw, "throw"},
	{SVirtual, dialect.CPP, "virtual"},
	{SPureVirtual, dialect.CPP, "pure"},
}

// All combinations of attributes are legal, so attributes carry per-bit
// legality only.
var attrInfo = []typeInfo{
	{ACarriesDependency, dialect.AttrCarriesDep, "carries_dependency"},
	{ADeprecated, dialect.AttrDeprecated, "deprecated"},
	{AMaybeUnused, dialect.AttrMaybeUnused, "maybe_unused"},
	{ANodiscard, dialect.Nodiscard, "nodiscard"},
	{ANoreturn, dialect.Noreturn, "noreturn"},
	{ANoUniqueAddress, dialect.AttrNoUniqueAddr, "no_unique_address"},
	{AReproducible, dialect.AttrReproducible, "reproducible"},
	{AUnsequenced, dialect.AttrUnsequenced, "unsequenced"},
	{AMSCCdecl, dialect.MSCExtensions, "__cdecl"},
	{AMSCClrcall, dialect.MSCExtensions, "__clrcall"},
	{AMSCFastcall, dialect.MSCExtensions, "__fastcall"},
	{AMSCStdcall, dialect.MSCExtensions, "__stdcall"},
	{AMSCThiscall, dialect.MSCExtensions, "__thiscall"},
	{AMSCVectorcall, dialect.MSCExtensions, "__vectorcall"},
}

// Legal combinations of base types, lower triangle only: row i, column j<=i
// gives the dialects in which bit i and bit j may appear together. The
// diagonal restates per-bit legality so a single illegal bit is caught by
// the same walk.
var okBaseLangs = func() [][]dialect.ID {
	ok := dialect.All
	no := dialect.None
	sig := dialect.Signed
	uns := dialect.UnsignedMix
	llo := dialect.LongLong
	com := dialect.Complex
	ima := dialect.Imaginary
	enc := dialect.EnumClass

	//       voi aut bit boo cha ch8 c16 c32 wch sho int lon llo sig uns flo dou com ima enu str uni cla typ
	return [][]dialect.ID{
		{dialect.Void},
		{no, dialect.AutoType},
		{no, no, dialect.BitInt},
		{no, no, no, dialect.BoolType},
		{no, no, no, no, ok},
		{no, no, no, no, no, dialect.Char8},
		{no, no, no, no, no, no, dialect.Char16And32},
		{no, no, no, no, no, no, no, dialect.Char16And32},
		{no, no, no, no, no, no, no, no, dialect.WideChar},
		{no, no, no, no, no, no, no, no, no, ok},
		{no, no, no, no, no, no, no, no, no, ok, ok},
		{no, no, no, no, no, no, no, no, no, no, ok, ok},
		{no, no, no, no, no, no, no, no, no, no, llo, ok, llo},
		{no, no, dialect.BitInt, no, sig, no, no, no, no, sig, sig, sig, sig, sig},
		{no, no, dialect.BitInt, no, uns, no, no, no, no, uns, ok, uns, llo, no, ok},
		{no, no, no, no, no, no, no, no, no, no, no, dialect.LongFloat, no, no, no, ok},
		{no, no, no, no, no, no, no, no, no, no, no, dialect.LongDouble, no, no, no, no, ok},
		{no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, com, com, com},
		{no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, ima, ima, no, ima},
		{no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, dialect.Enums},
		{no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, enc, ok},
		{no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, ok},
		{no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, enc, no, no, dialect.CPP},
		{no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, ok},
	}
}()

// Legal combinations of qualifiers, lower triangle only; same order as
// qualInfo.
var okQualLangs = func() [][]dialect.ID {
	ok := dialect.All
	no := dialect.None
	ato := dialect.Atomic
	qar := dialect.QualifiedArrays
	cpp := dialect.CPP
	rvr := dialect.RefQualifiers

	//       ato con nea ref rva res vol
	return [][]dialect.ID{
		{ato},
		{ato, ok},
		{no, qar, qar},
		{no, cpp, no, cpp},
		{no, rvr, no, no, rvr},
		{no, ok, qar, cpp, rvr, ok},
		{ato, ok, qar, cpp, rvr, ok, ok},
	}
}()

// Legal combinations of storage classes, lower triangle only; same order as
// storeInfo.
var okStoreLangs = func() [][]dialect.ID {
	ok := dialect.All
	no := dialect.None
	aus := dialect.AutoStorage
	cev := dialect.Consteval
	cex := dialect.Constexpr
	cin := dialect.Constinit
	ddf := dialect.DefaultDelete
	cpp := dialect.CPP
	fin := dialect.FinalOverride
	inl := dialect.Inline
	noe := dialect.Noexcept
	ovr := dialect.FinalOverride
	reg := dialect.Register
	thi := dialect.ExplicitObjParam
	thr := dialect.Throw
	tls := dialect.ThreadLocal
	vcx := dialect.CPPMin(dialect.CPP20)

	//       auto     blk ext  extC reg      sta thr      typ  cev      cex      cin  def  del  exp  fin      fri  inl  mut  noe      ovr  thi  thr  vir  pur
	return [][]dialect.ID{
		{ok},
		{ok, ok},
		{no, ok, ok},
		{no, ok, ok, cpp},
		{no, ok, no, no, ok},
		{no, no, no, no, no, ok},
		{no, ok, ok, tls, no, ok, ok},
		{no, ok, no, cpp, no, no, no, ok},
		{no, cev, cev, cev, no, cev, no, no, cev},
		{aus & cex, cex, no, no, cex & reg, cex, no, no, no, cex},
		{no, no, cin, cin, no, cin, cin & tls, no, no, no, cin},
		{no, no, no, no, no, no, no, no, cev & ddf, cex & ddf, no, ddf},
		{no, no, no, no, no, no, no, no, cev & ddf, cex & ddf, no, no, ddf},
		{no, no, no, no, no, no, no, no, no, cex, no, ddf, ddf, cpp},
		{no, no, no, no, no, no, no, no, no, cex & fin, no, no, no, no, fin},
		{no, no, no, no, no, no, no, no, cev, cex, no, ddf, no, no, no, cpp},
		{no, no, ok, cpp, no, ok, no, no, cev, cex, cin, ddf, ddf, cpp, fin, cpp, inl},
		{no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, cpp},
		{no, no, noe, noe, no, noe, no, noe, cev & noe, cex & noe, no, noe, noe, noe, noe, noe, noe, noe, noe},
		{no, no, no, no, no, no, no, no, no, cex & ovr, no, no, no, no, fin & ovr, no, ovr, no, noe & ovr, ovr},
		{no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, thi},
		{no, no, cpp, cpp, no, cpp, no, cpp, cev, cex, no, ddf, ddf, cpp, fin, no, cpp, thr, no, ovr, thi, cpp},
		{no, no, no, no, no, no, no, no, no, vcx, no, no, no, no, fin, no, cpp, no, noe, ovr, no, cpp, cpp},
		{no, no, no, no, no, no, no, no, no, vcx, no, no, no, no, no, no, cpp, no, noe, ovr, no, cpp, cpp, cpp},
	}
}()
