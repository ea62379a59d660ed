package ast

import (
	"math"

	"declc/internal/ctype"
	"declc/internal/dialect"
)

// OperID identifies a C++ overloadable (or pointedly non-overloadable)
// operator.
type OperID uint8

const (
	OperNone OperID = iota
	OperCoAwait
	OperNew
	OperNewArray
	OperDelete
	OperDeleteArray
	OperExclam
	OperExclamEq
	OperPercent
	OperPercentEq
	OperAmper
	OperAmper2
	OperAmperEq
	OperParens
	OperStar
	OperStarEq
	OperPlus
	OperPlus2
	OperPlusEq
	OperComma
	OperMinus
	OperMinus2
	OperMinusEq
	OperArrow
	OperArrowStar
	OperDot
	OperDotStar
	OperSlash
	OperSlashEq
	OperColon2
	OperLess
	OperLess2
	OperLess2Eq
	OperLessEq
	OperSpaceship
	OperEq
	OperEq2
	OperGreater
	OperGreaterEq
	OperGreater2
	OperGreater2Eq
	OperQmarkColon
	OperBrackets
	OperCaret
	OperCaretEq
	OperPipe
	OperPipeEq
	OperPipe2
	OperTilde
)

// Overload says on which side of the member divide an operator may be
// overloaded. The zero value means the question could not be answered, which
// is a legitimate final answer, not an error.
type Overload uint8

const (
	OverloadUnspecified     Overload = 0
	OverloadMember          Overload = 1 << 0
	OverloadNonMember       Overload = 1 << 1
	OverloadNotOverloadable Overload = 1 << 2

	OverloadEither = OverloadMember | OverloadNonMember
)

func (o Overload) String() string {
	switch o {
	case OverloadMember:
		return "member"
	case OverloadNonMember:
		return "non-member"
	case OverloadNotOverloadable:
		return "not overloadable"
	case OverloadEither:
		return "member or non-member"
	}
	return "unspecified"
}

// ParamsUnlimited as a ParamsMax means any number of parameters.
const ParamsUnlimited = math.MaxUint32

// Operator describes one operator's overloadability and arity.
type Operator struct {
	ID        OperID
	Literal   string
	Langs     dialect.ID
	Overload  Overload
	ParamsMin uint32
	ParamsMax uint32
}

// The rows are in OperID order. operator[] has two rows because C++23 changed
// it from exactly one parameter to any number, so a lookup must scan from the
// OperID index rather than index directly.
var operators = func() []Operator {
	const unl = ParamsUnlimited
	cpp := dialect.CPP
	eit := OverloadEither
	mbr := OverloadMember
	xxx := OverloadNotOverloadable

	return []Operator{
		{OperNone, "none", dialect.None, xxx, 0, 0},
		{OperCoAwait, "co_await", dialect.CoAwait, eit, 0, 1},
		{OperNew, "new", cpp, eit, 1, unl},
		{OperNewArray, "new[]", cpp, eit, 1, unl},
		{OperDelete, "delete", cpp, eit, 1, unl},
		{OperDeleteArray, "delete[]", cpp, eit, 1, unl},
		{OperExclam, "!", cpp, eit, 0, 1},
		{OperExclamEq, "!=", cpp, eit, 1, 2},
		{OperPercent, "%", cpp, eit, 1, 2},
		{OperPercentEq, "%=", cpp, eit, 1, 2},
		{OperAmper, "&", cpp, eit, 0, 2},
		{OperAmper2, "&&", cpp, eit, 1, 2},
		{OperAmperEq, "&=", cpp, eit, 1, 2},
		{OperParens, "()", cpp, mbr, 0, unl},
		{OperStar, "*", cpp, eit, 0, 2},
		{OperStarEq, "*=", cpp, eit, 1, 2},
		{OperPlus, "+", cpp, eit, 0, 2},
		{OperPlus2, "++", cpp, eit, 0, 2},
		{OperPlusEq, "+=", cpp, eit, 1, 2},
		{OperComma, ",", cpp, eit, 1, 2},
		{OperMinus, "-", cpp, eit, 0, 2},
		{OperMinus2, "--", cpp, eit, 0, 2},
		{OperMinusEq, "-=", cpp, eit, 1, 2},
		{OperArrow, "->", cpp, mbr, 0, 0},
		{OperArrowStar, "->*", cpp, eit, 1, 2},
		{OperDot, ".", cpp, xxx, 0, 0},
		{OperDotStar, ".*", cpp, xxx, 0, 0},
		{OperSlash, "/", cpp, eit, 1, 2},
		{OperSlashEq, "/=", cpp, eit, 1, 2},
		{OperColon2, "::", cpp, xxx, 0, 0},
		{OperLess, "<", cpp, eit, 1, 2},
		{OperLess2, "<<", cpp, eit, 1, 2},
		{OperLess2Eq, "<<=", cpp, eit, 1, 2},
		{OperLessEq, "<=", cpp, eit, 1, 2},
		{OperSpaceship, "<=>", dialect.Spaceship, eit, 1, 2},
		{OperEq, "=", cpp, mbr, 1, 1},
		{OperEq2, "==", cpp, eit, 1, 2},
		{OperGreater, ">", cpp, eit, 1, 2},
		{OperGreaterEq, ">=", cpp, eit, 1, 2},
		{OperGreater2, ">>", cpp, eit, 1, 2},
		{OperGreater2Eq, ">>=", cpp, eit, 1, 2},
		{OperQmarkColon, "?:", cpp, xxx, 0, 0},
		{OperBrackets, "[]", dialect.CPPMax(dialect.CPP20), mbr, 1, 1},
		{OperBrackets, "[]", dialect.CPPMin(dialect.CPP23), mbr, 0, unl},
		{OperCaret, "^", cpp, eit, 1, 2},
		{OperCaretEq, "^=", cpp, eit, 1, 2},
		{OperPipe, "|", cpp, eit, 1, 2},
		{OperPipeEq, "|=", cpp, eit, 1, 2},
		{OperPipe2, "||", cpp, eit, 1, 2},
		{OperTilde, "~", cpp, eit, 0, 1},
	}
}()

// LookupOper returns the operator row for id in the given dialect. When no
// row matches the dialect it returns the last row with that id so callers
// always get a literal and arity to report against.
func LookupOper(id OperID, lang dialect.ID) *Operator {
	var best *Operator
	for i := int(id); i < len(operators); i++ {
		op := &operators[i]
		if op.ID < id {
			continue
		}
		if op.ID > id {
			break
		}
		if op.Langs.Intersects(lang) {
			return op
		}
		best = op
	}
	return best
}

// OperLiteral returns the spelling of an operator.
func OperLiteral(id OperID) string {
	return LookupOper(id, dialect.All).Literal
}

// memberOnlyTIDs are the qualifiers that can apply only to member functions.
// Defaulted relational operators may be non-member friends since C++20, so
// "default" stops implying member there.
func memberOnlyTIDs(lang dialect.ID) ctype.TID {
	tids := ctype.SCV | ctype.SDelete | ctype.SFinal | ctype.SOverride |
		ctype.SRefQualifier | ctype.SRestrict | ctype.SVirtual
	if !dialect.DefaultedRelOps.Has(lang) {
		tids |= ctype.SDefault
	}
	return tids
}

// OperOverload infers whether the operator node id is being declared as a
// member or non-member, or reports that the declaration does not say.
func (t *Tree) OperOverload(id NodeID, lang dialect.ID) Overload {
	n := t.Get(id)
	op := LookupOper(n.OperID, lang)

	// Operators that are inherently one or the other, or not overloadable
	// at all, are simply that.
	switch op.Overload {
	case OverloadMember, OverloadNonMember, OverloadNotOverloadable:
		return op.Overload
	}

	// The user may have said explicitly.
	switch n.Func.Member {
	case OverloadMember, OverloadNonMember:
		return n.Func.Member
	}

	// A member-only or non-member-only qualifier decides.
	if n.Type.Intersects(memberOnlyTIDs(lang)) {
		return OverloadMember
	}
	if n.Type.Intersects(ctype.SFriend) {
		return OverloadNonMember
	}

	// Allocation operators are members when declared within a class or
	// declared static.
	switch n.OperID {
	case OperNew, OperNewArray, OperDelete, OperDeleteArray:
		if !n.SName.Empty() || n.Type.Intersects(ctype.SStatic) {
			return OverloadMember
		}
		return OverloadNonMember
	}

	// Last resort: infer from arity. A count matching neither bound leaves
	// the question open.
	nParams := uint32(len(n.Func.Params))
	if nParams == op.ParamsMin {
		return OverloadMember
	}
	if nParams == op.ParamsMax {
		return OverloadNonMember
	}
	return OverloadUnspecified
}
