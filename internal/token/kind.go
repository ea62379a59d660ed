package token

// Kind is the category of a source token.
type Kind uint8

const (
	// Invalid marks a byte sequence the lexer could not tokenize.
	Invalid Kind = iota
	// EOF marks the end of the input.
	EOF

	// Ident is an identifier, including typedef names and the spellings of
	// keywords that are not keywords in the selected dialect.
	Ident
	// Keyword is a declaration keyword; Lookup maps its text to type bits.
	Keyword
	// Number is an integer literal in decimal, octal, or hex notation.
	Number

	Star     // *
	Amp      // &
	Amp2     // &&
	LParen   // (
	RParen   // )
	LBracket // [
	RBracket // ]
	// Attribute specifier brackets.
	LBracket2 // [[
	RBracket2 // ]]
	Less      // <
	Greater   // >
	Comma     // ,
	Semicolon // ;
	Colon2    // ::
	Ellipsis  // ...
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of input"
	case Ident:
		return "identifier"
	case Keyword:
		return "keyword"
	case Number:
		return "number"
	case Star:
		return `"*"`
	case Amp:
		return `"&"`
	case Amp2:
		return `"&&"`
	case LParen:
		return `"("`
	case RParen:
		return `")"`
	case LBracket:
		return `"["`
	case RBracket:
		return `"]"`
	case LBracket2:
		return `"[["`
	case RBracket2:
		return `"]]"`
	case Less:
		return `"<"`
	case Greater:
		return `">"`
	case Comma:
		return `","`
	case Semicolon:
		return `";"`
	case Colon2:
		return `"::"`
	case Ellipsis:
		return `"..."`
	}
	return "invalid token"
}
