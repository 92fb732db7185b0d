package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	Ident     // foo, foo?, foo!
	Alias     // Foo, Foo.Bar is Alias Dot Alias
	KeyIdent  // foo:
	AtomLit   // :foo, :"foo bar", :+
	IntLit    // 1, 1_000, 0x1F
	FloatLit  // 1.0, 1.0e3
	StringLit // "text"
	CharLit   // ?a

	KwTrue  // true
	KwFalse // false
	KwNil   // nil
	KwDo    // do
	KwEnd   // end
	KwAnd   // and
	KwOr    // or
	KwNot   // not
	KwIn    // in
	KwWhen  // when

	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	LtLt      // <<
	GtGt      // >>
	Percent   // %
	Comma     // ,
	Semicolon // ;
	Dot       // .
	At        // @
	Pipe      // |
	FatArrow  // =>
	Arrow     // ->
	Assign    // =
	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	EqEq      // ==
	BangEq    // !=
	Lt        // <
	LtEq      // <=
	Gt        // >
	GtEq      // >=
	AndAnd    // &&
	OrOr      // ||
	Bang      // !
	PipeGt    // |>
	PlusPlus  // ++
	MinusMinus
	Concat     // <>
	DotDot     // ..
	Amp        // &
	LeftArrow  // <-
	BackSlash2 // \\
	ColonColon // ::
	MatchOp    // =~
	Caret      // ^

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	Alias:      "Alias",
	KeyIdent:   "KeyIdent",
	AtomLit:    "AtomLit",
	IntLit:     "IntLit",
	FloatLit:   "FloatLit",
	StringLit:  "StringLit",
	CharLit:    "CharLit",
	KwTrue:     "KwTrue",
	KwFalse:    "KwFalse",
	KwNil:      "KwNil",
	KwDo:       "KwDo",
	KwEnd:      "KwEnd",
	KwAnd:      "KwAnd",
	KwOr:       "KwOr",
	KwNot:      "KwNot",
	KwIn:       "KwIn",
	KwWhen:     "KwWhen",
	LParen:     "LParen",
	RParen:     "RParen",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	LBracket:   "LBracket",
	RBracket:   "RBracket",
	LtLt:       "LtLt",
	GtGt:       "GtGt",
	Percent:    "Percent",
	Comma:      "Comma",
	Semicolon:  "Semicolon",
	Dot:        "Dot",
	At:         "At",
	Pipe:       "Pipe",
	FatArrow:   "FatArrow",
	Arrow:      "Arrow",
	Assign:     "Assign",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	Slash:      "Slash",
	EqEq:       "EqEq",
	BangEq:     "BangEq",
	Lt:         "Lt",
	LtEq:       "LtEq",
	Gt:         "Gt",
	GtEq:       "GtEq",
	AndAnd:     "AndAnd",
	OrOr:       "OrOr",
	Bang:       "Bang",
	PipeGt:     "PipeGt",
	PlusPlus:   "PlusPlus",
	MinusMinus: "MinusMinus",
	Concat:     "Concat",
	DotDot:     "DotDot",
	Amp:        "Amp",
	LeftArrow:  "LeftArrow",
	BackSlash2: "BackSlash2",
	ColonColon: "ColonColon",
	MatchOp:    "MatchOp",
	Caret:      "Caret",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}
