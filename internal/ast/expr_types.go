package ast

import "relaxfmt/internal/source"

// LitKind distinguishes literal tokens; the formatter prints Text verbatim.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitFloat
	LitString
	LitAtom
	LitChar
	LitTrue
	LitFalse
	LitNil
)

type ExprIdentData struct {
	Name string
}

// ExprAliasData is a dotted module name such as Foo.Bar.
type ExprAliasData struct {
	Segments []string
}

type ExprLiteralData struct {
	Kind LitKind
	Text string
}

// ExprUnaryData covers prefix operators: - + ! not @ &.
type ExprUnaryData struct {
	Op      string
	Operand ExprID
}

type ExprBinaryData struct {
	Op    string
	Left  ExprID
	Right ExprID
}

// ExprCallData is a local (Callee is Ident) or remote (Callee is Dot) call.
// Parens records whether the source wrote the argument list in parentheses.
type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
	Parens bool
	Do     *DoBlock
}

// ExprDotData is `Target.Name` without a call.
type ExprDotData struct {
	Target ExprID
	Name   string
}

type ExprAccessData struct {
	Target ExprID
	Key    ExprID
}

type ExprParenData struct {
	Inner ExprID
}

// ExprContainerData backs tuples, lists and bitstrings. Tail is the
// `| tail` of a list, NoExprID otherwise.
type ExprContainerData struct {
	Elems []ExprID
	Tail  ExprID
}

// ExprMapData is %{...}; Struct names %Name{...}, Update is the map in
// %{m | k: v}.
type ExprMapData struct {
	Struct ExprID
	Update ExprID
	Elems  []ExprID
}

// ExprPairData is `key => value` inside a map.
type ExprPairData struct {
	Key   ExprID
	Value ExprID
}

type KeywordPair struct {
	Key     string // with the trailing colon
	KeySpan source.Span
	Value   ExprID
}

// ExprKeywordData is a run of `key: value` pairs written without brackets,
// as the last element of a list, map or argument list.
type ExprKeywordData struct {
	Pairs []KeywordPair
}

type ExprFnData struct {
	Clauses  []Clause
	Trailing []Comment
}
