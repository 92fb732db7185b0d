package lexer

import (
	"fmt"

	"relaxfmt/internal/diag"
	"relaxfmt/internal/token"
)

// multiPunct упорядочен по длине: первым совпадает самый длинный оператор.
// `===`/`!==` сворачиваются в EqEq/BangEq, форматтеру важна только ширина.
var multiPunct = [...]struct {
	seq  string
	kind token.Kind
}{
	{"===", token.EqEq},
	{"!==", token.BangEq},
	{"<<", token.LtLt},
	{">>", token.GtGt},
	{"<>", token.Concat},
	{"|>", token.PipeGt},
	{"<-", token.LeftArrow},
	{"<=", token.LtEq},
	{">=", token.GtEq},
	{`\\`, token.BackSlash2},
	{"::", token.ColonColon},
	{"=~", token.MatchOp},
	{"==", token.EqEq},
	{"=>", token.FatArrow},
	{"!=", token.BangEq},
	{"++", token.PlusPlus},
	{"--", token.MinusMinus},
	{"->", token.Arrow},
	{"..", token.DotDot},
	{"&&", token.AndAnd},
	{"||", token.OrOr},
}

var singlePunct = map[byte]token.Kind{
	'(': token.LParen, ')': token.RParen,
	'{': token.LBrace, '}': token.RBrace,
	'[': token.LBracket, ']': token.RBracket,
	'%': token.Percent, ',': token.Comma, ';': token.Semicolon,
	'.': token.Dot, '@': token.At, '|': token.Pipe, '=': token.Assign,
	'+': token.Plus, '-': token.Minus, '*': token.Star, '/': token.Slash,
	'<': token.Lt, '>': token.Gt, '!': token.Bang, '&': token.Amp, '^': token.Caret,
}

// scanOperatorOrPunct: жадно по multiPunct, затем один байт.
// `%{` остаётся двумя токенами, парсер склеивает их в map-литерал.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	for _, p := range multiPunct {
		if lx.cursor.EatSeq(p.seq) {
			return emit(p.kind)
		}
	}

	r, sz := lx.cursor.Rune()
	lx.cursor.Skip(sz)
	if sz == 1 {
		if k, ok := singlePunct[byte(r)]; ok {
			return emit(k)
		}
	}

	sp := lx.cursor.SpanFrom(start)
	msg := fmt.Sprintf("unknown character %q", r)
	if r == ':' {
		lx.errLex(diag.LexBadAtom, sp, "expected atom name after ':'")
	} else {
		lx.errLex(diag.LexUnknownChar, sp, msg)
	}
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
