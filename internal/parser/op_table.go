package parser

import (
	"relaxfmt/internal/token"
)

// Таблица приоритетов для бинарных операторов
// Чем больше число, тем выше приоритет
const (
	precWhen       = 1  // when
	precArrow      = 2  // <- \\
	precType       = 3  // ::
	precAssign     = 4  // =
	precOr         = 5  // || or
	precAnd        = 6  // && and
	precEquality   = 7  // == != === !== =~
	precComparison = 8  // < <= > >=
	precPipe       = 9  // |>
	precIn         = 10 // in
	precConcat     = 11 // ++ -- .. <>
	precAdditive   = 12 // + -
	precMultiply   = 13 // * /
)

// binaryPrec возвращает приоритет и ассоциативность оператора
// Возвращает (приоритет, правоассоциативный); -1 — не бинарный оператор.
func binaryPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.KwWhen:
		return precWhen, true
	case token.LeftArrow, token.BackSlash2:
		return precArrow, false
	case token.ColonColon:
		return precType, true
	case token.Assign:
		return precAssign, true
	case token.OrOr, token.KwOr:
		return precOr, false
	case token.AndAnd, token.KwAnd:
		return precAnd, false
	case token.EqEq, token.BangEq, token.MatchOp:
		return precEquality, false
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison, false
	case token.PipeGt:
		return precPipe, false
	case token.KwIn:
		return precIn, false
	case token.PlusPlus, token.MinusMinus, token.DotDot, token.Concat:
		return precConcat, true
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash:
		return precMultiply, false
	default:
		return -1, false
	}
}

// continuesLine: оператор в начале строки продолжает выражение предыдущей.
// '+' и '-' в начале строки начинают новое выражение (унарный минус).
func continuesLine(kind token.Kind) bool {
	switch kind {
	case token.Plus, token.Minus, token.KwWhen:
		return false
	default:
		return true
	}
}

// startsNoParensArg: токен может начинать аргумент вызова без скобок.
func startsNoParensArg(tok token.Token) bool {
	if tok.NewlineBefore() || !spaceBefore(tok) {
		return false
	}
	switch tok.Kind {
	case token.Ident, token.Alias, token.KeyIdent,
		token.IntLit, token.FloatLit, token.StringLit, token.CharLit, token.AtomLit,
		token.KwTrue, token.KwFalse, token.KwNil, token.KwNot,
		token.LBrace, token.LBracket, token.LtLt, token.Percent, token.LParen,
		token.At, token.Bang, token.Amp, token.Caret:
		return true
	default:
		return false
	}
}
