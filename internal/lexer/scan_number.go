package lexer

import (
	"relaxfmt/internal/diag"
	"relaxfmt/internal/token"
)

// Поддержка: 0, 1_000, 0b..., 0o..., 0x..., 1.0, 1.0e-3.
// Дробная часть только если после точки цифра: `1..2` и `1.foo` точку не съедают.
// Неверные формы — репорт в opts.Reporter, токен по возможности завершаем.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b':
			lx.cursor.Bump()
			lx.eatDigits(func(b byte) bool { return b == '0' || b == '1' })
			return lx.emitNumber(start, kind)
		case 'o':
			lx.cursor.Bump()
			lx.eatDigits(func(b byte) bool { return b >= '0' && b <= '7' })
			return lx.emitNumber(start, kind)
		case 'x':
			lx.cursor.Bump()
			lx.eatDigits(isHex)
			return lx.emitNumber(start, kind)
		}
	}

	lx.eatDigits(isDec)

	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		kind = token.FloatLit
		lx.cursor.Bump()
		lx.eatDigits(isDec)

		if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
			mark := lx.cursor.Mark()
			lx.cursor.Bump()
			if b := lx.cursor.Peek(); b == '+' || b == '-' {
				lx.cursor.Bump()
			}
			if !isDec(lx.cursor.Peek()) {
				lx.cursor.Reset(mark)
				lx.cursor.Bump()
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "expected digit after exponent")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			lx.eatDigits(isDec)
		}
	}

	return lx.emitNumber(start, kind)
}

func (lx *Lexer) eatDigits(valid func(byte) bool) {
	for {
		b := lx.cursor.Peek()
		if !valid(b) && b != '_' {
			return
		}
		lx.cursor.Bump()
	}
}

func (lx *Lexer) emitNumber(start Mark, kind token.Kind) token.Token {
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	if text[len(text)-1] == '_' {
		lx.errLex(diag.LexBadNumber, sp, "number cannot end with '_'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	if len(text) == 2 && text[0] == '0' && (text[1] == 'b' || text[1] == 'o' || text[1] == 'x') {
		lx.errLex(diag.LexBadNumber, sp, "expected digits after base prefix")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}
