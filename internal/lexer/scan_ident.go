package lexer

import (
	"unicode"

	"relaxfmt/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword сканирует идентификатор, алиас (с заглавной буквы),
// ключ keyword-списка (`foo:`) или ключевое слово.
// Идентификатор может заканчиваться на '?' или '!'. Token.Text — ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.cursor.Rune()
	if sz == 0 || !isIdentStartRune(r) {
		return lx.scanOperatorOrPunct()
	}
	upper := unicode.IsUpper(r)
	lx.cursor.Skip(sz)
	lx.eatIdentTail()

	if !upper {
		// `foo!=` это foo != ..., а не foo! = ...
		if !lx.cursor.Eat('?') && !lx.cursor.At("!=") {
			lx.cursor.Eat('!')
		}
	}

	if lx.atKeywordColon() {
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.KeyIdent, Span: sp, Text: lx.text(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if upper {
		return token.Token{Kind: token.Alias, Span: sp, Text: text}
	}
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// atKeywordColon: `:` сразу после идентификатора и за ним не `:`, не буква.
// `foo: 1` это ключ, `foo::bar` и `cond :atom` нет.
func (lx *Lexer) atKeywordColon() bool {
	if lx.cursor.Peek() != ':' {
		return false
	}
	b1 := lx.cursor.PeekAt(1)
	return b1 != ':' && !isIdentContinueByte(b1) && b1 != '"'
}
