package lexer

import (
	"relaxfmt/internal/diag"
	"relaxfmt/internal/token"
)

// scanString сканирует "..." и heredoc """...""".
// Escape-последовательности не валидируются: '\' съедает следующий байт.
// Перевод строки внутри обычной строки допустим.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	if lx.atHeredoc() {
		return lx.scanHeredoc(start)
	}
	lx.cursor.Bump() // opening '"'
	if lx.skipQuoted('"') {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

const heredocQuote = `"""`

func (lx *Lexer) atHeredoc() bool {
	return lx.cursor.At(heredocQuote)
}

func (lx *Lexer) scanHeredoc(start Mark) token.Token {
	lx.cursor.Skip(len(heredocQuote))
	for !lx.cursor.EOF() {
		if lx.cursor.Eat('\\') {
			lx.cursor.Bump()
			continue
		}
		if lx.cursor.EatSeq(heredocQuote) {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated heredoc")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// skipQuoted съедает содержимое до закрывающей кавычки включительно.
func (lx *Lexer) skipQuoted(quote byte) bool {
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == quote {
			return true
		}
		if b == '\\' {
			lx.cursor.Bump()
		}
	}
	return false
}

func (lx *Lexer) isAtomStart() bool {
	b1 := lx.cursor.PeekAt(1)
	return isIdentStartByte(b1) || b1 >= utf8RuneSelf || b1 == '"'
}

// scanAtom: :foo, :Foo, :foo?, :"quoted atom".
func (lx *Lexer) scanAtom() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // ':'
	if lx.cursor.Peek() == '"' {
		lx.cursor.Bump()
		if !lx.skipQuoted('"') {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "unterminated quoted atom")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.AtomLit, Span: sp, Text: lx.text(sp)}
	}
	lx.eatIdentTail()
	if !lx.cursor.Eat('?') {
		lx.cursor.Eat('!')
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.AtomLit, Span: sp, Text: lx.text(sp)}
}

// scanChar: ?a, ?\n.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '?'
	if lx.cursor.EOF() {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "expected character after '?'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	lx.cursor.Eat('\\')
	lx.cursor.BumpRune()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.CharLit, Span: sp, Text: lx.text(sp)}
}
