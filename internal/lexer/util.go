package lexer

import "unicode"

// Классификаторы: ASCII через байт, остальное через unicode.

func isIdentStartByte(b byte) bool {
	return b == '_' || (b|0x20 >= 'a' && b|0x20 <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinueRune(r rune) bool {
	return isIdentStartRune(r) || unicode.IsDigit(r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || (b|0x20 >= 'a' && b|0x20 <= 'f')
}

// eatIdentTail съедает продолжение идентификатора или атома.
// `?`/`!` в конце не трогает: у вызывающих разные правила.
func (lx *Lexer) eatIdentTail() {
	for {
		if b := lx.cursor.Peek(); b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				return
			}
			lx.cursor.Bump()
			continue
		}
		r, sz := lx.cursor.Rune()
		if sz == 0 || !isIdentContinueRune(r) {
			return
		}
		lx.cursor.Skip(sz)
	}
}
