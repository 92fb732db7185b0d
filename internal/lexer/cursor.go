package lexer

import (
	"fmt"
	"unicode/utf8"

	"relaxfmt/internal/source"

	"fortio.org/safecast"
)

// Cursor идёт по байтам одного файла. Все чтения за пределами Limit
// возвращают нулевые значения, поэтому сканерам не нужно проверять длину.
type Cursor struct {
	File *source.File
	Off  uint32
	// Limit is the exclusive upper bound for Off; zero means the whole file.
	Limit uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	return Cursor{File: f, Limit: contentLen(f.Content)}
}

func contentLen(b []byte) uint32 {
	n, err := safecast.Conv[uint32](len(b))
	if err != nil {
		panic(fmt.Errorf("file content overflow: %w", err))
	}
	return n
}

func (c *Cursor) end() uint32 {
	if c.Limit != 0 {
		return c.Limit
	}
	return contentLen(c.File.Content)
}

// rest is the unread window up to Limit.
func (c *Cursor) rest() []byte {
	end := c.end()
	if c.Off >= end {
		return nil
	}
	return c.File.Content[c.Off:end]
}

func (c *Cursor) EOF() bool {
	return c.Off >= c.end()
}

// Peek returns the current byte or 0 at EOF.
func (c *Cursor) Peek() byte {
	return c.PeekAt(0)
}

// PeekAt смотрит на n байт вперёд, 0 если за пределом.
func (c *Cursor) PeekAt(n uint32) byte {
	if r := c.rest(); int(n) < len(r) {
		return r[n]
	}
	return 0
}

// At сообщает, начинается ли непрочитанный остаток с seq.
// `<<`, `>>`, `%{` и `|>` распознаются одним вызовом.
func (c *Cursor) At(seq string) bool {
	r := c.rest()
	return len(r) >= len(seq) && string(r[:len(seq)]) == seq
}

// Bump advances one byte and returns it.
func (c *Cursor) Bump() byte {
	b := c.Peek()
	if !c.EOF() {
		c.Off++
	}
	return b
}

// Skip advances n bytes, stopping at the limit.
func (c *Cursor) Skip(n int) {
	r := c.rest()
	if n > len(r) {
		n = len(r)
	}
	c.Off += contentLen(r[:n])
}

// SkipToEnd drops everything left before the limit.
func (c *Cursor) SkipToEnd() {
	c.Off = c.end()
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Peek() == b {
		c.Off++
		return true
	}
	return false
}

// EatSeq съедает seq целиком или ничего.
func (c *Cursor) EatSeq(seq string) bool {
	if !c.At(seq) {
		return false
	}
	c.Skip(len(seq))
	return true
}

// Rune декодирует текущую руну; size 0 на EOF.
func (c *Cursor) Rune() (r rune, size int) {
	rest := c.rest()
	if len(rest) == 0 {
		return utf8.RuneError, 0
	}
	if rest[0] < utf8.RuneSelf {
		return rune(rest[0]), 1
	}
	return utf8.DecodeRune(rest)
}

// BumpRune advances over the current rune and returns it.
func (c *Cursor) BumpRune() rune {
	r, sz := c.Rune()
	c.Skip(sz)
	return r
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark uint32

func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom covers the bytes read since m.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}
