package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"uriql/internal/source"
)

// Cursor представляет собой позицию в тексте выражения
type Cursor struct {
	Text string
	Off  uint32
	// Limit is the exclusive upper bound for Off; equals len(Text).
	Limit uint32
}

// NewCursor creates a new cursor over the expression text.
func NewCursor(text string) Cursor {
	limit, err := safecast.Conv[uint32](len(text))
	if err != nil {
		panic(fmt.Errorf("len expression overflow: %w", err))
	}
	return Cursor{Text: text, Limit: limit}
}

// EOF проверяет, достигнут ли конец текста
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Text[c.Off]
}

// PeekAt читает байт со смещением n от текущей позиции, иначе 0
func (c *Cursor) PeekAt(n uint32) byte {
	if c.Off+n >= c.Limit {
		return 0
	}
	return c.Text[c.Off+n]
}

// PeekRune decodes the rune at the cursor; size is 0 at EOF.
func (c *Cursor) PeekRune() (r rune, size uint32) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	b := c.Text[c.Off]
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	r, sz := utf8.DecodeRuneInString(c.Text[c.Off:])
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("rune size overflow: %w", err))
	}
	return r, usz
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Text[c.Off]
	c.Off++
	return b
}

// BumpRune moves past the rune at the cursor.
func (c *Cursor) BumpRune() {
	_, sz := c.PeekRune()
	c.Off += sz
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Text[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{Start: uint32(m), End: c.Off}
}

// TextFrom returns the text read since the mark.
func (c *Cursor) TextFrom(m Mark) string {
	return c.Text[m:c.Off]
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}

// Seek moves the cursor to an int offset produced by a trial parser.
func (c *Cursor) Seek(off int) {
	u, err := safecast.Conv[uint32](off)
	if err != nil || u > c.Limit {
		panic(fmt.Errorf("seek out of range: %d", off))
	}
	c.Off = u
}
