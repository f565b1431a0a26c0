package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"sumc/internal/source"
)

// Cursor представляет собой позицию во входной строке
type Cursor struct {
	Input string
	Off   uint32
	// Limit is the exclusive upper bound for Off; defaults to len(Input).
	Limit uint32
}

// NewCursor creates a new cursor over input.
func NewCursor(input string) Cursor {
	limit, err := safecast.Conv[uint32](len(input))
	if err != nil {
		panic(fmt.Errorf("len input overflow: %w", err))
	}
	return Cursor{
		Input: input,
		Off:   0,
		Limit: limit,
	}
}

// EOF проверяет, достигнут ли конец ввода
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Input[c.Off]
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Input[c.Off]
	c.Off++
	return b
}

// BumpWhile consumes the longest run of bytes satisfying pred and returns
// how many bytes were consumed.
func (c *Cursor) BumpWhile(pred func(byte) bool) int {
	n := 0
	for !c.EOF() && pred(c.Input[c.Off]) {
		c.Off++
		n++
	}
	return n
}

// Mark это метка, что бы быстро получать Loc читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Loc для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Loc {
	return source.Loc{
		Start: uint32(m),
		End:   c.Off,
	}
}

// Here returns the one-byte span at the cursor, or an empty span at EOF.
func (c *Cursor) Here() source.Loc {
	if c.EOF() {
		return source.Loc{Start: c.Off, End: c.Off}
	}
	return source.Loc{Start: c.Off, End: c.Off + 1}
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Input[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// Expect consumes b or reports why it could not: EOF when the input is
// exhausted, InvalidChar when a different byte is in the way.
func (c *Cursor) Expect(b byte) *Error {
	if c.EOF() {
		return EOF(c.Here())
	}
	if c.Input[c.Off] != b {
		return InvalidChar(rune(c.Input[c.Off]), c.Here())
	}
	c.Off++
	return nil
}
