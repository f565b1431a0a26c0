package lexer

import (
	"errors"
	"strconv"

	"sumc/internal/token"
)

// scanNumber consumes the maximal run of ASCII digits. A run that does not
// fit into uint64 is reported as NumberOverflow over the whole run.
func (lx *lexer) scanNumber() (token.Token, *Error) {
	start := lx.cursor.Mark()
	lx.cursor.BumpWhile(isDec)
	sp := lx.cursor.SpanFrom(start)
	text := sp.Slice(lx.cursor.Input)

	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return token.Token{}, NumberOverflow(text, sp)
		}
		// только цифры сюда попадают, другой ошибки быть не может
		return token.Token{}, InvalidChar(rune(text[0]), sp)
	}
	return token.NewNumber(n, sp), nil
}
