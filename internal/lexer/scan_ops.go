package lexer

import (
	"sumc/internal/token"
)

func (lx *lexer) scanPlus() (token.Token, *Error) {
	start := lx.cursor.Mark()
	if err := lx.cursor.Expect('+'); err != nil {
		return token.Token{}, err
	}
	return token.NewPlus(lx.cursor.SpanFrom(start)), nil
}

func (lx *lexer) scanMinus() (token.Token, *Error) {
	start := lx.cursor.Mark()
	if err := lx.cursor.Expect('-'); err != nil {
		return token.Token{}, err
	}
	return token.NewMinus(lx.cursor.SpanFrom(start)), nil
}
