package lexer

import (
	"sumc/internal/token"
)

type lexer struct {
	cursor Cursor
	tokens []token.Token
}

// Lex splits input into tokens. On failure it returns a nil slice and a
// *Error describing the first offending byte. Empty or whitespace-only
// input yields an empty, non-nil slice.
func Lex(input string) ([]token.Token, error) {
	lx := &lexer{
		cursor: NewCursor(input),
		tokens: make([]token.Token, 0, len(input)/2),
	}
	if err := lx.run(); err != nil {
		return nil, err
	}
	return lx.tokens, nil
}

func (lx *lexer) run() *Error {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()

		var (
			tok token.Token
			err *Error
		)
		switch {
		case isDec(ch):
			tok, err = lx.scanNumber()
		case ch == '+':
			tok, err = lx.scanPlus()
		case ch == '-':
			tok, err = lx.scanMinus()
		case isSpace(ch):
			lx.skipSpace()
			continue
		default:
			return InvalidChar(rune(ch), lx.cursor.Here())
		}
		if err != nil {
			return err
		}
		lx.tokens = append(lx.tokens, tok)
	}
	return nil
}
