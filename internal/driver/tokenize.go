package driver

import (
	"fmt"

	"sumc/internal/diag"
	"sumc/internal/lexer"
	"sumc/internal/observ"
	"sumc/internal/token"
)

// TokenizeResult holds the outcome of lexing one expression. Exactly one of
// Tokens and Err is meaningful: Err is nil on success.
type TokenizeResult struct {
	Input  string
	Tokens []token.Token
	Err    *diag.Error
}

// Tokenize lexes input. Lexical failures are returned in the result, not as
// the error; the error is reserved for failures that are not diagnostics.
func Tokenize(input string, timer *observ.Timer) (*TokenizeResult, error) {
	idx := -1
	if timer != nil {
		idx = timer.Begin("lex")
	}
	tokens, err := lexer.Lex(input)
	if timer != nil {
		timer.End(idx, fmt.Sprintf("%d tokens", len(tokens)))
	}

	res := &TokenizeResult{Input: input, Tokens: tokens}
	if err != nil {
		top, ok := diag.Lift(err)
		if !ok {
			return nil, fmt.Errorf("lex: %w", err)
		}
		res.Err = top
	}
	return res, nil
}
