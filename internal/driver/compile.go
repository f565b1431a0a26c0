package driver

import (
	"fmt"

	"sumc/internal/backend/x86"
	"sumc/internal/diag"
	"sumc/internal/observ"
	"sumc/internal/token"
)

// CompileResult holds the assembly for one expression, or the diagnostic
// that stopped it.
type CompileResult struct {
	Input    string
	Tokens   []token.Token
	Assembly string
	Err      *diag.Error
}

// Compile runs lex → codegen on input.
func Compile(input string, timer *observ.Timer) (*CompileResult, error) {
	tr, err := Tokenize(input, timer)
	if err != nil {
		return nil, err
	}
	res := &CompileResult{Input: input, Tokens: tr.Tokens, Err: tr.Err}
	if res.Err != nil {
		return res, nil
	}

	idx := -1
	if timer != nil {
		idx = timer.Begin("codegen")
	}
	asm, err := x86.EmitProgram(tr.Tokens, len(input))
	if timer != nil {
		timer.End(idx, "")
	}
	if err != nil {
		top, ok := diag.Lift(err)
		if !ok {
			return nil, fmt.Errorf("codegen: %w", err)
		}
		res.Err = top
		return res, nil
	}
	res.Assembly = asm
	return res, nil
}
