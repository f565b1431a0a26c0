// Package x86 folds a token sequence into an Intel-syntax x86-64 program
// whose main returns the value of the expression in rax.
package x86

import (
	"fmt"
	"math"
	"strings"

	"sumc/internal/source"
	"sumc/internal/token"
)

type state uint8

const (
	wantNumber state = iota
	wantOperator
)

type Emitter struct {
	buf     strings.Builder
	state   state
	started bool
	pending token.Kind // оператор, ожидающий правый операнд
	last    source.Loc
}

// EmitProgram returns the assembly for toks. inputLen is the length of the
// lexed input; it locates errors about a missing trailing operand.
func EmitProgram(toks []token.Token, inputLen int) (string, error) {
	end := source.NewLoc(inputLen, inputLen)
	if len(toks) == 0 {
		return "", newError(KindEmpty, end)
	}

	e := &Emitter{}
	e.emitPreamble()
	for _, tok := range toks {
		if err := e.step(tok); err != nil {
			return "", err
		}
	}
	if e.state == wantNumber {
		return "", newError(KindTrailingOperator, e.last)
	}
	e.buf.WriteString("  ret\n")
	return e.buf.String(), nil
}

func (e *Emitter) emitPreamble() {
	e.buf.WriteString(".intel_syntax noprefix\n")
	e.buf.WriteString(".global main\n")
	e.buf.WriteString("main:\n")
}

func (e *Emitter) step(tok token.Token) error {
	e.last = tok.Loc
	switch e.state {
	case wantNumber:
		if tok.Value.Kind != token.Number {
			return newError(KindExpectNumber, tok.Loc)
		}
		e.emitOperand(tok.Value.N)
		e.state = wantOperator
	case wantOperator:
		if !tok.Value.Kind.IsOperator() {
			return newError(KindExpectOperator, tok.Loc)
		}
		e.pending = tok.Value.Kind
		e.state = wantNumber
	}
	return nil
}

// add/sub принимают только imm32; большие операнды идут через rdi
func (e *Emitter) emitOperand(n uint64) {
	if !e.started {
		fmt.Fprintf(&e.buf, "  mov rax, %d\n", n)
		e.started = true
		return
	}
	op := "add"
	if e.pending == token.Minus {
		op = "sub"
	}
	if n > math.MaxInt32 {
		fmt.Fprintf(&e.buf, "  mov rdi, %d\n", n)
		fmt.Fprintf(&e.buf, "  %s rax, rdi\n", op)
		return
	}
	fmt.Fprintf(&e.buf, "  %s rax, %d\n", op, n)
}
