package diag

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"sumc/internal/backend/x86"
	"sumc/internal/lexer"
	"sumc/internal/source"
)

// Stage names the pipeline phase an Error came from.
type Stage uint8

const (
	StageLexer Stage = iota
	StageCodegen
)

func (s Stage) String() string {
	switch s {
	case StageLexer:
		return "lex"
	case StageCodegen:
		return "codegen"
	}
	return "unknown"
}

// Error is the top-level pipeline error. Exactly one of the stage fields is
// set, selected by Stage.
type Error struct {
	Stage   Stage
	Lexer   *lexer.Error
	Codegen *x86.Error
}

// FromLex lifts a lexical error.
func FromLex(e *lexer.Error) *Error {
	return &Error{Stage: StageLexer, Lexer: e}
}

// FromCodegen lifts a code generation error.
func FromCodegen(e *x86.Error) *Error {
	return &Error{Stage: StageCodegen, Codegen: e}
}

// Lift converts a stage error into *Error. It returns nil for nil and
// reports false for errors that belong to no stage.
func Lift(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var top *Error
	if errors.As(err, &top) {
		return top, true
	}
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return FromLex(lexErr), true
	}
	var genErr *x86.Error
	if errors.As(err, &genErr) {
		return FromCodegen(genErr), true
	}
	return nil, false
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %s", e.Stage, e.Unwrap())
}

// Unwrap returns the stage error.
func (e *Error) Unwrap() error {
	switch e.Stage {
	case StageLexer:
		if e.Lexer != nil {
			return e.Lexer
		}
	case StageCodegen:
		if e.Codegen != nil {
			return e.Codegen
		}
	}
	return nil
}

// Loc returns the span the error points at.
func (e *Error) Loc() source.Loc {
	switch e.Stage {
	case StageLexer:
		if e.Lexer != nil {
			return e.Lexer.Loc
		}
	case StageCodegen:
		if e.Codegen != nil {
			return e.Codegen.Loc
		}
	}
	return source.Loc{}
}

// Code maps the stage error to its diagnostic code.
func (e *Error) Code() Code {
	switch e.Stage {
	case StageLexer:
		if e.Lexer == nil {
			break
		}
		switch e.Lexer.Kind() {
		case lexer.KindInvalidChar:
			return LexInvalidChar
		case lexer.KindEOF:
			return LexUnexpectedEOF
		case lexer.KindNumberOverflow:
			return LexNumberOverflow
		}
	case StageCodegen:
		if e.Codegen == nil {
			break
		}
		switch e.Codegen.Kind() {
		case x86.KindEmpty:
			return GenEmptyExpression
		case x86.KindExpectNumber:
			return GenExpectNumber
		case x86.KindExpectOperator:
			return GenExpectOperator
		case x86.KindTrailingOperator:
			return GenTrailingOperator
		}
	}
	return UnknownCode
}

// Diagnostic returns the serialisable view of the error.
func (e *Error) Diagnostic() Diagnostic {
	msg := ""
	if cause := e.Unwrap(); cause != nil {
		msg = cause.Error()
	}
	return Diagnostic{
		Severity: SevError,
		Code:     e.Code(),
		Message:  msg,
		Primary:  e.Loc(),
	}
}

// ShowDiagnostic writes input verbatim and, below it, a caret underline of
// the error's span.
func (e *Error) ShowDiagnostic(w io.Writer, input string) {
	loc := e.Loc()
	fmt.Fprintln(w, input)
	fmt.Fprintln(w, Underline(loc))
}

// Underline returns loc.Start spaces followed by loc.Len() carets.
func Underline(loc source.Loc) string {
	return strings.Repeat(" ", int(loc.Start)) + strings.Repeat("^", int(loc.Len()))
}
