package x86

import (
	"fmt"

	"sumc/internal/source"
)

// ErrKind classifies a token sequence that does not form a sum.
type ErrKind uint8

const (
	// KindEmpty is an input without tokens.
	KindEmpty ErrKind = iota
	// KindExpectNumber is an operator where a number was required.
	KindExpectNumber
	// KindExpectOperator is a number directly after another number.
	KindExpectOperator
	// KindTrailingOperator is an operator with no right operand.
	KindTrailingOperator
)

func (k ErrKind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindExpectNumber:
		return "ExpectNumber"
	case KindExpectOperator:
		return "ExpectOperator"
	case KindTrailingOperator:
		return "TrailingOperator"
	}
	return "Unknown"
}

// Error is a shape error located at the offending token.
type Error struct {
	source.Annot[ErrKind]
}

func newError(kind ErrKind, loc source.Loc) *Error {
	return &Error{source.NewAnnot(kind, loc)}
}

// Kind returns the failure kind.
func (e *Error) Kind() ErrKind { return e.Value }

func (e *Error) Error() string {
	switch e.Value {
	case KindEmpty:
		return fmt.Sprintf("%s: empty expression", e.Loc)
	case KindExpectNumber:
		return fmt.Sprintf("%s: expected a number", e.Loc)
	case KindExpectOperator:
		return fmt.Sprintf("%s: expected '+' or '-'", e.Loc)
	case KindTrailingOperator:
		return fmt.Sprintf("%s: operator without right operand", e.Loc)
	}
	return fmt.Sprintf("%s: invalid expression", e.Loc)
}
