package lexer

import (
	"fmt"

	"sumc/internal/source"
)

// ErrKind classifies a lexical failure.
type ErrKind uint8

const (
	// KindInvalidChar is a byte that starts no token.
	KindInvalidChar ErrKind = iota
	// KindEOF is input that ended where a specific byte was required.
	KindEOF
	// KindNumberOverflow is a digit run that does not fit into uint64.
	KindNumberOverflow
)

func (k ErrKind) String() string {
	switch k {
	case KindInvalidChar:
		return "InvalidChar"
	case KindEOF:
		return "Eof"
	case KindNumberOverflow:
		return "NumberOverflow"
	}
	return "Unknown"
}

// Fault is the payload of a lexical error. Char is set for
// KindInvalidChar, Digits for KindNumberOverflow.
type Fault struct {
	Kind   ErrKind
	Char   rune
	Digits string
}

// Error is a lexical failure annotated with the span it implicates.
type Error struct {
	source.Annot[Fault]
}

// InvalidChar reports a byte that starts no token.
func InvalidChar(c rune, loc source.Loc) *Error {
	return &Error{source.NewAnnot(Fault{Kind: KindInvalidChar, Char: c}, loc)}
}

// EOF reports input that ended too early.
func EOF(loc source.Loc) *Error {
	return &Error{source.NewAnnot(Fault{Kind: KindEOF}, loc)}
}

// NumberOverflow reports a literal above the uint64 range.
func NumberOverflow(digits string, loc source.Loc) *Error {
	return &Error{source.NewAnnot(Fault{Kind: KindNumberOverflow, Digits: digits}, loc)}
}

// Kind returns the failure kind.
func (e *Error) Kind() ErrKind { return e.Value.Kind }

func (e *Error) Error() string {
	switch e.Value.Kind {
	case KindInvalidChar:
		return fmt.Sprintf("%s: invalid char: %c", e.Loc, e.Value.Char)
	case KindEOF:
		return "End of file"
	case KindNumberOverflow:
		return fmt.Sprintf("%s: number out of range: %s", e.Loc, e.Value.Digits)
	}
	return fmt.Sprintf("%s: unknown lexical error", e.Loc)
}
