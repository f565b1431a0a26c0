package token

import (
	"fmt"

	"sumc/internal/source"
)

// Lexeme is the token payload: its kind and, for Number, its value.
type Lexeme struct {
	Kind Kind
	N    uint64
}

func (l Lexeme) String() string {
	if l.Kind == Number {
		return fmt.Sprintf("Number(%d)", l.N)
	}
	return l.Kind.String()
}

// Token is a lexeme annotated with its source span.
type Token = source.Annot[Lexeme]

// NewNumber creates a Number token.
func NewNumber(n uint64, loc source.Loc) Token {
	return source.NewAnnot(Lexeme{Kind: Number, N: n}, loc)
}

// NewPlus creates a Plus token.
func NewPlus(loc source.Loc) Token {
	return source.NewAnnot(Lexeme{Kind: Plus}, loc)
}

// NewMinus creates a Minus token.
func NewMinus(loc source.Loc) Token {
	return source.NewAnnot(Lexeme{Kind: Minus}, loc)
}

// Format renders a token as "Kind@start-end", e.g. "Number(42)@0-2".
func Format(t Token) string {
	return t.Value.String() + "@" + t.Loc.String()
}
