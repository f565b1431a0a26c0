package source

// Annot pairs a payload with the span it came from. Tokens and lexical
// errors are both Annot values; they are copied by value and never mutated.
type Annot[T any] struct {
	Value T
	Loc   Loc
}

// NewAnnot creates an annotated value.
func NewAnnot[T any](value T, loc Loc) Annot[T] {
	return Annot[T]{Value: value, Loc: loc}
}
