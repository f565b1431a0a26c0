package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Plus represents the plus operator token.
	Plus Kind = iota // +
	// Minus represents the minus operator token.
	Minus // -
	// Number represents an unsigned decimal literal.
	Number
)

func (k Kind) String() string {
	switch k {
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Number:
		return "Number"
	}
	return "Unknown"
}

// IsOperator reports whether the kind is a binary operator.
func (k Kind) IsOperator() bool {
	return k == Plus || k == Minus
}
