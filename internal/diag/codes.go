package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0
	// Лексические
	LexInvalidChar    Code = 1001
	LexUnexpectedEOF  Code = 1002
	LexNumberOverflow Code = 1003

	// Кодогенерация
	GenEmptyExpression  Code = 2001
	GenExpectNumber     Code = 2002
	GenExpectOperator   Code = 2003
	GenTrailingOperator Code = 2004
)

var codeDescription = map[Code]string{
	UnknownCode:         "Unknown error",
	LexInvalidChar:      "Invalid character",
	LexUnexpectedEOF:    "Unexpected end of file",
	LexNumberOverflow:   "Number literal out of range",
	GenEmptyExpression:  "Empty expression",
	GenExpectNumber:     "Expected number",
	GenExpectOperator:   "Expected operator",
	GenTrailingOperator: "Missing right operand",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("GEN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
