package lexer

import (
	"testing"

	"sumc/internal/source"
)

func TestError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"invalid char", InvalidChar('*', source.Loc{Start: 2, End: 3}), "2-3: invalid char: *"},
		{"eof", EOF(source.Loc{Start: 5, End: 5}), "End of file"},
		{"overflow", NumberOverflow("99999999999999999999", source.Loc{Start: 0, End: 20}), "0-20: number out of range: 99999999999999999999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrKind_String(t *testing.T) {
	if KindInvalidChar.String() != "InvalidChar" || KindEOF.String() != "Eof" || KindNumberOverflow.String() != "NumberOverflow" {
		t.Error("unexpected ErrKind names")
	}
	if ErrKind(99).String() != "Unknown" {
		t.Error("out-of-range kind should be Unknown")
	}
}

func TestError_Comparable(t *testing.T) {
	a := InvalidChar('x', source.Loc{Start: 1, End: 2})
	b := InvalidChar('x', source.Loc{Start: 1, End: 2})
	if *a != *b {
		t.Error("equal errors must compare equal by value")
	}
}
