package x86_test

import (
	"errors"
	"testing"

	"sumc/internal/backend/x86"
	"sumc/internal/lexer"
	"sumc/internal/source"
)

func emit(t *testing.T, input string) (string, error) {
	t.Helper()
	toks, err := lexer.Lex(input)
	if err != nil {
		t.Fatalf("Lex(%q): %v", input, err)
	}
	return x86.EmitProgram(toks, len(input))
}

func TestEmitProgram(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42", ".intel_syntax noprefix\n.global main\nmain:\n  mov rax, 42\n  ret\n"},
		{" 12 + 34 - 5 ", ".intel_syntax noprefix\n.global main\nmain:\n  mov rax, 12\n  add rax, 34\n  sub rax, 5\n  ret\n"},
		{"1 - 4294967296", ".intel_syntax noprefix\n.global main\nmain:\n  mov rax, 1\n  mov rdi, 4294967296\n  sub rax, rdi\n  ret\n"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := emit(t, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestEmitProgram_ShapeErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  x86.ErrKind
		loc   source.Loc
		msg   string
	}{
		{"", x86.KindEmpty, source.Loc{Start: 0, End: 0}, "0-0: empty expression"},
		{"  ", x86.KindEmpty, source.Loc{Start: 2, End: 2}, "2-2: empty expression"},
		{"+ 1", x86.KindExpectNumber, source.Loc{Start: 0, End: 1}, "0-1: expected a number"},
		{"1 ++ 2", x86.KindExpectNumber, source.Loc{Start: 3, End: 4}, "3-4: expected a number"},
		{"1 2", x86.KindExpectOperator, source.Loc{Start: 2, End: 3}, "2-3: expected '+' or '-'"},
		{"1 -", x86.KindTrailingOperator, source.Loc{Start: 2, End: 3}, "2-3: operator without right operand"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := emit(t, tt.input)
			var genErr *x86.Error
			if !errors.As(err, &genErr) {
				t.Fatalf("expected *x86.Error, got %v", err)
			}
			if genErr.Kind() != tt.kind || genErr.Loc != tt.loc {
				t.Errorf("got %v at %v, want %v at %v", genErr.Kind(), genErr.Loc, tt.kind, tt.loc)
			}
			if genErr.Error() != tt.msg {
				t.Errorf("Error() = %q, want %q", genErr.Error(), tt.msg)
			}
		})
	}
}
