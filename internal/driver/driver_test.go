package driver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"sumc/internal/diag"
	"sumc/internal/observ"
	"sumc/internal/testkit"
)

func TestTokenize(t *testing.T) {
	timer := observ.NewTimer()
	res, err := Tokenize(" 12 + 34 - 5 ", timer)
	if err != nil {
		t.Fatal(err)
	}
	if res.Err != nil {
		t.Fatalf("unexpected diagnostic: %v", res.Err)
	}
	if len(res.Tokens) != 5 {
		t.Errorf("expected 5 tokens, got %d", len(res.Tokens))
	}
	r := timer.Report()
	if len(r.Phases) != 1 || r.Phases[0].Name != "lex" || r.Phases[0].Note != "5 tokens" {
		t.Errorf("unexpected timings %+v", r)
	}
}

func TestTokenize_Diagnostic(t *testing.T) {
	res, err := Tokenize("3 * 4", nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Err == nil || res.Err.Code() != diag.LexInvalidChar {
		t.Fatalf("expected LEX1001, got %v", res.Err)
	}
	if res.Tokens != nil {
		t.Errorf("tokens must be dropped on error, got %v", res.Tokens)
	}
}

func TestCompile(t *testing.T) {
	timer := observ.NewTimer()
	res, err := Compile("1+2", timer)
	if err != nil {
		t.Fatal(err)
	}
	if res.Err != nil {
		t.Fatalf("unexpected diagnostic: %v", res.Err)
	}
	if !strings.Contains(res.Assembly, "  mov rax, 1\n  add rax, 2\n  ret\n") {
		t.Errorf("unexpected assembly:\n%s", res.Assembly)
	}
	if len(timer.Report().Phases) != 2 {
		t.Errorf("expected lex and codegen phases")
	}
}

func TestCompile_Diagnostics(t *testing.T) {
	tests := []struct {
		input string
		stage diag.Stage
		code  diag.Code
	}{
		{"1 $ 2", diag.StageLexer, diag.LexInvalidChar},
		{"", diag.StageCodegen, diag.GenEmptyExpression},
		{"1 + + 2", diag.StageCodegen, diag.GenExpectNumber},
		{"1 +", diag.StageCodegen, diag.GenTrailingOperator},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res, err := Compile(tt.input, nil)
			if err != nil {
				t.Fatal(err)
			}
			if res.Err == nil {
				t.Fatalf("expected diagnostic, got assembly %q", res.Assembly)
			}
			if res.Err.Stage != tt.stage || res.Err.Code() != tt.code {
				t.Errorf("got %v/%v, want %v/%v", res.Err.Stage, res.Err.Code(), tt.stage, tt.code)
			}
			if res.Assembly != "" {
				t.Error("no assembly expected on failure")
			}
		})
	}
}

func TestTokenizeAll(t *testing.T) {
	inputs := make([]string, 64)
	for i := range inputs {
		if i%5 == 0 {
			inputs[i] = fmt.Sprintf("%d ? 1", i)
			continue
		}
		inputs[i] = fmt.Sprintf("%d + %d - 1", i, i*2)
	}

	results, err := TokenizeAll(context.Background(), inputs, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(inputs) {
		t.Fatalf("expected %d results, got %d", len(inputs), len(results))
	}
	for i, res := range results {
		if res.Input != inputs[i] {
			t.Fatalf("result %d belongs to %q, want %q", i, res.Input, inputs[i])
		}
		if i%5 == 0 {
			if res.Err == nil || res.Err.Code() != diag.LexInvalidChar {
				t.Errorf("result %d: expected invalid char, got %v", i, res.Err)
			}
			continue
		}
		if res.Err != nil {
			t.Errorf("result %d: unexpected error %v", i, res.Err)
			continue
		}
		if err := testkit.CheckTokenInvariants(res.Input, res.Tokens); err != nil {
			t.Errorf("result %d: %v", i, err)
		}
	}
}

func TestTokenizeAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := TokenizeAll(ctx, []string{"1", "2", "3"}, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTokenizeAll_Empty(t *testing.T) {
	results, err := TokenizeAll(context.Background(), nil, 0)
	if err != nil || len(results) != 0 {
		t.Fatalf("got %v, %v", results, err)
	}
}
