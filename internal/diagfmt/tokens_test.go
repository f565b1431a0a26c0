package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"sumc/internal/lexer"
	"sumc/internal/token"
)

func lexOK(t *testing.T, input string) []token.Token {
	t.Helper()
	toks, err := lexer.Lex(input)
	if err != nil {
		t.Fatalf("Lex(%q): %v", input, err)
	}
	return toks
}

func TestFormatTokensPretty(t *testing.T) {
	input := " 12 + 34"
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, input, lexOK(t, input)); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", buf.String())
	}
	want := `  1: Number(12)   "12"         at 1:2-1:4 (1-3)`
	if lines[0] != want {
		t.Errorf("line 0 = %q, want %q", lines[0], want)
	}
	if !strings.Contains(lines[1], "Plus") || !strings.Contains(lines[1], "(4-5)") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestFormatTokensJSON(t *testing.T) {
	input := "42 - 7"
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, input, lexOK(t, input)); err != nil {
		t.Fatal(err)
	}
	var out []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(out))
	}
	if out[0]["kind"] != "Number" || out[0]["value"] != float64(42) || out[0]["text"] != "42" {
		t.Errorf("token 0 = %v", out[0])
	}
	if _, ok := out[1]["value"]; ok {
		t.Errorf("operator must not carry a value: %v", out[1])
	}
	if out[1]["start"] != float64(3) || out[1]["end"] != float64(4) {
		t.Errorf("token 1 span = %v-%v", out[1]["start"], out[1]["end"])
	}
}

func TestFormatTokensJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, "", lexOK(t, "")); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty input should encode as [], got %q", buf.String())
	}
}

func TestFormatTokensMsgpack(t *testing.T) {
	input := " 12 + 34 - 5 "
	var buf bytes.Buffer
	if err := FormatTokens(&buf, FormatMsgpack, input, lexOK(t, input)); err != nil {
		t.Fatal(err)
	}
	out, err := DecodeTokensMsgpack(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 5 {
		t.Fatalf("expected 5 tokens, got %d", len(out))
	}
	if out[4].Kind != "Number" || out[4].Value == nil || *out[4].Value != 5 || out[4].Start != 11 || out[4].End != 12 {
		t.Errorf("token 4 = %+v", out[4])
	}
	if out[3].Kind != "Minus" || out[3].Value != nil {
		t.Errorf("token 3 = %+v", out[3])
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"pretty", "json", "msgpack"} {
		if _, ok := ParseFormat(s); !ok {
			t.Errorf("ParseFormat(%q) rejected", s)
		}
	}
	if _, ok := ParseFormat("yaml"); ok {
		t.Error("ParseFormat accepted yaml")
	}
	if err := FormatTokens(&bytes.Buffer{}, Format("yaml"), "", nil); err == nil {
		t.Error("FormatTokens accepted unknown format")
	}
}
