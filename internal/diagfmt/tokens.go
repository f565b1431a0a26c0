package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"sumc/internal/source"
	"sumc/internal/token"
)

// TokenOutput is the serialised form of one token.
type TokenOutput struct {
	Kind  string  `json:"kind" msgpack:"kind"`
	Value *uint64 `json:"value,omitempty" msgpack:"value,omitempty"`
	Text  string  `json:"text" msgpack:"text"`
	Start uint32  `json:"start" msgpack:"start"`
	End   uint32  `json:"end" msgpack:"end"`
}

const lexemeColumn = 12

func tokenOutputs(input string, tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		o := TokenOutput{
			Kind:  tok.Value.Kind.String(),
			Text:  tok.Loc.Slice(input),
			Start: tok.Loc.Start,
			End:   tok.Loc.End,
		}
		if tok.Value.Kind == token.Number {
			n := tok.Value.N
			o.Value = &n
		}
		out = append(out, o)
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате:
//
//	  1: Number(12)   "12"         at 1:2-1:4 (1-3)
func FormatTokensPretty(w io.Writer, input string, tokens []token.Token) error {
	idx := source.BuildLineIndex(input)
	for i, tok := range tokens {
		startPos, endPos := idx.Resolve(tok.Loc)
		lexeme := runewidth.FillRight(strconv.Quote(tok.Loc.Slice(input)), lexemeColumn)
		_, err := fmt.Fprintf(w, "%3d: %-12s %s at %s-%s (%s)\n",
			i+1, tok.Value.String(), lexeme, startPos, endPos, tok.Loc)
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, input string, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tokenOutputs(input, tokens))
}

// FormatTokensMsgpack writes the tokens as one msgpack array.
func FormatTokensMsgpack(w io.Writer, input string, tokens []token.Token) error {
	return msgpack.NewEncoder(w).Encode(tokenOutputs(input, tokens))
}

// DecodeTokensMsgpack reads back what FormatTokensMsgpack wrote.
func DecodeTokensMsgpack(r io.Reader) ([]TokenOutput, error) {
	var out []TokenOutput
	if err := msgpack.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode tokens: %w", err)
	}
	return out, nil
}

// FormatTokens dispatches on format.
func FormatTokens(w io.Writer, format Format, input string, tokens []token.Token) error {
	switch format {
	case FormatPretty:
		return FormatTokensPretty(w, input, tokens)
	case FormatJSON:
		return FormatTokensJSON(w, input, tokens)
	case FormatMsgpack:
		return FormatTokensMsgpack(w, input, tokens)
	}
	return fmt.Errorf("unknown format: %s", format)
}
