package testkit

import (
	"fmt"
	"strconv"

	"sumc/internal/source"
	"sumc/internal/token"
)

// CheckTokenInvariants runs the structural invariants of a successful lex:
// 1) every span is non-empty and within input bounds
// 2) spans are strictly ordered and do not overlap
// 3) bytes between spans are whitespace only (space, '\n', '\t')
// 4) each lexeme matches its kind, and Number values parse back from the lexeme
func CheckTokenInvariants(input string, toks []token.Token) error {
	var prevEnd uint32
	for i, tok := range toks {
		sp := tok.Loc
		if sp.Empty() {
			return fmt.Errorf("token %d has empty span %v", i, sp)
		}
		if !sp.Within(len(input)) {
			return fmt.Errorf("token %d span %v is outside input of %d bytes", i, sp, len(input))
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d span %v overlaps previous token ending at %d", i, sp, prevEnd)
		}
		if err := checkGap(input, source.Loc{Start: prevEnd, End: sp.Start}); err != nil {
			return fmt.Errorf("before token %d: %w", i, err)
		}
		if err := checkLexeme(tok, sp.Slice(input)); err != nil {
			return fmt.Errorf("token %d: %w", i, err)
		}
		prevEnd = sp.End
	}

	end := source.NewLoc(0, len(input)).End
	if err := checkGap(input, source.Loc{Start: prevEnd, End: end}); err != nil {
		return fmt.Errorf("after last token: %w", err)
	}
	return nil
}

func checkGap(input string, gap source.Loc) error {
	for i := gap.Start; i < gap.End; i++ {
		switch input[i] {
		case ' ', '\n', '\t':
		default:
			return fmt.Errorf("untokenized byte %q at %d", input[i], i)
		}
	}
	return nil
}

func checkLexeme(tok token.Token, text string) error {
	switch tok.Value.Kind {
	case token.Plus:
		if text != "+" {
			return fmt.Errorf("plus token covers %q", text)
		}
	case token.Minus:
		if text != "-" {
			return fmt.Errorf("minus token covers %q", text)
		}
	case token.Number:
		n, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return fmt.Errorf("number token covers %q: %w", text, err)
		}
		if n != tok.Value.N {
			return fmt.Errorf("number token value %d, lexeme %q", tok.Value.N, text)
		}
	default:
		return fmt.Errorf("unknown token kind %v", tok.Value.Kind)
	}
	return nil
}
