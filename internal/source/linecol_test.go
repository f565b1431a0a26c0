package source

import "testing"

func TestLineIndex_Resolve(t *testing.T) {
	input := "12 +\n 34\n-5"
	idx := BuildLineIndex(input)
	if len(idx) != 2 {
		t.Fatalf("expected 2 newlines, got %d", len(idx))
	}

	tests := []struct {
		name       string
		loc        Loc
		start, end LineCol
	}{
		{"first line", Loc{0, 2}, LineCol{1, 1}, LineCol{1, 3}},
		{"operator before newline", Loc{3, 4}, LineCol{1, 4}, LineCol{1, 5}},
		{"second line", Loc{6, 8}, LineCol{2, 2}, LineCol{2, 4}},
		{"third line", Loc{9, 10}, LineCol{3, 1}, LineCol{3, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e := idx.Resolve(tt.loc)
			if s != tt.start || e != tt.end {
				t.Errorf("Resolve(%v) = %v..%v, want %v..%v", tt.loc, s, e, tt.start, tt.end)
			}
		})
	}
}

func TestLineIndex_SingleLine(t *testing.T) {
	idx := BuildLineIndex("42")
	s, e := idx.Resolve(Loc{0, 2})
	if s.String() != "1:1" || e.String() != "1:3" {
		t.Errorf("got %s-%s", s, e)
	}
}
