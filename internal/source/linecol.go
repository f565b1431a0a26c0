package source

import (
	"fmt"

	"fortio.org/safecast"
)

// LineCol represents a human-readable position in the input.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

func (lc LineCol) String() string {
	return fmt.Sprintf("%d:%d", lc.Line, lc.Col)
}

// LineIndex holds the byte offsets of every '\n' in an input.
type LineIndex []uint32

// BuildLineIndex scans content once and records newline offsets.
func BuildLineIndex(content string) LineIndex {
	out := make(LineIndex, 0, 4)
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			off, err := safecast.Conv[uint32](i)
			if err != nil {
				panic(fmt.Errorf("line index overflow: %w", err))
			}
			out = append(out, off)
		}
	}
	return out
}

// Resolve converts a span into line and column positions.
func (idx LineIndex) Resolve(l Loc) (start, end LineCol) {
	return idx.toLineCol(l.Start), idx.toLineCol(l.End)
}

func (idx LineIndex) toLineCol(off uint32) LineCol {
	if len(idx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// бинпоиск: находим наибольший idx[i] < off
	lo, hi := 0, len(idx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if idx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	line := hi
	if line < 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	lineNo, err := safecast.Conv[uint32](line + 2)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	return LineCol{Line: lineNo, Col: off - (idx[line] + 1) + 1}
}
