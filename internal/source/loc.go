package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Loc is a half-open byte span [Start, End) into the original input.
type Loc struct {
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

// NewLoc builds a Loc from int offsets. It panics if start > end or if
// either offset does not fit into uint32.
func NewLoc(start, end int) Loc {
	s, err := safecast.Conv[uint32](start)
	if err != nil {
		panic(fmt.Errorf("loc start overflow: %w", err))
	}
	e, err := safecast.Conv[uint32](end)
	if err != nil {
		panic(fmt.Errorf("loc end overflow: %w", err))
	}
	if s > e {
		panic(fmt.Errorf("loc start %d is after end %d", s, e))
	}
	return Loc{Start: s, End: e}
}

func (l Loc) Empty() bool {
	return l.Start == l.End
}

func (l Loc) Len() uint32 {
	return l.End - l.Start
}

// String renders the span as "start-end".
func (l Loc) String() string {
	return fmt.Sprintf("%d-%d", l.Start, l.End)
}

// Cover returns the smallest span containing both l and other.
func (l Loc) Cover(other Loc) Loc {
	if other.Start < l.Start {
		l.Start = other.Start
	}
	if other.End > l.End {
		l.End = other.End
	}
	return l
}

// Within reports whether the span lies inside an input of n bytes.
func (l Loc) Within(n int) bool {
	if n < 0 || l.Start > l.End {
		return false
	}
	return int(l.End) <= n
}

// Slice returns the lexeme of input covered by the span.
// Out-of-range spans yield an empty string.
func (l Loc) Slice(input string) string {
	if !l.Within(len(input)) {
		return ""
	}
	return input[l.Start:l.End]
}
