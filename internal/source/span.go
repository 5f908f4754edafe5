package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Span is a half-open byte range inside a single expression text.
type Span struct {
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

// MakeSpan builds a span from int offsets; it panics on offsets that do not
// fit an uint32, which no query expression can reach.
func MakeSpan(start, end int) Span {
	s, err := safecast.Conv[uint32](start)
	if err != nil {
		panic(fmt.Errorf("span start overflow: %w", err))
	}
	e, err := safecast.Conv[uint32](end)
	if err != nil {
		panic(fmt.Errorf("span end overflow: %w", err))
	}
	return Span{Start: s, End: e}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Contains reports whether other lies fully inside s.
func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Slice returns the text covered by the span. Out-of-range spans yield "".
func (s Span) Slice(text string) string {
	if s.End < s.Start || int(s.End) > len(text) {
		return ""
	}
	return text[s.Start:s.End]
}
