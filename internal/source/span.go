package source

import (
	"fmt"
)

// Span is a half-open range [Start, End) in the global location space. Both
// ends normally land in the same file; the Manager treats cross-file spans as
// empty.
type Span struct {
	Start Loc // в байтах включительно
	End   Loc // в байтах не включительно
}

// SpanOf builds a span from a start location and a byte length.
func SpanOf(start Loc, length uint32) Span {
	return Span{Start: start, End: start + Loc(length)}
}

func (s Span) Empty() bool {
	return s.Start >= s.End
}

func (s Span) Len() uint32 {
	if s.Empty() {
		return 0
	}
	return uint32(s.End - s.Start)
}

// Contains reports whether the location falls inside the span.
func (s Span) Contains(loc Loc) bool {
	return loc >= s.Start && loc < s.End
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

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", uint32(s.Start), uint32(s.End))
}
