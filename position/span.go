package position

import "fmt"

// Span is a half-open range [Start, End) within the input text, used for
// multi-character elements (strings, comments, whole containers) where a
// single point isn't enough to describe what went wrong or what the
// emitter is about to fill.
//
// Span is a value type with exported fields. Always pass by value.
type Span struct {
	Start Position
	End   Position
}

// PointSpan returns a zero-width Span at p, the canonical way to build a
// Span from a single token position.
func PointSpan(p Position) Span {
	return Span{Start: p, End: p}
}

// IsPoint reports whether the span has zero width (Start == End).
func (s Span) IsPoint() bool {
	return s.Start == s.End
}

// String renders "start" for a point span, or "start-end" for a range.
func (s Span) String() string {
	if s.IsPoint() {
		return s.Start.String()
	}
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
