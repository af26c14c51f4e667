// Package location tracks byte ranges over source text.
package location

import "fmt"

// Pos is a byte offset into the source buffer.
type Pos uint

// Span is the half-open byte range [Start, End).
type Span struct {
	Start Pos
	End   Pos
}

// NewSpan returns [start, end). It panics if start > end.
func NewSpan(start, end Pos) Span {
	if start > end {
		panic(fmt.Sprintf("location: invalid span %d..%d", start, end))
	}
	return Span{Start: start, End: end}
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() uint {
	return uint(s.End - s.Start)
}

// Contains reports whether pos falls inside the span.
func (s Span) Contains(pos Pos) bool {
	return s.Start <= pos && pos < s.End
}

// Cover returns the smallest span that includes both s and o.
func (s Span) Cover(o Span) Span {
	return Span{Start: min(s.Start, o.Start), End: max(s.End, o.End)}
}

// Before reports whether s ends at or before o starts.
func (s Span) Before(o Span) bool {
	return s.End <= o.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Spanned pairs a payload with the source range it was produced from.
type Spanned[T any] struct {
	Span Span
	Data T
}

// New wraps data with the span [start, end).
func New[T any](start, end Pos, data T) Spanned[T] {
	return Spanned[T]{Span: NewSpan(start, end), Data: data}
}

// Wrap attaches an existing span to data.
func Wrap[T any](span Span, data T) Spanned[T] {
	return Spanned[T]{Span: span, Data: data}
}
