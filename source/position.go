// Package source owns the text buffer, line index, UTF-8 codec, character
// sets, and scanning cursor that the lexer is built on.
package source

import "fmt"

// Position is a 32-bit byte offset into a single text buffer. Positions
// from different buffers are never meaningfully compared; callers are
// responsible for keeping a Position paired with the Text it was measured
// against.
type Position uint32

// Span is a half-open [Start, End) byte range within one text buffer.
type Span struct {
	Start Position
	End   Position
}

// NewSpan builds a span, asserting Start <= End.
func NewSpan(start, end Position) Span {
	if start > end {
		panic(fmt.Sprintf("source: invalid span [%d, %d)", start, end))
	}
	return Span{Start: start, End: end}
}

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool { return s.Start == s.End }

// Len returns the number of bytes covered by the span.
func (s Span) Len() uint32 { return uint32(s.End - s.Start) }

// Contains reports whether other lies entirely within s, inclusive of
// both endpoints.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// ContainsPosition reports whether pos lies within s. The end is treated
// as closed here (not half-open) so that the position immediately after a
// token's last byte still counts as "in" the token for cursor-relative
// diagnostics.
func (s Span) ContainsPosition(pos Position) bool {
	return s.Start <= pos && pos <= s.End
}

// Combine returns the smallest span covering every span passed in: the
// minimum of all starts and the maximum of all ends. Combine is
// commutative and associative; Combine() of zero spans panics, since
// there is no sensible empty-span identity tied to any particular buffer.
func Combine(spans ...Span) Span {
	if len(spans) == 0 {
		panic("source: Combine requires at least one span")
	}
	out := spans[0]
	for _, s := range spans[1:] {
		if s.Start < out.Start {
			out.Start = s.Start
		}
		if s.End > out.End {
			out.End = s.End
		}
	}
	return out
}

// LinePosition is a zero-based (line, column) pair. Renderers add one to
// both fields for display.
type LinePosition struct {
	Line   uint32
	Column uint32
}

// LineSpan is a pair of line positions bracketing a Span.
type LineSpan struct {
	Start LinePosition
	End   LinePosition
}
