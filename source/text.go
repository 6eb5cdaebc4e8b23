package source

import (
	"fmt"
	"sort"
)

// Text owns an immutable, UTF-8-validated byte buffer plus the
// line-start offsets computed from it in a single linear scan.
//
// Line terminators are "\n" and "\r\n" only; a lone "\r" is intra-line
// whitespace and does not start a new line, matching the lexer's own
// trivia rules.
type Text struct {
	name  string
	data  []byte
	lines []Position // lines[0] == 0, strictly increasing
}

// New validates data as UTF-8 and builds the line index. name is a
// display path used only by diagnostic rendering.
func New(name string, data []byte) (*Text, error) {
	if !ValidateString(data) {
		return nil, fmt.Errorf("source: %s: invalid UTF-8", name)
	}

	lines := make([]Position, 1, 16)
	lines[0] = 0
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\n':
			lines = append(lines, Position(i+1))
		case '\r':
			if i+1 < len(data) && data[i+1] == '\n' {
				i++
				lines = append(lines, Position(i+1))
			}
			// A lone \r is whitespace, not a line break.
		}
	}

	return &Text{name: name, data: data, lines: lines}, nil
}

// Name returns the display path passed to New.
func (t *Text) Name() string { return t.name }

// Bytes returns the full underlying buffer.
func (t *Text) Bytes() []byte { return t.data }

// Len returns the buffer length in bytes.
func (t *Text) Len() int { return len(t.data) }

// LineCount returns the number of lines, always at least 1 (even for an
// empty buffer).
func (t *Text) LineCount() int { return len(t.lines) }

// Line returns the span of line i including its terminator, or running
// to end-of-buffer for the final line.
func (t *Text) Line(i int) Span {
	start := t.lines[i]
	var end Position
	if i+1 < len(t.lines) {
		end = t.lines[i+1]
	} else {
		end = Position(len(t.data))
	}
	return Span{Start: start, End: end}
}

// LineContent returns the span of line i with its trailing terminator
// (\n or \r\n) stripped.
func (t *Text) LineContent(i int) Span {
	full := t.Line(i)
	end := full.End
	if end > full.Start && t.data[end-1] == '\n' {
		end--
		if end > full.Start && t.data[end-1] == '\r' {
			end--
		}
	}
	return Span{Start: full.Start, End: end}
}

// LineText returns the bytes of line i including its terminator.
func (t *Text) LineText(i int) []byte {
	s := t.Line(i)
	return t.data[s.Start:s.End]
}

// LineContentText returns the bytes of line i with its terminator
// stripped.
func (t *Text) LineContentText(i int) []byte {
	s := t.LineContent(i)
	return t.data[s.Start:s.End]
}

// LinePosition converts a byte offset into a zero-based (line, column)
// pair via binary search over the line table.
func (t *Text) LinePosition(pos Position) LinePosition {
	// sort.Search finds the first line start strictly greater than pos;
	// the containing line is one before that.
	i := sort.Search(len(t.lines), func(i int) bool { return t.lines[i] > pos })
	line := i - 1
	if line < 0 {
		line = 0
	}
	return LinePosition{Line: uint32(line), Column: uint32(pos - t.lines[line])}
}

// LineSpanOf converts a Span into a pair of line positions.
func (t *Text) LineSpanOf(span Span) LineSpan {
	return LineSpan{Start: t.LinePosition(span.Start), End: t.LinePosition(span.End)}
}

// Text returns the bytes covered by span.
func (t *Text) Text(span Span) []byte {
	if int(span.End) > len(t.data) {
		panic(fmt.Sprintf("source: span %v exceeds buffer length %d", span, len(t.data)))
	}
	return t.data[span.Start:span.End]
}
