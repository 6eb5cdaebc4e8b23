package source

// invalidRune marks a cursor position whose codepoint could not be
// decoded (illegal encoding) or that has run off the end of the buffer.
const invalidRune rune = -1

// Cursor is a non-owning, positioned reading view over a Text buffer. It
// offers the small set of scanning primitives the lexer is built from:
// peeking, single-codepoint consumption, greedy runs, and span capture
// anchored at a caller-recorded start. Cursor never reaches behind the
// lexer's back and the lexer never reaches past the cursor's primitives,
// which keeps both sides independently testable.
type Cursor struct {
	text *Text

	first Position // always 0
	last  Position // len(data), fixed

	current Position // start of the codepoint at ch
	next    Position // one past the codepoint at ch
	mark    Position // caller-recorded token start

	ch rune // decoded codepoint at current, or invalidRune
}

// NewCursor creates a cursor positioned at the start of text.
func NewCursor(text *Text) *Cursor {
	c := &Cursor{
		text:  text,
		first: 0,
		last:  Position(text.Len()),
	}
	c.ch = c.decodeAt(c.current)
	c.next = c.current + Position(c.widthAt(c.current))
	return c
}

func (c *Cursor) decodeAt(pos Position) rune {
	if int(pos) >= c.text.Len() {
		return invalidRune
	}
	r, _, result := Decode(c.text.Bytes(), int(pos))
	if result != Success {
		return invalidRune
	}
	return r
}

func (c *Cursor) widthAt(pos Position) int {
	if int(pos) >= c.text.Len() {
		return 0
	}
	_, n, result := Decode(c.text.Bytes(), int(pos))
	if result != Success {
		return 1 // illegal/exhausted sequences still advance one byte
	}
	return n
}

// Peek returns the codepoint at the cursor's current position without
// consuming it. It returns invalidRune at end-of-buffer or on an illegal
// encoding.
func (c *Cursor) Peek() rune { return c.ch }

// IsEnd reports whether the cursor has consumed the entire buffer.
func (c *Cursor) IsEnd() bool { return int(c.current) >= c.text.Len() }

// IsValid reports whether the codepoint at the current position decoded
// successfully.
func (c *Cursor) IsValid() bool { return c.ch != invalidRune }

// Advance consumes the codepoint at current and decodes the next one.
// It returns false if the cursor was already at end-of-buffer.
func (c *Cursor) Advance() bool {
	if c.IsEnd() {
		return false
	}
	c.current = c.next
	c.ch = c.decodeAt(c.current)
	c.next = c.current + Position(c.widthAt(c.current))
	return true
}

// Start records the cursor's current position as the beginning of an
// in-progress token, for later retrieval via Span/SpanTo/SpanToNext.
func (c *Cursor) Start() { c.mark = c.current }

// Mark returns the position last recorded by Start.
func (c *Cursor) Mark() Position { return c.mark }

// Current returns the cursor's current position.
func (c *Cursor) Current() Position { return c.current }

// First consumes exactly one codepoint equal to r, reporting success.
func (c *Cursor) First(r rune) bool {
	if c.ch == r {
		c.Advance()
		return true
	}
	return false
}

// FirstIf consumes exactly one codepoint satisfying pred, reporting
// success.
func (c *Cursor) FirstIf(pred func(rune) bool) bool {
	if !c.IsEnd() && pred(c.ch) {
		c.Advance()
		return true
	}
	return false
}

// CountIf consumes a maximal run of codepoints satisfying pred and
// returns how many were consumed.
func (c *Cursor) CountIf(pred func(rune) bool) int {
	n := 0
	for !c.IsEnd() && pred(c.ch) {
		c.Advance()
		n++
	}
	return n
}

// Count consumes a maximal run of codepoints equal to r and returns how
// many were consumed.
func (c *Cursor) Count(r rune) int {
	return c.CountIf(func(x rune) bool { return x == r })
}

// SkipIf consumes a maximal run of codepoints satisfying pred, reporting
// whether at least one was consumed.
func (c *Cursor) SkipIf(pred func(rune) bool) bool {
	return c.CountIf(pred) > 0
}

// Skip consumes a maximal run of codepoints equal to r, reporting whether
// at least one was consumed.
func (c *Cursor) Skip(r rune) bool {
	return c.Count(r) > 0
}

// SkipMaxIf consumes up to n codepoints satisfying pred and returns how
// many were actually consumed.
func (c *Cursor) SkipMaxIf(n int, pred func(rune) bool) int {
	consumed := 0
	for consumed < n && !c.IsEnd() && pred(c.ch) {
		c.Advance()
		consumed++
	}
	return consumed
}

// StartsWith attempts to match s codepoint-by-codepoint starting at the
// current position. On success the cursor ends up positioned just past
// the match. On failure the cursor is restored to where the match began
// -- the only backtracking primitive Cursor offers. Callers who need
// transactional behavior on the success path too must capture Current()
// themselves before calling StartsWith.
func (c *Cursor) StartsWith(s string) bool {
	savedCurrent, savedNext, savedCh := c.current, c.next, c.ch

	for _, r := range s {
		if c.IsEnd() || c.ch != r {
			c.current, c.next, c.ch = savedCurrent, savedNext, savedCh
			return false
		}
		c.Advance()
	}
	return true
}

// Span returns the span from the last recorded Start() mark up to (but
// not including) the current position.
func (c *Cursor) Span() Span { return Span{Start: c.mark, End: c.current} }

// SpanForCurrent returns the span covering exactly the codepoint at the
// current position.
func (c *Cursor) SpanForCurrent() Span { return Span{Start: c.current, End: c.next} }

// SpanTo returns the span from start up to (but not including) the
// current position.
func (c *Cursor) SpanTo(start Position) Span { return Span{Start: start, End: c.current} }

// SpanToNext returns the span from start through the codepoint at the
// current position (i.e. including it).
func (c *Cursor) SpanToNext(start Position) Span { return Span{Start: start, End: c.next} }
