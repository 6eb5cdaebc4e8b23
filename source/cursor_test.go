package source

import "testing"

func newTestCursor(t *testing.T, s string) *Cursor {
	t.Helper()
	text, err := New("t.weave", []byte(s))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return NewCursor(text)
}

func TestCursorAdvanceWalksIdentifierThenFloat(t *testing.T) {
	// Mirrors the shipped "A 21.37f32" cursor scenario: an identifier,
	// whitespace, then a float literal with a typed suffix.
	c := newTestCursor(t, "A 21.37f32")

	c.Start()
	if !c.FirstIf(func(r rune) bool { return r == 'A' }) {
		t.Fatal("expected to consume 'A'")
	}
	if got := string(c.text.Text(c.Span())); got != "A" {
		t.Fatalf("identifier span = %q, want %q", got, "A")
	}

	if !c.Skip(' ') {
		t.Fatal("expected to consume whitespace")
	}

	c.Start()
	c.CountIf(IsDecDigit)
	c.First('.')
	c.CountIf(IsDecDigit)
	c.CountIf(IsIdentifierContinue) // suffix: f32
	if got := string(c.text.Text(c.Span())); got != "21.37f32" {
		t.Fatalf("float span = %q, want %q", got, "21.37f32")
	}
	if !c.IsEnd() {
		t.Error("expected cursor to be at end of buffer")
	}
}

func TestCursorPeekDoesNotConsume(t *testing.T) {
	c := newTestCursor(t, "xy")
	if c.Peek() != 'x' {
		t.Fatalf("Peek() = %q, want 'x'", c.Peek())
	}
	if c.Peek() != 'x' {
		t.Error("Peek() must not advance the cursor")
	}
	c.Advance()
	if c.Peek() != 'y' {
		t.Fatalf("Peek() after Advance = %q, want 'y'", c.Peek())
	}
}

func TestCursorStartsWithRestoresOnFailure(t *testing.T) {
	c := newTestCursor(t, "abcdef")
	before := c.Current()

	if c.StartsWith("abx") {
		t.Fatal("StartsWith(\"abx\") should fail against \"abcdef\"")
	}
	if c.Current() != before {
		t.Error("cursor must be restored to its start position on a failed match")
	}

	if !c.StartsWith("abc") {
		t.Fatal("StartsWith(\"abc\") should succeed")
	}
	if c.Peek() != 'd' {
		t.Errorf("after a successful StartsWith, cursor should sit just past the match, got %q", c.Peek())
	}
}

func TestCursorSkipMaxIf(t *testing.T) {
	c := newTestCursor(t, "aaaaab")
	n := c.SkipMaxIf(3, func(r rune) bool { return r == 'a' })
	if n != 3 {
		t.Fatalf("SkipMaxIf consumed %d, want 3", n)
	}
	if c.Peek() != 'a' {
		t.Errorf("expected two 'a's to remain, got %q next", c.Peek())
	}
}

func TestCursorEndOfBufferIsInvalid(t *testing.T) {
	c := newTestCursor(t, "")
	if !c.IsEnd() {
		t.Error("empty buffer should start at end")
	}
	if c.IsValid() {
		t.Error("position at end-of-buffer should not be 'valid'")
	}
	if c.Advance() {
		t.Error("Advance() at end-of-buffer should report false")
	}
}

func TestCursorSpanVariants(t *testing.T) {
	c := newTestCursor(t, "ab")
	start := c.Current()
	c.Start()
	c.Advance() // consume 'a'

	if got := c.Span(); got != NewSpan(start, 1) {
		t.Errorf("Span() = %v, want [%d,1)", got, start)
	}
	if got := c.SpanForCurrent(); got != NewSpan(1, 2) {
		t.Errorf("SpanForCurrent() = %v, want [1,2)", got)
	}
	if got := c.SpanTo(start); got != NewSpan(start, 1) {
		t.Errorf("SpanTo(start) = %v, want [%d,1)", got, start)
	}
	if got := c.SpanToNext(start); got != NewSpan(start, 2) {
		t.Errorf("SpanToNext(start) = %v, want [%d,2)", got, start)
	}
}
