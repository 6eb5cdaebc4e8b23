package diag

import (
	"strings"
	"testing"

	"github.com/lookbusy1344/weave/source"
)

func TestRenderSingleLineSpan(t *testing.T) {
	src, err := source.New("main.weave", []byte("let x = 1;\nlet y == 2;\n"))
	if err != nil {
		t.Fatal(err)
	}
	s := NewSink()
	// "==" at line 1 (0-based), columns 6..8.
	h := s.Add(Error, source.Span{Start: 17, End: 19}, "unexpected `==` in let binding")

	var buf strings.Builder
	if err := s.Render(&buf, src, h, 10); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	wantLines := []string{
		"error: unexpected `==` in let binding",
		"        --> main.weave:2:7",
		"         |",
		"         | let y == 2;",
		"         |       ^^",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want) {
			t.Errorf("Render output missing line %q; got:\n%s", want, out)
		}
	}
}

func TestRenderMultiLineSpanWithElision(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 12; i++ {
		b.WriteString("line")
		b.WriteString(strings.Repeat("x", 0))
		b.WriteByte('\n')
	}
	src, err := source.New("big.weave", []byte(b.String()))
	if err != nil {
		t.Fatal(err)
	}
	s := NewSink()
	// Span lines 2..10 (1-based), i.e. 9 source lines: must elide.
	start := src.Line(1).Start
	end := src.LineContent(9).End
	h := s.Add(Error, source.Span{Start: start, End: end}, "unterminated block comment")

	var buf strings.Builder
	if err := s.Render(&buf, src, h, 10); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, "/-------\\") {
		t.Error("multi-line render must open with the frame top")
	}
	if !strings.Contains(out, "     ... | |") {
		t.Error("a span over more than 6 lines must show an elision marker")
	}
	if strings.Count(out, "| | line") != 5 {
		t.Errorf("expected exactly 5 body lines (first 3 + last 2), got:\n%s", out)
	}
}

func TestRenderStopsAtLimitAndReportsRemainder(t *testing.T) {
	src, err := source.New("many.weave", []byte("a\nb\nc\n"))
	if err != nil {
		t.Fatal(err)
	}
	s := NewSink()
	root := s.Add(Error, source.Span{Start: 0, End: 1}, "root problem")
	s.AddChild(root, Hint, source.Span{Start: 0, End: 1}, "note one")
	s.AddChild(root, Hint, source.Span{Start: 0, End: 1}, "note two")

	var buf strings.Builder
	if err := s.Render(&buf, src, root, 1); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Too many error messages: 2") {
		t.Errorf("expected cutoff message naming 2 unrendered entries, got:\n%s", out)
	}
}
