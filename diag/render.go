package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/lookbusy1344/weave/source"
)

// elisionThreshold is the number of source lines a multi-line span can
// span before Render collapses the middle into an elision marker,
// showing only the first three and last two lines.
const elisionThreshold = 6

// Render writes h and its entire descendant tree (pre-order) to w in
// the fixed diagnostic frame format, stopping after limit entries and
// reporting how many were left unrendered. Render never returns an
// error of its own; it only propagates a write failure from w.
func (s *Sink) Render(w io.Writer, src *source.Text, h Handle, limit int) error {
	var order []Handle
	var walk func(Handle)
	walk = func(x Handle) {
		order = append(order, x)
		for _, c := range s.Children(x) {
			walk(c)
		}
	}
	walk(h)

	for i, hh := range order {
		if i >= limit {
			_, err := fmt.Fprintf(w, "Too many error messages: %d\n", len(order)-limit)
			return err
		}
		if err := s.renderOne(w, src, hh); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sink) renderOne(w io.Writer, src *source.Text, h Handle) error {
	e := s.Entry(h)
	ls := src.LineSpanOf(e.Span)

	if _, err := fmt.Fprintf(w, "%s: %s\n", e.Level, e.Message); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "        --> %s:%d:%d\n", src.Name(), ls.Start.Line+1, ls.Start.Column+1); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "         |"); err != nil {
		return err
	}

	if ls.Start.Line == ls.End.Line {
		return renderSingleLine(w, src, e, ls)
	}
	return renderMultiLine(w, src, ls)
}

func renderSingleLine(w io.Writer, src *source.Text, e Entry, ls source.LineSpan) error {
	line := src.LineContentText(int(ls.Start.Line))
	if _, err := fmt.Fprintf(w, "         | %s\n", line); err != nil {
		return err
	}

	underlineLen := e.Span.Len()
	if underlineLen == 0 {
		underlineLen = 1
	}
	caret := strings.Repeat(" ", int(ls.Start.Column)) + strings.Repeat("^", int(underlineLen))
	_, err := fmt.Fprintf(w, "         | %s\n", caret)
	return err
}

func renderMultiLine(w io.Writer, src *source.Text, ls source.LineSpan) error {
	if _, err := fmt.Fprintln(w, `         | /-------\`); err != nil {
		return err
	}

	printLine := func(i int) error {
		_, err := fmt.Fprintf(w, "%8d | | %s\n", i+1, src.LineContentText(i))
		return err
	}

	start, end := int(ls.Start.Line), int(ls.End.Line)
	if end-start+1 <= elisionThreshold {
		for i := start; i <= end; i++ {
			if err := printLine(i); err != nil {
				return err
			}
		}
	} else {
		for i := start; i < start+3; i++ {
			if err := printLine(i); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "     ... | |"); err != nil {
			return err
		}
		for i := end - 1; i <= end; i++ {
			if err := printLine(i); err != nil {
				return err
			}
		}
	}

	underline := strings.Repeat("-", int(ls.End.Column))
	_, err := fmt.Fprintf(w, "         | |%s^\n", underline)
	return err
}
