package token

import (
	"fmt"
	"io"

	"github.com/lookbusy1344/weave/source"
)

// Dump writes the canonical textual dump of a token stream: one line per
// token in the form
//
//	<KindName> "<lexeme>" [span start..end] {trivia counts L:R}
//
// followed, for literal kinds, by a payload line, and -- when trivia is
// non-nil -- one further indented line per leading/trailing trivia
// entry the token references into it. This format is used by the test
// suite and by the CLI's -dump-tokens mode; it is not a wire format --
// the token stream itself is purely in-memory.
func Dump(w io.Writer, toks []Token, trivia []Trivia, src *source.Text) error {
	for _, tok := range toks {
		lexeme := string(src.Text(tok.Span))
		if _, err := fmt.Fprintf(w, "%s %q [span %d..%d] {trivia %d:%d}\n",
			tok.Kind, lexeme, tok.Span.Start, tok.Span.End,
			tok.Leading.Len(), tok.Trailing.Len()); err != nil {
			return err
		}
		if err := dumpPayload(w, tok); err != nil {
			return err
		}
		if trivia != nil {
			if err := dumpTriviaRange(w, "leading", tok.Leading, trivia, src); err != nil {
				return err
			}
			if err := dumpTriviaRange(w, "trailing", tok.Trailing, trivia, src); err != nil {
				return err
			}
		}
	}
	return nil
}

func dumpTriviaRange(w io.Writer, label string, r TriviaRange, trivia []Trivia, src *source.Text) error {
	for _, t := range trivia[r.Start:r.End] {
		if _, err := fmt.Fprintf(w, "  %s %s [span %d..%d]\n", label, t.Kind, t.Span.Start, t.Span.End); err != nil {
			return err
		}
	}
	return nil
}

func dumpPayload(w io.Writer, tok Token) error {
	switch v := tok.Payload.(type) {
	case IntegerLiteralValue:
		_, err := fmt.Fprintf(w, "  integer prefix=%s suffix=%s value=%q\n", v.Prefix, v.Suffix, v.Text)
		return err
	case FloatLiteralValue:
		_, err := fmt.Fprintf(w, "  float prefix=%s suffix=%s value=%q\n", v.Prefix, v.Suffix, v.Text)
		return err
	case StringLiteralValue:
		_, err := fmt.Fprintf(w, "  string prefix=%s value=%q\n", v.Prefix, v.Value)
		return err
	case CharLiteralValue:
		_, err := fmt.Fprintf(w, "  char prefix=%s value=%q\n", v.Prefix, v.Value)
		return err
	default:
		return nil
	}
}
