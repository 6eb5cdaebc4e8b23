package tools

import (
	"testing"

	"github.com/lookbusy1344/weave/diag"
	"github.com/lookbusy1344/weave/intern"
	"github.com/lookbusy1344/weave/lexer"
	"github.com/lookbusy1344/weave/source"
	"github.com/lookbusy1344/weave/token"
)

func mustSource(t *testing.T, name, text string) *source.Text {
	t.Helper()
	src, err := source.New(name, []byte(text))
	if err != nil {
		t.Fatalf("source.New: %v", err)
	}
	return src
}

func mustLexAll(t *testing.T, src *source.Text) ([]token.Token, []token.Trivia) {
	t.Helper()
	sink := diag.NewSink()
	lx := lexer.New(sink, src, intern.NewPool(), lexer.TriviaAll)
	return lx.All(), lx.Trivia()
}
