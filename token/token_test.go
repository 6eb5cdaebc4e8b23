package token

import (
	"testing"

	"github.com/lookbusy1344/weave/intern"
	"github.com/lookbusy1344/weave/source"
)

func TestTokenIdentifierAccessor(t *testing.T) {
	p := intern.NewPool()
	view := p.Intern([]byte("count"))
	tok := Token{Kind: Identifier, Payload: view}

	got, ok := tok.Identifier()
	if !ok || got != view {
		t.Errorf("Identifier() = %v, %v; want %v, true", got, ok, view)
	}

	notIdent := Token{Kind: KwLet}
	if _, ok := notIdent.Identifier(); ok {
		t.Error("Identifier() should fail for a non-Identifier token")
	}
}

func TestTokenLiteralAccessorsGatedByKind(t *testing.T) {
	intTok := Token{Kind: IntegerLiteral, Payload: IntegerLiteralValue{Text: "42"}}
	if v, ok := intTok.Integer(); !ok || v.Text != "42" {
		t.Errorf("Integer() = %+v, %v", v, ok)
	}
	if _, ok := intTok.Float(); ok {
		t.Error("Float() should fail on an IntegerLiteral token")
	}

	floatTok := Token{Kind: FloatLiteral, Payload: FloatLiteralValue{Text: "1.5"}}
	if v, ok := floatTok.Float(); !ok || v.Text != "1.5" {
		t.Errorf("Float() = %+v, %v", v, ok)
	}

	strTok := Token{Kind: StringLiteral, Payload: StringLiteralValue{Value: "hi"}}
	if v, ok := strTok.StringValue(); !ok || v.Value != "hi" {
		t.Errorf("StringValue() = %+v, %v", v, ok)
	}

	charTok := Token{Kind: CharLiteral, Payload: CharLiteralValue{Value: 'x'}}
	if v, ok := charTok.Char(); !ok || v.Value != 'x' {
		t.Errorf("Char() = %+v, %v", v, ok)
	}
}

func TestTokenSpanRoundTripsThroughText(t *testing.T) {
	src, err := source.New("t.weave", []byte("let x = 1;"))
	if err != nil {
		t.Fatal(err)
	}
	tok := Token{Kind: KwLet, Span: source.NewSpan(0, 3)}
	if got := string(src.Text(tok.Span)); got != "let" {
		t.Errorf("src.Text(tok.Span) = %q, want %q", got, "let")
	}
}
