package token

import (
	"github.com/lookbusy1344/weave/intern"
	"github.com/lookbusy1344/weave/source"
)

// Token is a single lexed unit: a kind, the span of its significant
// lexeme (trivia excluded), the ranges of leading/trailing trivia
// surrounding it, and -- for literal and identifier kinds -- a typed
// payload. Token is a small, trivially-copyable record; the trivia it
// references and any payload it carries live in the arena owned by the
// Lexer that produced it.
type Token struct {
	Kind     Kind
	Span     source.Span
	Leading  TriviaRange
	Trailing TriviaRange
	Payload  interface{}
}

// Identifier returns the token's interned text and true if Kind is
// Identifier.
func (t Token) Identifier() (intern.View, bool) {
	if t.Kind != Identifier {
		return intern.View{}, false
	}
	v, ok := t.Payload.(intern.View)
	return v, ok
}

// Integer returns the token's integer payload and true if Kind is
// IntegerLiteral.
func (t Token) Integer() (IntegerLiteralValue, bool) {
	if t.Kind != IntegerLiteral {
		return IntegerLiteralValue{}, false
	}
	v, ok := t.Payload.(IntegerLiteralValue)
	return v, ok
}

// Float returns the token's float payload and true if Kind is
// FloatLiteral.
func (t Token) Float() (FloatLiteralValue, bool) {
	if t.Kind != FloatLiteral {
		return FloatLiteralValue{}, false
	}
	v, ok := t.Payload.(FloatLiteralValue)
	return v, ok
}

// StringValue returns the token's string payload and true if Kind is
// StringLiteral.
func (t Token) StringValue() (StringLiteralValue, bool) {
	if t.Kind != StringLiteral {
		return StringLiteralValue{}, false
	}
	v, ok := t.Payload.(StringLiteralValue)
	return v, ok
}

// Char returns the token's character payload and true if Kind is
// CharLiteral.
func (t Token) Char() (CharLiteralValue, bool) {
	if t.Kind != CharLiteral {
		return CharLiteralValue{}, false
	}
	v, ok := t.Payload.(CharLiteralValue)
	return v, ok
}
