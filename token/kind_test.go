package token

import "testing"

func TestKeywordLookup(t *testing.T) {
	tests := []struct {
		spelling string
		want     Kind
	}{
		{"let", KwLet},
		{"fn", KwFn},
		{"i32", KwI32},
		{"f64", KwF64},
		{"true", KwTrue},
	}
	for _, tt := range tests {
		got, ok := KeywordLookup(tt.spelling)
		if !ok || got != tt.want {
			t.Errorf("KeywordLookup(%q) = %v, %v; want %v, true", tt.spelling, got, ok, tt.want)
		}
	}

	if _, ok := KeywordLookup("not_a_keyword"); ok {
		t.Error("expected unrecognized identifier to not be a keyword")
	}
}

func TestIsKeywordRanges(t *testing.T) {
	if !KwLet.IsKeyword() {
		t.Error("KwLet should be a keyword")
	}
	if !KwI32.IsKeyword() || !KwI32.IsTypeKeyword() {
		t.Error("KwI32 should be both a keyword and a type keyword")
	}
	if KwLet.IsTypeKeyword() {
		t.Error("KwLet is a base keyword, not a type keyword")
	}
	if Identifier.IsKeyword() {
		t.Error("Identifier must not be classified as a keyword")
	}
}

func TestIsPunctuation(t *testing.T) {
	for _, k := range []Kind{Plus, Comma, EqualEqual, LShiftEqual, LParen, RBrace} {
		if !k.IsPunctuation() {
			t.Errorf("%v should be punctuation", k)
		}
	}
	if KwLet.IsPunctuation() {
		t.Error("keywords are not punctuation")
	}
}

func TestDelimiters(t *testing.T) {
	if !LParen.IsOpenDelimiter() || !RBrace.IsCloseDelimiter() {
		t.Error("delimiter classification wrong")
	}
	close, ok := MatchingDelimiter(LParen)
	if !ok || close != RParen {
		t.Errorf("MatchingDelimiter(LParen) = %v, %v; want RParen, true", close, ok)
	}
	open, ok := MatchingDelimiter(RBracket)
	if !ok || open != LBracket {
		t.Errorf("MatchingDelimiter(RBracket) = %v, %v; want LBracket, true", open, ok)
	}
	if _, ok := MatchingDelimiter(Plus); ok {
		t.Error("Plus has no matching delimiter")
	}
}

func TestIsLiteral(t *testing.T) {
	for _, k := range []Kind{IntegerLiteral, FloatLiteral, StringLiteral, CharLiteral} {
		if !k.IsLiteral() {
			t.Errorf("%v should be a literal kind", k)
		}
	}
	if Identifier.IsLiteral() {
		t.Error("Identifier is not a literal kind")
	}
}

func TestKindStringSpellings(t *testing.T) {
	tests := map[Kind]string{
		Plus: "+", EqualEqual: "==", Arrow: "->", KwFn: "fn", LBrace: "{",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", int(k), got, want)
		}
	}
}
