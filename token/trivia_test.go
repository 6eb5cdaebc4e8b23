package token

import "testing"

func TestTriviaKindString(t *testing.T) {
	tests := map[TriviaKind]string{
		Whitespace:              "Whitespace",
		NewLine:                 "NewLine",
		SingleLineComment:       "SingleLineComment",
		MultiLineComment:        "MultiLineComment",
		SingleLineDocumentation: "SingleLineDocumentation",
		MultiLineDocumentation:  "MultiLineDocumentation",
		TriviaError:             "Error",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(k), got, want)
		}
	}
}

func TestTriviaIsDocumentation(t *testing.T) {
	for _, k := range []TriviaKind{SingleLineDocumentation, MultiLineDocumentation} {
		if !k.IsDocumentation() {
			t.Errorf("%v should be documentation", k)
		}
	}
	for _, k := range []TriviaKind{Whitespace, NewLine, SingleLineComment, MultiLineComment} {
		if k.IsDocumentation() {
			t.Errorf("%v should not be documentation", k)
		}
	}
}

func TestTriviaRangeLen(t *testing.T) {
	r := TriviaRange{Start: 3, End: 7}
	if r.Len() != 4 {
		t.Errorf("Len() = %d, want 4", r.Len())
	}
	empty := TriviaRange{Start: 5, End: 5}
	if empty.Len() != 0 {
		t.Errorf("Len() = %d, want 0", empty.Len())
	}
}
