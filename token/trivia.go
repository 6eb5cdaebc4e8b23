package token

import "github.com/lookbusy1344/weave/source"

// TriviaKind classifies a span of source that carries no grammatical
// meaning but is kept for tooling fidelity (comments, documentation) or
// token separation (whitespace, newlines).
type TriviaKind int

const (
	Whitespace TriviaKind = iota
	NewLine
	SingleLineComment
	MultiLineComment
	SingleLineDocumentation
	MultiLineDocumentation
	TriviaError
)

func (k TriviaKind) String() string {
	switch k {
	case Whitespace:
		return "Whitespace"
	case NewLine:
		return "NewLine"
	case SingleLineComment:
		return "SingleLineComment"
	case MultiLineComment:
		return "MultiLineComment"
	case SingleLineDocumentation:
		return "SingleLineDocumentation"
	case MultiLineDocumentation:
		return "MultiLineDocumentation"
	case TriviaError:
		return "Error"
	default:
		return "TriviaKind(?)"
	}
}

// IsDocumentation reports whether k is one of the two documentation
// comment kinds.
func (k TriviaKind) IsDocumentation() bool {
	return k == SingleLineDocumentation || k == MultiLineDocumentation
}

// Trivia is a (kind, span) pair. Trivia carries no payload of its own;
// its text is recovered from the source buffer via its span.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
}

// TriviaRange indexes a contiguous run of a Lexer's shared trivia slice.
// Start and End follow half-open-range convention: trivia[Start:End].
type TriviaRange struct {
	Start int
	End   int
}

// Len returns the number of trivia entries in the range.
func (r TriviaRange) Len() int { return r.End - r.Start }
