// Package lexer turns a source.Text into a stream of token.Token
// values, reporting every lexical problem it finds to a diag.Sink and
// always continuing: a malformed literal or an unknown byte never stops
// the scan, it becomes an Error token or a best-effort literal with a
// diagnostic attached.
//
// The state machine and its entry points follow a NextToken/readChar/
// peekChar scanner shape, generalized from a flat token set to Weave's
// trivia-carrying one.
package lexer

import (
	"github.com/lookbusy1344/weave/diag"
	"github.com/lookbusy1344/weave/intern"
	"github.com/lookbusy1344/weave/source"
	"github.com/lookbusy1344/weave/token"
)

// TriviaMode controls which trivia kinds a Lexer attaches to tokens.
// Trivia the mode does not keep is skipped without being recorded, so
// only TriviaAll leaves enough spans to reconstruct the source exactly.
type TriviaMode int

const (
	// TriviaNone attaches no trivia to tokens; comments and whitespace
	// are scanned and skipped but never recorded.
	TriviaNone TriviaMode = iota
	// TriviaDocumentation keeps only documentation comments (/// and
	// /** */); plain comments and whitespace are discarded.
	TriviaDocumentation
	// TriviaAll keeps every trivia kind: whitespace, newlines, plain
	// comments, and documentation comments.
	TriviaAll
)

// Lexer is a one-shot, forward-only scanner over a single source.Text.
// Its control flow passes through the scanner's states -- in-trivia,
// in-lexeme, in-block-comment, in-string, in-character -- as
// recursive-descent calls rather than an explicit state field. It is
// not safe for concurrent use.
type Lexer struct {
	sink     *diag.Sink
	src      *source.Text
	cur      *source.Cursor
	interner intern.Interner
	mode     TriviaMode

	trivia []token.Trivia
}

// New creates a Lexer over src, reporting diagnostics to sink and
// interning identifier text through interner.
func New(sink *diag.Sink, src *source.Text, interner intern.Interner, mode TriviaMode) *Lexer {
	return &Lexer{
		sink:     sink,
		src:      src,
		cur:      source.NewCursor(src),
		interner: interner,
		mode:     mode,
	}
}

// Trivia returns the full trivia arena accumulated so far. Token.Leading
// and Token.Trailing index into this slice; it grows monotonically and
// is never truncated mid-scan.
func (l *Lexer) Trivia() []token.Trivia { return l.trivia }

// Next scans and returns the next token. Once EndOfFile has been
// returned, every subsequent call returns another zero-width EndOfFile
// token at the same position.
func (l *Lexer) Next() token.Token {
	leading := l.scanTrivia(true)

	if l.cur.IsEnd() {
		pos := l.cur.Current()
		trailing := l.emptyTriviaRange()
		return token.Token{
			Kind:     token.EndOfFile,
			Span:     source.Span{Start: pos, End: pos},
			Leading:  leading,
			Trailing: trailing,
		}
	}

	tok := l.scanLexeme()
	tok.Leading = leading
	tok.Trailing = l.scanTrivia(false)
	return tok
}

// All scans the remaining source to EndOfFile and returns every token,
// including the terminal EndOfFile token.
func (l *Lexer) All() []token.Token {
	var out []token.Token
	for {
		tok := l.Next()
		out = append(out, tok)
		if tok.Kind == token.EndOfFile {
			return out
		}
	}
}

func (l *Lexer) emptyTriviaRange() token.TriviaRange {
	n := len(l.trivia)
	return token.TriviaRange{Start: n, End: n}
}

// scanLexeme dispatches to a sub-scanner for the one significant lexeme
// starting at the cursor's current position, in classification order:
// raw string/identifier prefix, then identifier/keyword, then numeric
// literal, then char/string literal, then punctuation, else a
// one-codepoint Error token.
func (l *Lexer) scanLexeme() token.Token {
	start := l.cur.Current()
	l.cur.Start()
	ch := l.cur.Peek()

	switch {
	case l.hasSpecialPrefix():
		return l.scanSpecialPrefix(start)
	case source.IsIdentifierStart(ch):
		return l.scanIdentifierOrKeyword(start)
	case source.IsDecDigit(ch):
		return l.scanNumber(start)
	case ch == '"':
		return l.scanString(start, token.StringPrefixDefault, false, 0)
	case ch == '\'':
		return l.scanChar(start, token.StringPrefixDefault)
	default:
		if tok, ok := l.scanPunctuation(start); ok {
			return tok
		}
		return l.scanUnknownCharacter(start)
	}
}

func (l *Lexer) scanUnknownCharacter(start source.Position) token.Token {
	l.cur.Advance()
	span := l.cur.SpanTo(start)
	l.sink.Add(diag.Error, span, "unknown character")
	return token.Token{Kind: token.Error, Span: span}
}

// intern exposes the lexer's interner to its sub-scanners.
func (l *Lexer) intern(b []byte) intern.View { return l.interner.Intern(b) }
