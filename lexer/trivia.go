package lexer

import (
	"github.com/lookbusy1344/weave/diag"
	"github.com/lookbusy1344/weave/source"
	"github.com/lookbusy1344/weave/token"
)

// byteAt returns the raw byte offset bytes ahead of the cursor's current
// position, or 0 past end-of-buffer. Comment and newline delimiters are
// always single-byte ASCII, so raw byte lookahead is safe here even
// though the cursor itself works in codepoints -- the same shortcut the
// teacher's own peekChar takes by indexing l.input directly.
func (l *Lexer) byteAt(offset int) byte {
	pos := int(l.cur.Current()) + offset
	data := l.src.Bytes()
	if pos < 0 || pos >= len(data) {
		return 0
	}
	return data[pos]
}

func (l *Lexer) triviaRange(start int) token.TriviaRange {
	return token.TriviaRange{Start: start, End: len(l.trivia)}
}

func (l *Lexer) shouldRecord(kind token.TriviaKind) bool {
	switch l.mode {
	case TriviaAll:
		return true
	case TriviaDocumentation:
		return kind.IsDocumentation()
	default:
		return false
	}
}

func (l *Lexer) addTrivia(kind token.TriviaKind, span source.Span) {
	if !l.shouldRecord(kind) {
		return
	}
	l.trivia = append(l.trivia, token.Trivia{Kind: kind, Span: span})
}

// scanTrivia consumes a maximal run of trivia. When leading is false
// (trailing trivia), the run stops at -- without consuming -- the first
// newline or end-of-buffer: the newline and everything past it belongs
// to the next token's leading trivia.
func (l *Lexer) scanTrivia(leading bool) token.TriviaRange {
	start := len(l.trivia)
	for !l.cur.IsEnd() {
		switch {
		case l.byteAt(0) == '\n':
			if !leading {
				return l.triviaRange(start)
			}
			l.scanNewline()
		case l.byteAt(0) == '\r' && l.byteAt(1) == '\n':
			if !leading {
				return l.triviaRange(start)
			}
			l.scanNewline()
		case source.IsWhitespace(l.cur.Peek()):
			l.scanWhitespace()
		case l.byteAt(0) == '/' && (l.byteAt(1) == '/' || l.byteAt(1) == '*'):
			if !l.scanComment() {
				return l.triviaRange(start)
			}
		default:
			return l.triviaRange(start)
		}
	}
	return l.triviaRange(start)
}

func (l *Lexer) scanWhitespace() {
	start := l.cur.Current()
	l.cur.CountIf(source.IsWhitespace)
	l.addTrivia(token.Whitespace, l.cur.SpanTo(start))
}

func (l *Lexer) scanNewline() {
	start := l.cur.Current()
	if !l.cur.StartsWith("\r\n") {
		l.cur.Advance()
	}
	l.addTrivia(token.NewLine, l.cur.SpanTo(start))
}

// scanComment consumes one line or block comment and reports whether a
// comment actually started at the cursor (a lone '/' is punctuation,
// not trivia, and is left untouched for the caller to classify).
func (l *Lexer) scanComment() bool {
	switch {
	case l.byteAt(1) == '/':
		if l.byteAt(2) == '/' && l.byteAt(3) != '/' {
			l.scanLineComment(token.SingleLineDocumentation, 3)
		} else {
			l.scanLineComment(token.SingleLineComment, 2)
		}
		return true
	case l.byteAt(1) == '*':
		if l.byteAt(2) == '*' && l.byteAt(3) != '*' && l.byteAt(3) != '/' {
			l.scanBlockComment(token.MultiLineDocumentation, 3)
		} else {
			l.scanBlockComment(token.MultiLineComment, 2)
		}
		return true
	default:
		return false
	}
}

func (l *Lexer) scanLineComment(kind token.TriviaKind, prefixLen int) {
	start := l.cur.Current()
	for i := 0; i < prefixLen; i++ {
		l.cur.Advance()
	}
	for !l.cur.IsEnd() && l.byteAt(0) != '\n' && !(l.byteAt(0) == '\r' && l.byteAt(1) == '\n') {
		l.cur.Advance()
	}
	l.addTrivia(kind, l.cur.SpanTo(start))
}

func (l *Lexer) scanBlockComment(kind token.TriviaKind, prefixLen int) {
	start := l.cur.Current()
	for i := 0; i < prefixLen; i++ {
		l.cur.Advance()
	}

	depth := 1
	for depth > 0 {
		if l.cur.IsEnd() {
			span := l.cur.SpanTo(start)
			l.sink.Add(diag.Error, span, "unterminated block comment")
			l.addTrivia(token.TriviaError, span)
			return
		}
		switch {
		case l.byteAt(0) == '/' && l.byteAt(1) == '*':
			l.cur.Advance()
			l.cur.Advance()
			depth++
		case l.byteAt(0) == '*' && l.byteAt(1) == '/':
			l.cur.Advance()
			l.cur.Advance()
			depth--
		default:
			l.cur.Advance()
		}
	}
	l.addTrivia(kind, l.cur.SpanTo(start))
}
