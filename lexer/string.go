package lexer

import (
	"strconv"
	"strings"

	"github.com/lookbusy1344/weave/diag"
	"github.com/lookbusy1344/weave/source"
	"github.com/lookbusy1344/weave/token"
)

// scanString scans a string literal body starting at the opening quote.
// raw strings (hashCount >= 0 came from an "r" or "r#...#" prefix)
// never process escapes; their closing delimiter is a `"` immediately
// followed by exactly hashCount `#` characters.
func (l *Lexer) scanString(start source.Position, prefix token.StringPrefix, raw bool, hashCount int) token.Token {
	l.cur.Advance() // consume opening quote

	var sb strings.Builder
	for {
		if l.cur.IsEnd() {
			span := l.cur.SpanTo(start)
			l.sink.Add(diag.Error, span, "unterminated string literal")
			return token.Token{Kind: token.StringLiteral, Span: span, Payload: token.StringLiteralValue{Prefix: prefix, Value: sb.String()}}
		}

		ch := l.cur.Peek()

		if ch == '"' {
			if !raw {
				l.cur.Advance()
				return l.finishStringLiteral(start, prefix, sb.String())
			}
			if l.rawClosingMatches(hashCount) {
				l.cur.Advance()
				for i := 0; i < hashCount; i++ {
					l.cur.Advance()
				}
				return l.finishStringLiteral(start, prefix, sb.String())
			}
			// Not enough trailing '#' to close: the quote is literal body.
			sb.WriteRune(ch)
			l.cur.Advance()
			continue
		}

		if !raw && ch == '\n' {
			span := l.cur.SpanTo(start)
			l.sink.Add(diag.Error, span, "unterminated string literal")
			return token.Token{Kind: token.StringLiteral, Span: span, Payload: token.StringLiteralValue{Prefix: prefix, Value: sb.String()}}
		}

		if !raw && ch == '\\' {
			sb.WriteRune(l.scanEscape())
			continue
		}

		sb.WriteRune(ch)
		l.cur.Advance()
	}
}

func (l *Lexer) rawClosingMatches(hashCount int) bool {
	for i := 0; i < hashCount; i++ {
		if l.byteAt(1+i) != '#' {
			return false
		}
	}
	return true
}

func (l *Lexer) finishStringLiteral(start source.Position, prefix token.StringPrefix, value string) token.Token {
	span := l.cur.SpanTo(start)
	return token.Token{Kind: token.StringLiteral, Span: span, Payload: token.StringLiteralValue{Prefix: prefix, Value: value}}
}

// scanChar scans a character literal starting at the opening quote.
func (l *Lexer) scanChar(start source.Position, prefix token.StringPrefix) token.Token {
	l.cur.Advance() // consume opening quote

	var value rune
	count := 0
	overflow := false

	for {
		if l.cur.IsEnd() {
			span := l.cur.SpanTo(start)
			l.sink.Add(diag.Error, span, "unterminated character literal")
			return token.Token{Kind: token.CharLiteral, Span: span, Payload: token.CharLiteralValue{Prefix: prefix, Value: value}}
		}

		ch := l.cur.Peek()
		if ch == '\'' {
			l.cur.Advance()
			break
		}
		if ch == '\n' {
			span := l.cur.SpanTo(start)
			l.sink.Add(diag.Error, span, "unterminated character literal")
			return token.Token{Kind: token.CharLiteral, Span: span, Payload: token.CharLiteralValue{Prefix: prefix, Value: value}}
		}

		var r rune
		if ch == '\\' {
			r = l.scanEscape()
		} else {
			r = ch
			l.cur.Advance()
		}

		count++
		if count == 1 {
			value = r
		} else {
			overflow = true
		}
	}

	span := l.cur.SpanTo(start)
	switch {
	case count == 0:
		l.sink.Add(diag.Error, span, "empty character literal")
	case overflow:
		l.sink.Add(diag.Error, span, "character literal contains more than one codepoint")
	}
	return token.Token{Kind: token.CharLiteral, Span: span, Payload: token.CharLiteralValue{Prefix: prefix, Value: value}}
}

// scanEscape consumes one escape sequence (the cursor sits on the
// leading backslash) and returns its decoded rune, or U+FFFD with a
// diagnostic attached if the sequence is malformed or unrecognized.
func (l *Lexer) scanEscape() rune {
	start := l.cur.Current()
	l.cur.Advance() // consume backslash

	if l.cur.IsEnd() {
		l.sink.Add(diag.Error, l.cur.SpanTo(start), "unterminated escape sequence")
		return source.ReplacementChar
	}

	switch l.cur.Peek() {
	case '0':
		l.cur.Advance()
		return 0
	case 'a':
		l.cur.Advance()
		return '\a'
	case 'b':
		l.cur.Advance()
		return '\b'
	case 'f':
		l.cur.Advance()
		return '\f'
	case 'n':
		l.cur.Advance()
		return '\n'
	case 'r':
		l.cur.Advance()
		return '\r'
	case 't':
		l.cur.Advance()
		return '\t'
	case 'v':
		l.cur.Advance()
		return '\v'
	case '\\':
		l.cur.Advance()
		return '\\'
	case '\'':
		l.cur.Advance()
		return '\''
	case '"':
		l.cur.Advance()
		return '"'
	case '$':
		l.cur.Advance()
		return '$'
	case 'x':
		l.cur.Advance()
		return l.scanHexByteEscape(start)
	case 'u':
		l.cur.Advance()
		return l.scanUnicodeEscape(start)
	default:
		l.cur.Advance()
		l.sink.Add(diag.Error, l.cur.SpanTo(start), "unknown escape sequence")
		return source.ReplacementChar
	}
}

func (l *Lexer) scanHexByteEscape(start source.Position) rune {
	digitsStart := l.cur.Current()
	n := l.cur.SkipMaxIf(2, source.IsHexDigit)
	if n != 2 {
		l.sink.Add(diag.Error, l.cur.SpanTo(start), `\x escape requires exactly two hex digits`)
		return source.ReplacementChar
	}
	v, _ := strconv.ParseInt(string(l.src.Text(l.cur.SpanTo(digitsStart))), 16, 32)
	return rune(v)
}

func (l *Lexer) scanUnicodeEscape(start source.Position) rune {
	if l.cur.Peek() != '{' {
		l.sink.Add(diag.Error, l.cur.SpanTo(start), `\u escape must begin with '{'`)
		return source.ReplacementChar
	}
	l.cur.Advance()

	digitsStart := l.cur.Current()
	n := l.cur.SkipMaxIf(8, source.IsHexDigit)
	digits := string(l.src.Text(l.cur.SpanTo(digitsStart)))

	if n == 0 || l.cur.Peek() != '}' {
		l.sink.Add(diag.Error, l.cur.SpanTo(start), `\u escape must contain 1-8 hex digits followed by '}'`)
		if l.cur.Peek() == '}' {
			l.cur.Advance()
		}
		return source.ReplacementChar
	}
	l.cur.Advance() // consume '}'

	v, err := strconv.ParseInt(digits, 16, 64)
	if err != nil || v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
		l.sink.Add(diag.Error, l.cur.SpanTo(start), "unicode escape value out of range")
		return source.ReplacementChar
	}
	return rune(v)
}
