package lexer

import (
	"github.com/lookbusy1344/weave/diag"
	"github.com/lookbusy1344/weave/source"
	"github.com/lookbusy1344/weave/token"
)

// hasSpecialPrefix reports whether the lexeme starting at the cursor is
// one of the prefixed forms that must be classified before the plain
// identifier/keyword path runs: a raw identifier (r#ident), a raw
// string (r"..." or r#"...#"...), or an encoding-prefixed string or
// character literal (u8"...", u"...", U'x').
func (l *Lexer) hasSpecialPrefix() bool {
	switch l.byteAt(0) {
	case 'r':
		return l.byteAt(1) == '"' || l.byteAt(1) == '#'
	case 'u':
		if l.byteAt(1) == '8' {
			return l.byteAt(2) == '"' || l.byteAt(2) == '\''
		}
		return l.byteAt(1) == '"' || l.byteAt(1) == '\''
	case 'U':
		return l.byteAt(1) == '"' || l.byteAt(1) == '\''
	default:
		return false
	}
}

func (l *Lexer) scanSpecialPrefix(start source.Position) token.Token {
	switch l.byteAt(0) {
	case 'r':
		return l.scanRawStringOrIdentifier(start)
	case 'u':
		if l.byteAt(1) == '8' {
			l.cur.Advance()
			l.cur.Advance()
			return l.scanPrefixedLiteral(start, token.PrefixU8)
		}
		l.cur.Advance()
		return l.scanPrefixedLiteral(start, token.PrefixU16)
	default: // 'U'
		l.cur.Advance()
		return l.scanPrefixedLiteral(start, token.PrefixU32)
	}
}

func (l *Lexer) scanPrefixedLiteral(start source.Position, prefix token.StringPrefix) token.Token {
	if l.cur.Peek() == '\'' {
		return l.scanChar(start, prefix)
	}
	return l.scanString(start, prefix, false, 0)
}

// scanRawStringOrIdentifier handles everything starting with 'r': a raw
// string r"..." or r#"..."# (with any number of matching '#'), or a raw
// identifier r#ident whose spelling is never looked up as a keyword.
func (l *Lexer) scanRawStringOrIdentifier(start source.Position) token.Token {
	l.cur.Advance() // consume 'r'

	if l.cur.Peek() == '"' {
		return l.scanString(start, token.StringPrefixDefault, true, 0)
	}

	hashes := 0
	for l.byteAt(hashes) == '#' {
		hashes++
	}
	if l.byteAt(hashes) == '"' {
		for i := 0; i < hashes; i++ {
			l.cur.Advance()
		}
		return l.scanString(start, token.StringPrefixDefault, true, hashes)
	}

	// Not a raw string after all: a single '#' followed by an identifier
	// is a raw identifier, suppressing keyword classification.
	l.cur.Advance() // consume the '#'
	return l.scanRawIdentifierBody(start)
}

func (l *Lexer) scanRawIdentifierBody(start source.Position) token.Token {
	bodyStart := l.cur.Current()
	if !source.IsIdentifierStart(l.cur.Peek()) {
		span := l.cur.SpanTo(start)
		l.sink.Add(diag.Error, span, "expected an identifier after `r#`")
		return token.Token{Kind: token.Error, Span: span}
	}
	l.cur.CountIf(source.IsIdentifierContinue)
	full := l.cur.SpanTo(start)
	body := l.src.Text(source.Span{Start: bodyStart, End: l.cur.Current()})
	return token.Token{Kind: token.Identifier, Span: full, Payload: l.intern(body)}
}

// scanIdentifierOrKeyword scans a plain identifier lexeme and classifies
// it as a keyword if its spelling matches one exactly.
func (l *Lexer) scanIdentifierOrKeyword(start source.Position) token.Token {
	l.cur.CountIf(source.IsIdentifierContinue)
	span := l.cur.SpanTo(start)
	text := l.src.Text(span)

	if kind, ok := token.KeywordLookup(string(text)); ok {
		return token.Token{Kind: kind, Span: span}
	}
	return token.Token{Kind: token.Identifier, Span: span, Payload: l.intern(text)}
}
