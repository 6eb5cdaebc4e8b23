package lexer

import (
	"fmt"
	"strings"

	"github.com/lookbusy1344/weave/diag"
	"github.com/lookbusy1344/weave/source"
	"github.com/lookbusy1344/weave/token"
)

func isASCIIDecDigitByte(b byte) bool { return b >= '0' && b <= '9' }

func isASCIIHexDigitByte(b byte) bool {
	return isASCIIDecDigitByte(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// scanNumber dispatches on a radix prefix (0b/0o/0x) and otherwise
// scans a decimal literal that may promote to a float.
func (l *Lexer) scanNumber(start source.Position) token.Token {
	if l.cur.Peek() == '0' {
		switch l.byteAt(1) {
		case 'b', 'B':
			l.cur.Advance()
			l.cur.Advance()
			return l.finishIntegerLiteral(start, token.Binary, source.IsBinDigit)
		case 'o', 'O':
			l.cur.Advance()
			l.cur.Advance()
			return l.finishIntegerLiteral(start, token.Octal, source.IsOctDigit)
		case 'x', 'X':
			l.cur.Advance()
			l.cur.Advance()
			return l.finishHexNumber(start)
		}
	}
	return l.finishDecimalNumber(start)
}

func (l *Lexer) finishIntegerLiteral(start source.Position, prefix token.IntegerPrefix, isDigit func(rune) bool) token.Token {
	digitsStart := l.cur.Current()
	text := l.scanDigitsWithSeparators(isDigit)
	if text == "" {
		l.sink.Add(diag.Error, l.cur.SpanTo(digitsStart), "numeric literal has no digits")
	}
	suffix, rawSuffix := l.scanIntegerSuffix()
	return token.Token{
		Kind: token.IntegerLiteral,
		Span: l.cur.SpanTo(start),
		Payload: token.IntegerLiteralValue{
			Prefix: prefix, Suffix: suffix, Text: text, RawSuffix: rawSuffix,
		},
	}
}

func (l *Lexer) finishHexNumber(start source.Position) token.Token {
	text := l.scanDigitsWithSeparators(source.IsHexDigit)

	var fracText, expText string
	isFloat := false

	if l.byteAt(0) == '.' && isASCIIHexDigitByte(l.byteAt(1)) {
		l.cur.Advance()
		fracText = l.scanDigitsWithSeparators(source.IsHexDigit)
		isFloat = true
	}
	if l.byteAt(0) == 'p' || l.byteAt(0) == 'P' {
		isFloat = true
		expText = l.scanExponent()
	}

	if !isFloat {
		suffix, rawSuffix := l.scanIntegerSuffix()
		return token.Token{
			Kind: token.IntegerLiteral,
			Span: l.cur.SpanTo(start),
			Payload: token.IntegerLiteralValue{
				Prefix: token.Hexadecimal, Suffix: suffix, Text: text, RawSuffix: rawSuffix,
			},
		}
	}

	full := text
	if fracText != "" {
		full += "." + fracText
	}
	full += expText
	suffix, rawSuffix := l.scanFloatSuffix()
	return token.Token{
		Kind: token.FloatLiteral,
		Span: l.cur.SpanTo(start),
		Payload: token.FloatLiteralValue{
			Prefix: token.Hexadecimal, Suffix: suffix, Text: full, RawSuffix: rawSuffix,
		},
	}
}

func (l *Lexer) finishDecimalNumber(start source.Position) token.Token {
	text := l.scanDigitsWithSeparators(source.IsDecDigit)

	var fracText, expText string
	isFloat := false

	if l.byteAt(0) == '.' && isASCIIDecDigitByte(l.byteAt(1)) {
		l.cur.Advance()
		fracText = l.scanDigitsWithSeparators(source.IsDecDigit)
		isFloat = true
	}
	if l.byteAt(0) == 'e' || l.byteAt(0) == 'E' {
		isFloat = true
		expText = l.scanExponent()
	}

	if !isFloat {
		suffix, rawSuffix := l.scanIntegerSuffix()
		return token.Token{
			Kind: token.IntegerLiteral,
			Span: l.cur.SpanTo(start),
			Payload: token.IntegerLiteralValue{
				Prefix: token.Default, Suffix: suffix, Text: text, RawSuffix: rawSuffix,
			},
		}
	}

	full := text
	if fracText != "" {
		full += "." + fracText
	}
	full += expText
	suffix, rawSuffix := l.scanFloatSuffix()
	return token.Token{
		Kind: token.FloatLiteral,
		Span: l.cur.SpanTo(start),
		Payload: token.FloatLiteralValue{
			Prefix: token.Default, Suffix: suffix, Text: full, RawSuffix: rawSuffix,
		},
	}
}

// scanExponent consumes an e/E or p/P exponent marker, an optional sign,
// and its decimal digits, reporting MissingDigits-equivalent when none
// follow.
func (l *Lexer) scanExponent() string {
	var sb strings.Builder
	sb.WriteByte(l.byteAt(0))
	l.cur.Advance()

	if l.cur.Peek() == '+' || l.cur.Peek() == '-' {
		sb.WriteRune(l.cur.Peek())
		l.cur.Advance()
	}

	digitsStart := l.cur.Current()
	digits := l.scanDigitsWithSeparators(source.IsDecDigit)
	if digits == "" {
		l.sink.Add(diag.Error, l.cur.SpanTo(digitsStart), "exponent has no digits")
	}
	sb.WriteString(digits)
	return sb.String()
}

// scanDigitsWithSeparators consumes a run of digits satisfying isDigit
// with `_` separators allowed between digits only. A separator that
// isn't flanked by digits on both sides (touching the radix prefix, the
// decimal point, an exponent sign, or another separator) is reported
// and dropped; the returned text never contains `_`.
func (l *Lexer) scanDigitsWithSeparators(isDigit func(rune) bool) string {
	var sb strings.Builder
	sawDigit := false
	var lastSepSpan source.Span
	hadTrailingSep := false

	for {
		ch := l.cur.Peek()
		switch {
		case isDigit(ch):
			sb.WriteRune(ch)
			l.cur.Advance()
			sawDigit = true
			hadTrailingSep = false
		case ch == '_':
			sepStart := l.cur.Current()
			l.cur.Advance()
			lastSepSpan = l.cur.SpanTo(sepStart)
			if hadTrailingSep {
				l.sink.Add(diag.Error, lastSepSpan, "adjacent digit separators")
			} else if !sawDigit {
				l.sink.Add(diag.Error, lastSepSpan, "digit separator not allowed here")
			}
			sawDigit = false
			hadTrailingSep = true
		default:
			if hadTrailingSep {
				l.sink.Add(diag.Error, lastSepSpan, "digit separator not allowed here")
			}
			return sb.String()
		}
	}
}

func (l *Lexer) scanIntegerSuffix() (token.IntegerSuffix, string) {
	if !source.IsIdentifierStart(l.cur.Peek()) {
		return token.IntegerSuffixDefault, ""
	}
	start := l.cur.Current()
	l.cur.CountIf(source.IsIdentifierContinue)
	raw := string(l.src.Text(l.cur.SpanTo(start)))
	if suffix, ok := token.LookupIntegerSuffix(raw); ok {
		return suffix, ""
	}
	l.sink.Add(diag.Error, l.cur.SpanTo(start), fmt.Sprintf("unrecognized numeric suffix %q", raw))
	return token.IntegerSuffixDefault, raw
}

func (l *Lexer) scanFloatSuffix() (token.FloatSuffix, string) {
	if !source.IsIdentifierStart(l.cur.Peek()) {
		return token.FloatSuffixDefault, ""
	}
	start := l.cur.Current()
	l.cur.CountIf(source.IsIdentifierContinue)
	raw := string(l.src.Text(l.cur.SpanTo(start)))
	if suffix, ok := token.LookupFloatSuffix(raw); ok {
		return suffix, ""
	}
	l.sink.Add(diag.Error, l.cur.SpanTo(start), fmt.Sprintf("unrecognized numeric suffix %q", raw))
	return token.FloatSuffixDefault, raw
}
