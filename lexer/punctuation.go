package lexer

import (
	"github.com/lookbusy1344/weave/source"
	"github.com/lookbusy1344/weave/token"
)

type punctuationEntry struct {
	text string
	kind token.Kind
}

// punctuationTable is tried in order, so it must list longer spellings
// before any shorter spelling that is one of their prefixes (e.g. "..="
// before ".." before ".").
var punctuationTable = []punctuationEntry{
	{"<<=", token.LShiftEqual},
	{">>=", token.RShiftEqual},
	{"..=", token.DotDotEqual},

	{"==", token.EqualEqual},
	{"!=", token.BangEqual},
	{"<=", token.LessEqual},
	{">=", token.GreaterEqual},
	{"=>", token.FatArrow},
	{"->", token.Arrow},
	{"..", token.DotDot},
	{"::", token.ColonColon},
	{"+=", token.PlusEqual},
	{"-=", token.MinusEqual},
	{"*=", token.StarEqual},
	{"/=", token.SlashEqual},
	{"%=", token.PercentEqual},
	{"&=", token.AmpEqual},
	{"|=", token.PipeEqual},
	{"^=", token.CaretEqual},
	{"&&", token.AmpAmp},
	{"||", token.PipePipe},
	{"<<", token.LShift},
	{">>", token.RShift},

	{"+", token.Plus}, {"-", token.Minus}, {"*", token.Star}, {"/", token.Slash},
	{"%", token.Percent}, {"&", token.Ampersand}, {"|", token.Pipe}, {"^", token.Caret},
	{"~", token.Tilde}, {"!", token.Bang}, {"=", token.Equal}, {"<", token.Less},
	{">", token.Greater}, {",", token.Comma}, {":", token.Colon}, {";", token.Semicolon},
	{".", token.Dot}, {"?", token.Question}, {"@", token.At}, {"$", token.Dollar},

	{"(", token.LParen}, {")", token.RParen},
	{"[", token.LBracket}, {"]", token.RBracket},
	{"{", token.LBrace}, {"}", token.RBrace},
}

// scanPunctuation matches the longest punctuation spelling starting at
// the cursor's current position and reports whether any matched.
// Grouping-delimiter balance is never checked here; that is a parser
// concern per token.MatchingDelimiter's own doc comment.
func (l *Lexer) scanPunctuation(start source.Position) (token.Token, bool) {
	for _, p := range punctuationTable {
		if l.cur.StartsWith(p.text) {
			return token.Token{Kind: p.kind, Span: l.cur.SpanTo(start)}, true
		}
	}
	return token.Token{}, false
}
