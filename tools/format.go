package tools

import (
	"fmt"
	"strings"

	"github.com/lookbusy1344/weave/diag"
	"github.com/lookbusy1344/weave/intern"
	"github.com/lookbusy1344/weave/lexer"
	"github.com/lookbusy1344/weave/source"
	"github.com/lookbusy1344/weave/token"
)

// FormatStyle selects an overall formatting density, mirroring the
// teacher's assembly-line formatter's compact/expanded knobs, retargeted
// to indentation and blank-line handling around a token stream.
type FormatStyle int

const (
	FormatDefault  FormatStyle = iota // One token-kind's worth of spacing; source line breaks preserved
	FormatCompact                     // Collapse blank lines, minimal padding
	FormatExpanded                    // Blank line after every closing brace at depth 0
)

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	Style          FormatStyle
	IndentWidth    int  // Spaces per nesting depth
	ColumnWidth    int  // Target line width (advisory, used for comment alignment)
	AlignComments  bool // Pad trailing line comments to ColumnWidth
	TrailingCommas bool // Insert a trailing comma before a closing delimiter that starts its own line
}

// DefaultFormatOptions returns default formatter options.
func DefaultFormatOptions() *FormatOptions {
	return &FormatOptions{
		Style:          FormatDefault,
		IndentWidth:    4,
		ColumnWidth:    100,
		AlignComments:  true,
		TrailingCommas: true,
	}
}

// CompactFormatOptions returns options for compact formatting.
func CompactFormatOptions() *FormatOptions {
	opts := DefaultFormatOptions()
	opts.Style = FormatCompact
	opts.AlignComments = false
	opts.TrailingCommas = false
	return opts
}

// ExpandedFormatOptions returns options for expanded formatting.
func ExpandedFormatOptions() *FormatOptions {
	opts := DefaultFormatOptions()
	opts.Style = FormatExpanded
	opts.IndentWidth = 4
	return opts
}

// Formatter re-emits a lexed token stream as normalized Weave source
// text. It never re-derives grammar (there is no parser in this
// repository): indentation tracks brace/paren/bracket nesting depth, and
// spacing between adjacent tokens is decided from a fixed kind-pair
// table, without a full semantic model.
type Formatter struct {
	options *FormatOptions

	src    *source.Text
	toks   []token.Token
	trivia []token.Trivia

	output      strings.Builder
	depth       int
	atLineStart bool
}

// NewFormatter creates a new formatter.
func NewFormatter(options *FormatOptions) *Formatter {
	if options == nil {
		options = DefaultFormatOptions()
	}
	return &Formatter{options: options}
}

// Format re-emits toks (and the trivia they reference, against src) as
// normalized source text.
func (f *Formatter) Format(src *source.Text, toks []token.Token, trivia []token.Trivia) (string, error) {
	f.src = src
	f.toks = toks
	f.trivia = trivia
	f.output.Reset()
	f.depth = 0
	f.atLineStart = true

	var prev *token.Token
	for i := range toks {
		tok := toks[i]
		if tok.Kind == token.EndOfFile {
			break
		}
		f.writeToken(prev, tok)
		prev = &toks[i]
	}

	if f.output.Len() > 0 {
		f.output.WriteByte('\n')
	}
	return f.output.String(), nil
}

// newlinesBefore counts NewLine trivia entries in a leading range --
// capped at 2 so triple-blank-line runs in the input don't leak through.
func (f *Formatter) newlinesBefore(r token.TriviaRange) int {
	count := 0
	for _, tv := range f.trivia[r.Start:r.End] {
		if tv.Kind == token.NewLine {
			count++
		}
	}
	if count > 2 {
		count = 2
	}
	return count
}

// leadingComments returns the leading comment/documentation trivia text
// for a token, one entry per trivia record.
func (f *Formatter) leadingComments(r token.TriviaRange) [][]byte {
	var out [][]byte
	for _, tv := range f.trivia[r.Start:r.End] {
		switch tv.Kind {
		case token.SingleLineComment, token.MultiLineComment,
			token.SingleLineDocumentation, token.MultiLineDocumentation:
			out = append(out, f.src.Text(tv.Span))
		}
	}
	return out
}

// trailingComment returns a single-line trailing comment's text, if any.
func (f *Formatter) trailingComment(r token.TriviaRange) ([]byte, bool) {
	for _, tv := range f.trivia[r.Start:r.End] {
		switch tv.Kind {
		case token.SingleLineComment, token.SingleLineDocumentation,
			token.MultiLineComment, token.MultiLineDocumentation:
			return f.src.Text(tv.Span), true
		}
	}
	return nil, false
}

func (f *Formatter) indent() string {
	if f.options.Style == FormatCompact {
		return ""
	}
	return strings.Repeat(" ", f.depth*f.options.IndentWidth)
}

func (f *Formatter) writeToken(prev *token.Token, tok token.Token) {
	if tok.Kind.IsCloseDelimiter() && f.depth > 0 {
		f.depth--
	}

	blankLines := 0
	if prev != nil {
		blankLines = f.newlinesBefore(tok.Leading) - 1
		if blankLines < 0 {
			blankLines = 0
		}
		if f.options.Style == FormatCompact {
			blankLines = 0
		}
	}

	for _, comment := range f.leadingComments(tok.Leading) {
		if !f.atLineStart {
			f.output.WriteByte('\n')
		}
		for i := 0; i < blankLines; i++ {
			f.output.WriteByte('\n')
		}
		blankLines = 0
		f.output.WriteString(f.indent())
		f.output.Write(comment)
		f.atLineStart = false
	}

	if !f.atLineStart && prev != nil && f.startsNewLine(prev.Kind, tok) {
		if f.insertTrailingComma(prev, tok) {
			f.output.WriteByte(',')
		}
		f.output.WriteByte('\n')
		f.atLineStart = true
	}
	for i := 0; i < blankLines; i++ {
		f.output.WriteByte('\n')
	}

	if f.atLineStart {
		f.output.WriteString(f.indent())
	} else if prev != nil && f.needsSpace(prev.Kind, tok.Kind) {
		f.output.WriteByte(' ')
	}

	f.output.Write(f.lexeme(tok))
	f.atLineStart = false

	if tok.Kind.IsOpenDelimiter() {
		f.depth++
	}

	if comment, ok := f.trailingComment(tok.Trailing); ok && f.options.Style != FormatCompact {
		if f.options.AlignComments {
			f.padToColumn(f.currentLineLen())
		} else {
			f.output.WriteByte(' ')
		}
		f.output.Write(comment)
	}
}

// insertTrailingComma reports whether a trailing comma should be
// synthesized before tok, a closing delimiter that starts its own line.
func (f *Formatter) insertTrailingComma(prev *token.Token, tok token.Token) bool {
	if !f.options.TrailingCommas || !tok.Kind.IsCloseDelimiter() {
		return false
	}
	switch prev.Kind {
	case token.Comma, token.Semicolon:
		return false
	}
	return !prev.Kind.IsOpenDelimiter()
}

// startsNewLine reports whether tok should begin a fresh output line
// given the previous token, based purely on source line breaks recorded
// as NewLine trivia and on closing-delimiter dedent.
func (f *Formatter) startsNewLine(prevKind token.Kind, tok token.Token) bool {
	if f.newlinesBefore(tok.Leading) > 0 {
		return true
	}
	kind := tok.Kind
	if kind.IsCloseDelimiter() && prevKind != token.LParen && prevKind != token.LBracket && prevKind != token.LBrace {
		return true
	}
	return false
}

func (f *Formatter) currentLineLen() int {
	s := f.output.String()
	if idx := strings.LastIndexByte(s, '\n'); idx >= 0 {
		return len(s) - idx - 1
	}
	return len(s)
}

func (f *Formatter) padToColumn(current int) {
	column := f.options.ColumnWidth / 2
	if current < column {
		f.output.WriteString(strings.Repeat(" ", column-current))
	} else {
		f.output.WriteByte(' ')
	}
}

// lexeme returns the literal source text for tok.
func (f *Formatter) lexeme(tok token.Token) []byte {
	return f.src.Text(tok.Span)
}

// noSpaceBefore holds kinds that never get a leading space.
var noSpaceBefore = map[token.Kind]bool{
	token.Comma: true, token.Semicolon: true, token.Dot: true,
	token.RParen: true, token.RBracket: true, token.RBrace: true,
	token.ColonColon: true, token.Question: true, token.Colon: true,
}

// noSpaceAfter holds kinds that never get a trailing space.
var noSpaceAfter = map[token.Kind]bool{
	token.LParen: true, token.LBracket: true, token.Dot: true,
	token.ColonColon: true, token.Bang: true, token.At: true, token.Dollar: true,
}

// needsSpace decides whether a space belongs between two adjacent
// tokens on the same output line.
func (f *Formatter) needsSpace(prevKind, kind token.Kind) bool {
	if noSpaceBefore[kind] {
		return false
	}
	if noSpaceAfter[prevKind] {
		return false
	}
	if prevKind == token.LBrace && kind == token.RBrace {
		return false
	}
	return true
}

// FormatString is a convenience function that lexes input with default
// trivia handling and formats the result with default options.
func FormatString(input, filename string) (string, error) {
	return FormatStringWithStyle(input, filename, FormatDefault)
}

// FormatStringWithStyle formats input with the specified style.
func FormatStringWithStyle(input, filename string, style FormatStyle) (string, error) {
	src, err := source.New(filename, []byte(input))
	if err != nil {
		return "", fmt.Errorf("invalid source: %w", err)
	}

	sink := diag.NewSink()
	lx := lexer.New(sink, src, intern.NewPool(), lexer.TriviaAll)
	toks := lx.All()
	trivia := lx.Trivia()

	var options *FormatOptions
	switch style {
	case FormatCompact:
		options = CompactFormatOptions()
	case FormatExpanded:
		options = ExpandedFormatOptions()
	default:
		options = DefaultFormatOptions()
	}

	formatter := NewFormatter(options)
	return formatter.Format(src, toks, trivia)
}
