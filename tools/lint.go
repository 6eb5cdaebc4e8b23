package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lookbusy1344/weave/diag"
	"github.com/lookbusy1344/weave/intern"
	"github.com/lookbusy1344/weave/lexer"
	"github.com/lookbusy1344/weave/source"
	"github.com/lookbusy1344/weave/token"
)

// LintLevel represents the severity of a lint issue.
type LintLevel int

const (
	LintError   LintLevel = iota // Lexical errors (reported by the lexer itself)
	LintWarning                  // Style issues worth a second look
	LintInfo                     // Suggestions
)

func (l LintLevel) String() string {
	switch l {
	case LintError:
		return "error"
	case LintWarning:
		return "warning"
	case LintInfo:
		return "info"
	default:
		return "unknown"
	}
}

// LintIssue represents a single lint finding.
type LintIssue struct {
	Level   LintLevel
	Line    int
	Column  int
	Message string
	Code    string
}

func (i *LintIssue) String() string {
	return fmt.Sprintf("line %d:%d: %s: %s [%s]", i.Line, i.Column, i.Level, i.Message, i.Code)
}

// LintOptions controls linter behavior. Every check here works purely
// off the token/trivia stream -- there is no parser in this repository,
// so checks that would need grammar (undefined-symbol analysis,
// reachability) are out of scope; what remains are the checks a
// lexically-faithful linter can still make honestly.
type LintOptions struct {
	Strict             bool // Treat warnings as errors
	CheckTrailingSpace bool // Flag whitespace trivia immediately before a newline
	CheckMixedIndent   bool // Flag leading whitespace mixing tabs and spaces
	CheckLineLength    bool // Flag source lines longer than MaxLineWidth
	CheckTodoComments  bool // Flag TODO/FIXME markers in comments
	CheckRedundantSemi bool // Flag doubled semicolons
	MaxLineWidth       int
}

// DefaultLintOptions returns default linter options.
func DefaultLintOptions() *LintOptions {
	return &LintOptions{
		Strict:             false,
		CheckTrailingSpace: true,
		CheckMixedIndent:   true,
		CheckLineLength:    true,
		CheckTodoComments:  true,
		CheckRedundantSemi: true,
		MaxLineWidth:       100,
	}
}

// Linter analyzes Weave source for lexical-level issues.
type Linter struct {
	options *LintOptions
	issues  []*LintIssue

	src    *source.Text
	toks   []token.Token
	trivia []token.Trivia
}

// NewLinter creates a new linter.
func NewLinter(options *LintOptions) *Linter {
	if options == nil {
		options = DefaultLintOptions()
	}
	return &Linter{options: options}
}

// Lint analyzes the given Weave source code.
func (l *Linter) Lint(input, filename string) []*LintIssue {
	l.issues = nil

	src, err := source.New(filename, []byte(input))
	if err != nil {
		l.issues = append(l.issues, &LintIssue{
			Level:   LintError,
			Line:    1,
			Column:  1,
			Message: fmt.Sprintf("invalid source: %v", err),
			Code:    "INVALID_SOURCE",
		})
		return l.issues
	}
	l.src = src

	sink := diag.NewSink()
	lx := lexer.New(sink, src, intern.NewPool(), lexer.TriviaAll)
	l.toks = lx.All()
	l.trivia = lx.Trivia()

	for _, h := range sink.Roots() {
		e := sink.Entry(h)
		lp := src.LinePosition(e.Span.Start)
		l.issues = append(l.issues, &LintIssue{
			Level:   lintLevelFromDiag(e.Level),
			Line:    int(lp.Line) + 1,
			Column:  int(lp.Column) + 1,
			Message: e.Message,
			Code:    "LEX_ERROR",
		})
	}

	if l.options.CheckTrailingSpace {
		l.checkTrailingWhitespace()
	}
	if l.options.CheckMixedIndent {
		l.checkMixedIndentation()
	}
	if l.options.CheckLineLength {
		l.checkLineLength()
	}
	if l.options.CheckTodoComments {
		l.checkTodoComments()
	}
	if l.options.CheckRedundantSemi {
		l.checkRedundantSemicolons()
	}

	sort.Slice(l.issues, func(i, j int) bool {
		if l.issues[i].Line == l.issues[j].Line {
			return l.issues[i].Column < l.issues[j].Column
		}
		return l.issues[i].Line < l.issues[j].Line
	})

	return l.issues
}

func lintLevelFromDiag(level diag.Level) LintLevel {
	switch level {
	case diag.Warning:
		return LintWarning
	case diag.Info, diag.Hint:
		return LintInfo
	default:
		return LintError
	}
}

func (l *Linter) add(level LintLevel, span source.Span, code, message string) {
	lp := l.src.LinePosition(span.Start)
	l.issues = append(l.issues, &LintIssue{
		Level:   level,
		Line:    int(lp.Line) + 1,
		Column:  int(lp.Column) + 1,
		Message: message,
		Code:    code,
	})
}

// checkTrailingWhitespace flags Whitespace trivia that directly
// precedes a NewLine trivia entry.
func (l *Linter) checkTrailingWhitespace() {
	for i, tv := range l.trivia {
		if tv.Kind != token.Whitespace {
			continue
		}
		if i+1 >= len(l.trivia) || l.trivia[i+1].Kind != token.NewLine || l.trivia[i+1].Span.Start != tv.Span.End {
			continue
		}
		l.add(LintWarning, tv.Span, "TRAILING_WHITESPACE", "trailing whitespace before end of line")
	}
}

// checkMixedIndentation flags leading-of-line whitespace trivia that
// contains both tabs and spaces.
func (l *Linter) checkMixedIndentation() {
	var lineStart source.Position
	for _, tv := range l.trivia {
		switch tv.Kind {
		case token.NewLine:
			lineStart = tv.Span.End
		case token.Whitespace:
			if tv.Span.Start == lineStart {
				text := l.src.Text(tv.Span)
				if strings.ContainsRune(string(text), '\t') && strings.ContainsRune(string(text), ' ') {
					l.add(LintWarning, tv.Span, "MIXED_INDENTATION", "indentation mixes tabs and spaces")
				}
			}
		}
	}
}

// checkLineLength flags source lines longer than MaxLineWidth runes.
func (l *Linter) checkLineLength() {
	if l.options.MaxLineWidth <= 0 {
		return
	}
	for i := 0; i < l.src.LineCount(); i++ {
		text := l.src.LineContentText(i)
		width := len([]rune(string(text)))
		if width <= l.options.MaxLineWidth {
			continue
		}
		span := l.src.LineContent(i)
		l.add(LintInfo, span, "LINE_TOO_LONG",
			fmt.Sprintf("line is %d characters wide, limit is %d", width, l.options.MaxLineWidth))
	}
}

// checkTodoComments flags comments carrying a TODO or FIXME marker.
func (l *Linter) checkTodoComments() {
	for _, tv := range l.trivia {
		switch tv.Kind {
		case token.SingleLineComment, token.MultiLineComment,
			token.SingleLineDocumentation, token.MultiLineDocumentation:
		default:
			continue
		}
		text := string(l.src.Text(tv.Span))
		upper := strings.ToUpper(text)
		if strings.Contains(upper, "TODO") || strings.Contains(upper, "FIXME") {
			l.add(LintInfo, tv.Span, "TODO_COMMENT", "comment contains a TODO/FIXME marker")
		}
	}
}

// checkRedundantSemicolons flags two semicolon tokens in a row with no
// intervening significant token.
func (l *Linter) checkRedundantSemicolons() {
	for i := 1; i < len(l.toks); i++ {
		if l.toks[i].Kind == token.Semicolon && l.toks[i-1].Kind == token.Semicolon {
			l.add(LintWarning, l.toks[i].Span, "REDUNDANT_SEMICOLON", "redundant empty statement")
		}
	}
}

// LintString is a convenience function that lints with default options.
func LintString(input, filename string) []*LintIssue {
	linter := NewLinter(DefaultLintOptions())
	return linter.Lint(input, filename)
}
