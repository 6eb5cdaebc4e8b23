package service

import (
	"github.com/lookbusy1344/weave/diag"
	"github.com/lookbusy1344/weave/token"
)

// TokenSummary is a JSON-friendly projection of a token.Token, used to
// hand a lexed stream to the API and TUI/GUI front ends without
// exposing the core's internal Payload interface directly.
type TokenSummary struct {
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
}

// DiagnosticSummary is a JSON-friendly projection of a diag.Entry.
type DiagnosticSummary struct {
	Level   string `json:"level"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

// LexResult summarizes the outcome of lexing one document.
type LexResult struct {
	SessionID       string `json:"sessionId"`
	TokenCount      int    `json:"tokenCount"`
	DiagnosticCount int    `json:"diagnosticCount"`
	HasErrors       bool   `json:"hasErrors"`
}

func diagLevelString(level diag.Level) string {
	switch level {
	case diag.Error:
		return "error"
	case diag.Warning:
		return "warning"
	case diag.Info:
		return "info"
	case diag.Hint:
		return "hint"
	default:
		return "unknown"
	}
}

func tokenSummary(tok token.Token, line, column int) TokenSummary {
	return TokenSummary{
		Kind:   tok.Kind.String(),
		Line:   line,
		Column: column,
		Start:  int(tok.Span.Start),
		End:    int(tok.Span.End),
	}
}
