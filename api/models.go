package api

import (
	"time"

	"github.com/lookbusy1344/weave/service"
)

// SessionCreateRequest represents a request to create a new lex session.
type SessionCreateRequest struct {
	TriviaMode string `json:"triviaMode,omitempty"` // none, documentation, all (default: documentation)
}

// SessionCreateResponse represents the response from creating a session.
type SessionCreateResponse struct {
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionStatusResponse represents the current status of a session.
type SessionStatusResponse struct {
	SessionID       string `json:"sessionId"`
	Loaded          bool   `json:"loaded"`
	TokenCount      int    `json:"tokenCount"`
	DiagnosticCount int    `json:"diagnosticCount"`
	HasErrors       bool   `json:"hasErrors"`
}

// LoadSourceRequest represents a request to lex a document.
type LoadSourceRequest struct {
	Name   string `json:"name"`   // display path used in diagnostic rendering
	Source string `json:"source"` // Weave source text
}

// LoadSourceResponse represents the response from lexing a document.
type LoadSourceResponse struct {
	Success         bool   `json:"success"`
	TokenCount      int    `json:"tokenCount"`
	DiagnosticCount int    `json:"diagnosticCount"`
	HasErrors       bool   `json:"hasErrors"`
	Error           string `json:"error,omitempty"`
}

// TokensResponse represents the lexed token stream.
type TokensResponse struct {
	Tokens []service.TokenSummary `json:"tokens"`
}

// DiagnosticsResponse represents the diagnostics recorded while lexing.
type DiagnosticsResponse struct {
	Diagnostics []service.DiagnosticSummary `json:"diagnostics"`
}

// RenderResponse represents a pretty-printed diagnostic render.
type RenderResponse struct {
	Text string `json:"text"`
}

// DumpResponse represents the canonical textual token dump.
type DumpResponse struct {
	Text string `json:"text"`
}

// FormatRequest represents a request to format a document.
type FormatRequest struct {
	Source string `json:"source"`
}

// FormatResponse represents formatted source text.
type FormatResponse struct {
	Formatted string `json:"formatted"`
}

// LintResponse represents lint findings over a document.
type LintResponse struct {
	Issues []LintIssueInfo `json:"issues"`
}

// LintIssueInfo is a JSON projection of a tools.LintIssue.
type LintIssueInfo struct {
	Level   string `json:"level"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

// XRefResponse represents an identifier cross-reference index.
type XRefResponse struct {
	Symbols []XRefSymbolInfo `json:"symbols"`
}

// XRefSymbolInfo is a JSON projection of a tools.Symbol.
type XRefSymbolInfo struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse represents a simple success response.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ExampleInfo describes one bundled sample snippet.
type ExampleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ConfigResponse is a JSON projection of the persisted config.Config.
type ConfigResponse struct {
	TriviaMode      string `json:"triviaMode"`
	RenderLimit     int    `json:"renderLimit"`
	ColorOutput     bool   `json:"colorOutput"`
	ColumnWidth     int    `json:"columnWidth"`
	IndentWidth     int    `json:"indentWidth"`
	Port            int    `json:"port"`
	EnableWebSocket bool   `json:"enableWebSocket"`
}
