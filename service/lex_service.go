// Package service wraps the core source/lexer/diag packages behind an
// API a host (the HTTP server, the TUI, the desktop GUI) can drive
// without touching the core types directly.
package service

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/lookbusy1344/weave/diag"
	"github.com/lookbusy1344/weave/intern"
	"github.com/lookbusy1344/weave/lexer"
	"github.com/lookbusy1344/weave/source"
	"github.com/lookbusy1344/weave/token"
)

// LexService owns one lexed document: its source text, the token/trivia
// streams produced from it, and the diagnostic sink the lexer reported
// into. A fresh LoadSource replaces all three atomically. LexService is
// safe for concurrent use, a mutex-guarded shape that protects against
// a WebSocket push racing a concurrent HTTP re-lex of the same session.
type LexService struct {
	mu sync.RWMutex

	interner intern.Interner
	mode     lexer.TriviaMode

	src    *source.Text
	toks   []token.Token
	trivia []token.Trivia
	sink   *diag.Sink

	onChanged func()
}

// NewLexService creates an empty LexService. interner is shared across
// every document this service ever loads, so identical identifier
// spellings compare equal by identity across reloads; mode controls
// which trivia kinds loaded documents retain.
func NewLexService(interner intern.Interner, mode lexer.TriviaMode) *LexService {
	return &LexService{interner: interner, mode: mode}
}

// SetChangedCallback registers a callback invoked after every successful
// LoadSource. The API layer uses this to push a WebSocket event without
// LexService knowing anything about broadcasting.
func (s *LexService) SetChangedCallback(callback func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChanged = callback
}

// LoadSource validates data as UTF-8, lexes it in full, and replaces any
// previously loaded document. It returns an error only for a
// construction-time failure (invalid UTF-8); lexical problems are
// reported into the sink and do not fail the call.
func (s *LexService) LoadSource(name string, data []byte) error {
	text, err := source.New(name, data)
	if err != nil {
		return fmt.Errorf("service: load %s: %w", name, err)
	}

	s.mu.Lock()
	sink := diag.NewSink()
	lx := lexer.New(sink, text, s.interner, s.mode)
	toks := lx.All()

	s.src = text
	s.toks = toks
	s.trivia = lx.Trivia()
	s.sink = sink
	callback := s.onChanged
	s.mu.Unlock()

	if callback != nil {
		callback()
	}
	return nil
}

// Loaded reports whether a document has been successfully loaded.
func (s *LexService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.src != nil
}

// SourceText returns the currently loaded document, or nil if none has
// been loaded yet.
func (s *LexService) SourceText() *source.Text {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.src
}

// Tokens returns the significant token stream from the last LoadSource,
// including the terminal EndOfFile token.
func (s *LexService) Tokens() []token.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.toks
}

// Trivia returns the trivia arena Token.Leading/Trailing ranges index
// into.
func (s *LexService) Trivia() []token.Trivia {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trivia
}

// Diagnostics returns every diagnostic handle recorded while lexing the
// current document, in insertion order.
func (s *LexService) Diagnostics() []diag.Handle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sink == nil {
		return nil
	}
	return s.sink.All()
}

// HasErrors reports whether the current document's diagnostics include
// at least one Error-level entry.
func (s *LexService) HasErrors() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sink != nil && s.sink.HasErrors()
}

// TokenSummaries projects every token into a JSON-friendly
// TokenSummary, resolving line/column from the source text.
func (s *LexService) TokenSummaries() []TokenSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.src == nil {
		return nil
	}

	out := make([]TokenSummary, len(s.toks))
	for i, tok := range s.toks {
		lp := s.src.LinePosition(tok.Span.Start)
		ts := tokenSummary(tok, int(lp.Line)+1, int(lp.Column)+1)
		ts.Text = string(s.src.Text(tok.Span))
		out[i] = ts
	}
	return out
}

// DiagnosticSummaries projects every diagnostic root and its children
// into JSON-friendly DiagnosticSummary values, pre-order.
func (s *LexService) DiagnosticSummaries() []DiagnosticSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sink == nil || s.src == nil {
		return nil
	}

	var out []DiagnosticSummary
	var walk func(diag.Handle)
	walk = func(h diag.Handle) {
		e := s.sink.Entry(h)
		lp := s.src.LinePosition(e.Span.Start)
		out = append(out, DiagnosticSummary{
			Level:   e.Level.String(),
			Line:    int(lp.Line) + 1,
			Column:  int(lp.Column) + 1,
			Message: e.Message,
		})
		for _, c := range s.sink.Children(h) {
			walk(c)
		}
	}
	for _, r := range s.sink.Roots() {
		walk(r)
	}
	return out
}

// RenderDiagnostics renders every diagnostic root (with its children) in
// the framed text format, stopping after limit entries per root, and
// returns the rendered text.
func (s *LexService) RenderDiagnostics(limit int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sink == nil || s.src == nil {
		return "", nil
	}

	var buf bytes.Buffer
	for _, root := range s.sink.Roots() {
		if err := s.sink.Render(&buf, s.src, root, limit); err != nil {
			return "", fmt.Errorf("service: render diagnostics: %w", err)
		}
	}
	return buf.String(), nil
}

// Dump writes the canonical textual token dump for the currently
// loaded document.
func (s *LexService) Dump() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.src == nil {
		return "", fmt.Errorf("service: no document loaded")
	}

	var buf bytes.Buffer
	if err := token.Dump(&buf, s.toks, s.trivia, s.src); err != nil {
		return "", fmt.Errorf("service: dump: %w", err)
	}
	return buf.String(), nil
}

// Result summarizes the last LoadSource call in the shape LexResult
// exposes over JSON.
func (s *LexService) Result(sessionID string) LexResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	diagCount := 0
	hasErrors := false
	if s.sink != nil {
		diagCount = s.sink.Len()
		hasErrors = s.sink.HasErrors()
	}
	return LexResult{
		SessionID:       sessionID,
		TokenCount:      len(s.toks),
		DiagnosticCount: diagCount,
		HasErrors:       hasErrors,
	}
}
