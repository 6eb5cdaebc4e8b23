package api

import (
	"net/http"

	"github.com/lookbusy1344/weave/config"
	"github.com/lookbusy1344/weave/tools"
)

// handleCreateSession handles POST /api/v1/session
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req SessionCreateRequest
	if r.ContentLength > 0 {
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	session, err := s.sessions.CreateSession(req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, SessionCreateResponse{
		SessionID: session.ID,
		CreatedAt: session.CreatedAt,
	})
}

// handleListSessions handles GET /api/v1/session
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": s.sessions.ListSessions(),
	})
}

// handleGetSessionStatus handles GET /api/v1/session/{id}
func (s *Server) handleGetSessionStatus(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	result := session.Service.Result(sessionID)
	writeJSON(w, http.StatusOK, SessionStatusResponse{
		SessionID:       sessionID,
		Loaded:          session.Service.Loaded(),
		TokenCount:      result.TokenCount,
		DiagnosticCount: result.DiagnosticCount,
		HasErrors:       result.HasErrors,
	})
}

// handleDestroySession handles DELETE /api/v1/session/{id}
func (s *Server) handleDestroySession(w http.ResponseWriter, r *http.Request, sessionID string) {
	if err := s.sessions.DestroySession(sessionID); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: "session destroyed"})
}

// handleLoadSource handles POST /api/v1/session/{id}/load
func (s *Server) handleLoadSource(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	var req LoadSourceRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	name := req.Name
	if name == "" {
		name = "<session>"
	}

	if err := session.Service.LoadSource(name, []byte(req.Source)); err != nil {
		writeJSON(w, http.StatusOK, LoadSourceResponse{Success: false, Error: err.Error()})
		return
	}

	result := session.Service.Result(sessionID)
	writeJSON(w, http.StatusOK, LoadSourceResponse{
		Success:         true,
		TokenCount:      result.TokenCount,
		DiagnosticCount: result.DiagnosticCount,
		HasErrors:       result.HasErrors,
	})
}

// handleGetTokens handles GET /api/v1/session/{id}/tokens
func (s *Server) handleGetTokens(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, TokensResponse{Tokens: session.Service.TokenSummaries()})
}

// handleGetDiagnostics handles GET /api/v1/session/{id}/diagnostics
func (s *Server) handleGetDiagnostics(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, DiagnosticsResponse{Diagnostics: session.Service.DiagnosticSummaries()})
}

// handleRenderDiagnostics handles GET /api/v1/session/{id}/render
func (s *Server) handleRenderDiagnostics(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, parseErr := parseUint(l); parseErr == nil && n > 0 {
			limit = n
		}
	}

	text, err := session.Service.RenderDiagnostics(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, RenderResponse{Text: text})

	if s.broadcaster != nil {
		s.broadcaster.BroadcastDiagnostics(sessionID, text)
	}
}

// handleGetDump handles GET /api/v1/session/{id}/dump
func (s *Server) handleGetDump(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	text, err := session.Service.Dump()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, DumpResponse{Text: text})
}

// handleFormat handles POST /api/v1/session/{id}/format
func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request, sessionID string) {
	var req FormatRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	formatted, err := tools.FormatString(req.Source, sessionID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, FormatResponse{Formatted: formatted})
}

// handleLint handles POST /api/v1/session/{id}/lint
func (s *Server) handleLint(w http.ResponseWriter, r *http.Request, sessionID string) {
	var req FormatRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	issues := tools.LintString(req.Source, sessionID)
	out := make([]LintIssueInfo, len(issues))
	for i, issue := range issues {
		out[i] = LintIssueInfo{
			Level:   issue.Level.String(),
			Line:    issue.Line,
			Column:  issue.Column,
			Message: issue.Message,
		}
	}
	writeJSON(w, http.StatusOK, LintResponse{Issues: out})
}

// handleXRef handles POST /api/v1/session/{id}/xref
func (s *Server) handleXRef(w http.ResponseWriter, r *http.Request, sessionID string) {
	var req FormatRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	gen := tools.NewXRefGenerator()
	symbols, err := gen.Generate(req.Source, sessionID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out := make([]XRefSymbolInfo, 0, len(symbols))
	for name, sym := range symbols {
		out = append(out, XRefSymbolInfo{Name: name, Count: len(sym.Occurrences)})
	}
	writeJSON(w, http.StatusOK, XRefResponse{Symbols: out})
}

// handleGetConfig handles GET /api/v1/config
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.getDefaultConfig())
}

// handleUpdateConfig handles PUT /api/v1/config. It validates and
// echoes the configuration back; the API process does not persist it
// to disk (only the CLI does, via config.Save) -- this mirrors the
// teacher's own API-layer config handler, which is a session-scoped
// override rather than a write to the shared config file.
func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req ConfigResponse
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (s *Server) getDefaultConfig() ConfigResponse {
	cfg := config.DefaultConfig()
	return ConfigResponse{
		TriviaMode:      cfg.Lexer.TriviaMode,
		RenderLimit:     cfg.Diagnostics.RenderLimit,
		ColorOutput:     cfg.Diagnostics.ColorOutput,
		ColumnWidth:     cfg.Formatter.ColumnWidth,
		IndentWidth:     cfg.Formatter.IndentWidth,
		Port:            cfg.API.Port,
		EnableWebSocket: cfg.API.EnableWebSocket,
	}
}

// handleListExamples handles GET /api/v1/examples
func (s *Server) handleListExamples(w http.ResponseWriter, r *http.Request) {
	out := make([]ExampleInfo, 0, len(sampleExamples))
	for _, ex := range sampleExamples {
		out = append(out, ExampleInfo{Name: ex.Name, Description: ex.Description})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"examples": out})
}

// handleGetExample handles GET /api/v1/examples/{name}
func (s *Server) handleGetExample(w http.ResponseWriter, r *http.Request, exampleName string) {
	for _, ex := range sampleExamples {
		if ex.Name == exampleName {
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"name":   ex.Name,
				"source": ex.Source,
			})
			return
		}
	}
	writeError(w, http.StatusNotFound, "unknown example: "+exampleName)
}

func parseUint(s string) (int, error) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errNotUint
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}
