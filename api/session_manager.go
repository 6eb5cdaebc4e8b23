package api

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lookbusy1344/weave/intern"
	"github.com/lookbusy1344/weave/lexer"
	"github.com/lookbusy1344/weave/service"
)

var (
	// ErrSessionNotFound is returned when a session is not found
	ErrSessionNotFound = errors.New("session not found")
)

// Session represents an active lex session: one LexService instance
// plus the bookkeeping the API layer needs around it.
type Session struct {
	ID        string
	Service   *service.LexService
	CreatedAt time.Time
}

// SessionManager manages multiple concurrent lex sessions, one
// LexService per session.
type SessionManager struct {
	sessions    map[string]*Session
	broadcaster *Broadcaster
	interner    intern.Interner
	mu          sync.RWMutex
}

// NewSessionManager creates a new session manager. Every session shares
// one interner so identical identifiers compare equal by identity
// across sessions, the same tradeoff intern.Pool's doc comment calls
// out for concurrent hosts.
func NewSessionManager(broadcaster *Broadcaster) *SessionManager {
	return &SessionManager{
		sessions:    make(map[string]*Session),
		broadcaster: broadcaster,
		interner:    intern.NewPool(),
	}
}

// CreateSession creates a new session with a unique ID.
func (sm *SessionManager) CreateSession(opts SessionCreateRequest) (*Session, error) {
	sessionID := uuid.NewString()

	mode := triviaModeFromString(opts.TriviaMode)
	svc := service.NewLexService(sm.interner, mode)

	if sm.broadcaster != nil {
		broadcaster := sm.broadcaster
		sid := sessionID
		svc.SetChangedCallback(func() {
			result := svc.Result(sid)
			broadcaster.BroadcastTokens(sid, result.TokenCount, result.DiagnosticCount, result.HasErrors)
		})
	} else {
		debugLog("Session %s: WARNING - no broadcaster available for live updates", sessionID)
	}

	session := &Session{
		ID:        sessionID,
		Service:   svc,
		CreatedAt: time.Now(),
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sessions[sessionID] = session

	if sm.broadcaster != nil {
		sm.broadcaster.BroadcastSessionEvent(sessionID, "created")
	}
	return session, nil
}

// GetSession retrieves a session by ID.
func (sm *SessionManager) GetSession(sessionID string) (*Session, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[sessionID]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// DestroySession removes a session by ID.
func (sm *SessionManager) DestroySession(sessionID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[sessionID]; !exists {
		return ErrSessionNotFound
	}
	delete(sm.sessions, sessionID)

	if sm.broadcaster != nil {
		sm.broadcaster.BroadcastSessionEvent(sessionID, "destroyed")
	}
	return nil
}

// ListSessions returns a list of all session IDs.
func (sm *SessionManager) ListSessions() []string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	ids := make([]string, 0, len(sm.sessions))
	for id := range sm.sessions {
		ids = append(ids, id)
	}
	return ids
}

// Count returns the number of active sessions.
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

func triviaModeFromString(s string) lexer.TriviaMode {
	switch s {
	case "none":
		return lexer.TriviaNone
	case "all":
		return lexer.TriviaAll
	default:
		return lexer.TriviaDocumentation
	}
}
