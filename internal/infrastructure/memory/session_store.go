package memory

import (
	"sync"

	"github.com/andespos/terminal-api/internal/domain/entity"
)

// SessionStore keeps one in-memory checkout session per terminal. Sessions
// are never persisted; a restart loses open carts. The backend owns everything
// durable.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*entity.CheckoutSession
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*entity.CheckoutSession)}
}

// With runs fn with exclusive access to the terminal's session, creating it on
// first use. fn must stay in-memory; network calls happen outside the lock.
func (s *SessionStore) With(terminalID string, fn func(*entity.CheckoutSession) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[terminalID]
	if !ok {
		session = entity.NewCheckoutSession(terminalID)
		s.sessions[terminalID] = session
	}
	return fn(session)
}

// Drop removes a terminal's session entirely.
func (s *SessionStore) Drop(terminalID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, terminalID)
}
