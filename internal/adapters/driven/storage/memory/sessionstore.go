package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jyotish-labs/hora-cli/internal/core/domain"
	"github.com/jyotish-labs/hora-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore holds chart sessions in memory. Sessions are the only
// mutable application state and are discarded when the process exits;
// there is deliberately no durable variant.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.ChartSession
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.ChartSession),
	}
}

// Create stores a new session and assigns it an ID.
func (s *SessionStore) Create(session *domain.ChartSession) (string, error) {
	if session == nil {
		return "", domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session.ID = uuid.NewString()
	s.sessions[session.ID] = session
	return session.ID, nil
}

// Get retrieves a session by ID.
func (s *SessionStore) Get(id string) (*domain.ChartSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

// Update replaces a stored session.
func (s *SessionStore) Update(session *domain.ChartSession) error {
	if session == nil {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; !ok {
		return domain.ErrNotFound
	}
	s.sessions[session.ID] = session
	return nil
}

// Delete removes a session. Deleting a missing session is a no-op.
func (s *SessionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}
