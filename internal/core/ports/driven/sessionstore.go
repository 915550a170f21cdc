package driven

import "github.com/jyotish-labs/hora-cli/internal/core/domain"

// SessionStore holds transient chart sessions in memory.
//
// Sessions are the only mutable state in the application and live no
// longer than the process. There is deliberately no durable
// implementation of this port.
type SessionStore interface {
	// Create stores a new session and assigns it an ID.
	Create(session *domain.ChartSession) (string, error)

	// Get retrieves a session by ID.
	// Returns domain.ErrNotFound if the session does not exist.
	Get(id string) (*domain.ChartSession, error)

	// Update replaces a stored session.
	// Returns domain.ErrNotFound if the session does not exist.
	Update(session *domain.ChartSession) error

	// Delete removes a session. Deleting a missing session is a no-op.
	Delete(id string) error
}
