package session

import "context"

// Store defines the interface for session persistence.
type Store interface {
	// Create stores a new session. It never overwrites an existing record.
	Create(ctx context.Context, session *Session) error

	// Get retrieves a session by id. Expired sessions are treated as absent.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes a session by id. Deleting an absent session is not an
	// error.
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes all expired sessions.
	DeleteExpired(ctx context.Context) error
}
