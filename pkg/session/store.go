package session

import "context"

// Store persists sessions by id.
type Store interface {
	// Load returns the session with the given id.
	// Missing and expired sessions both yield ErrNotFound.
	Load(ctx context.Context, id string) (*Session, error)

	// Save writes the session. It expires from the store at s.ExpiresAt.
	Save(ctx context.Context, s *Session) error

	// Delete removes a session. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases background resources.
	Close() error
}
