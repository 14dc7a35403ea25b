package session

import "errors"

var (
	// ErrNotFound is returned when a session does not exist or has expired.
	ErrNotFound = errors.New("session: not found")

	// ErrClosed is returned when the store has been closed.
	ErrClosed = errors.New("session: store closed")

	// ErrMarshal is returned when a session cannot be encoded for storage.
	ErrMarshal = errors.New("session: failed to marshal")

	// ErrUnmarshal is returned when stored session data cannot be decoded.
	ErrUnmarshal = errors.New("session: failed to unmarshal")
)
