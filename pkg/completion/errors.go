package completion

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyChoices indicates a successful response without any choices.
	ErrEmptyChoices = errors.New("completion: response has no choices")

	// ErrDecode indicates the response body was not a valid completion payload.
	ErrDecode = errors.New("completion: failed to decode response")

	// ErrMissingAPIKey indicates the client was built without an API key.
	ErrMissingAPIKey = errors.New("completion: api key is required")
)

// Error is returned for every failed completion call.
// It carries the HTTP status and raw response body for endpoint failures,
// or the underlying transport error when no response was received.
type Error struct {
	Err        error  // transport or decode error, nil for plain status failures
	Body       string // raw response body
	StatusCode int    // zero when no response was received
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("completion: status %d: %v: %s", e.StatusCode, e.Err, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("completion: status %d: %s", e.StatusCode, e.Body)
	case e.Err != nil:
		return "completion: " + e.Err.Error()
	}
	return "completion: request failed"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError extracts the completion Error from err if present.
func AsError(err error) (*Error, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
