package mailer

import "errors"

var (
	// ErrNotConfigured indicates the sender address or password is missing.
	ErrNotConfigured = errors.New("sender email or password not configured")

	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have a recipient")
)
