package mailer

import "context"

// Sender delivers a single message.
// Implementations report every outcome through Result and never return an error.
type Sender interface {
	Send(ctx context.Context, msg Message) Result
}
