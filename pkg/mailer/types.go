package mailer

import (
	"strings"

	"github.com/wneessen/go-mail"
)

// headerBreaks flattens line breaks so a subject stays a single header line.
var headerBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// Credentials identify the account a message is sent from.
// Password is an application password, not the account login password.
type Credentials struct {
	Address  string
	Password string
}

// Configured reports whether both the address and password are set.
func (c Credentials) Configured() bool {
	return c.Address != "" && c.Password != ""
}

// Message is a single plain-text email.
type Message struct {
	SenderAddress    string
	SenderCredential string
	RecipientAddress string
	Subject          string
	Body             string
}

// NewMessage builds a message sent with the given credentials.
func NewMessage(from Credentials, to, subject, body string) Message {
	return Message{
		SenderAddress:    from.Address,
		SenderCredential: from.Password,
		RecipientAddress: to,
		Subject:          subject,
		Body:             body,
	}
}

// Build composes the plain-text message: sender, recipient, Subject and body.
// The body is written 8bit, without transfer encoding.
func (m Message) Build() (*mail.Msg, error) {
	msg := mail.NewMsg(mail.WithEncoding(mail.NoEncoding))
	if err := msg.From(m.SenderAddress); err != nil {
		return nil, err
	}
	if err := msg.To(m.RecipientAddress); err != nil {
		return nil, err
	}
	msg.Subject(headerBreaks.Replace(m.Subject))
	msg.SetBodyString(mail.TypeTextPlain, m.Body)
	return msg, nil
}

// Result is the outcome of a send attempt.
// The zero value is a failure with an empty reason; use Sent or Failed.
type Result struct {
	reason string
	ok     bool
}

// Sent returns a successful result.
func Sent() Result { return Result{ok: true} }

// Failed returns a failed result carrying a human-readable reason.
func Failed(reason string) Result { return Result{reason: reason} }

// OK reports whether the message was accepted by the relay.
func (r Result) OK() bool { return r.ok }

// Reason returns the failure reason. It is empty on success.
func (r Result) Reason() string { return r.reason }

func (r Result) String() string {
	if r.ok {
		return "sent"
	}
	return "failed: " + r.reason
}
