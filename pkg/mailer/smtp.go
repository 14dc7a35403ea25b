package mailer

import (
	"context"
	"log/slog"

	"github.com/wneessen/go-mail"

	"github.com/semhq/campaigner/pkg/logger"
)

// Dispatcher sends messages through an SMTP relay, by default with implicit TLS.
type Dispatcher struct {
	logger *slog.Logger
	cfg    Config
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for delivery diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDispatcher creates a dispatcher for the configured relay.
func NewDispatcher(cfg Config, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		cfg:    cfg.withDefaults(),
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DefaultSender returns the operator-configured sender credentials.
// They may be empty; Send reports that at delivery time.
func (d *Dispatcher) DefaultSender() Credentials {
	return Credentials{Address: d.cfg.SenderEmail, Password: d.cfg.SenderPassword}
}

// Send authenticates as the message sender and delivers it to the recipient.
// A missing sender address or password fails without contacting the relay.
func (d *Dispatcher) Send(ctx context.Context, msg Message) Result {
	if msg.SenderAddress == "" || msg.SenderCredential == "" {
		return Failed(ErrNotConfigured.Error())
	}
	if msg.RecipientAddress == "" {
		return Failed(ErrNoRecipient.Error())
	}

	if err := d.deliver(ctx, msg); err != nil {
		d.logger.WarnContext(ctx, "email delivery failed",
			slog.String("relay", d.cfg.Host),
			slog.String("error", err.Error()),
		)
		return Failed(err.Error())
	}

	d.logger.InfoContext(ctx, "email delivered", slog.String("relay", d.cfg.Host))
	return Sent()
}

func (d *Dispatcher) deliver(ctx context.Context, msg Message) error {
	m, err := msg.Build()
	if err != nil {
		return err
	}

	client, err := mail.NewClient(d.cfg.Host, d.clientOptions(msg)...)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, m)
}

// clientOptions authenticates as the message sender, so one dispatcher serves
// the default and any custom sender.
func (d *Dispatcher) clientOptions(msg Message) []mail.Option {
	opts := []mail.Option{
		mail.WithPort(d.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(msg.SenderAddress),
		mail.WithPassword(msg.SenderCredential),
	}

	switch d.cfg.Security {
	case SecurityStartTLS:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	case SecurityNone:
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	default:
		opts = append(opts, mail.WithSSL())
	}

	if d.cfg.DialTimeout > 0 {
		opts = append(opts, mail.WithTimeout(d.cfg.DialTimeout))
	}
	return opts
}
