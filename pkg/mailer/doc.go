// Package mailer delivers plain-text email through an SMTP relay.
//
// Dispatcher connects with implicit TLS (port 465 by default; STARTTLS or
// plaintext via Config.Security), authenticates with the sender's address and
// application password, and sends a plain-text message with the Subject header
// and the body. There is no HTML part and no retry.
//
// Send never returns an error. The outcome is a Result:
//
//	res := dispatcher.Send(ctx, mailer.NewMessage(dispatcher.DefaultSender(), to, subject, body))
//	if !res.OK() {
//		log.Warn("send failed", "reason", res.Reason())
//	}
//
// The dispatcher does not care where credentials come from. DefaultSender
// exposes the operator's configured account; callers may pass any other.
// Missing credentials fail with "sender email or password not configured"
// before any connection is made.
package mailer
