package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// ErrFlushTimeout is returned when buffered Sentry events could not be delivered in time.
var ErrFlushTimeout = errors.New("logger: sentry flush timed out")

// New builds the application logger.
//
// Output goes to w (stdout when nil) as JSON, or as text when Format is "text".
// When SentryDSN is set, warnings are also shipped to Sentry as logs and errors
// as issues. A Sentry init failure is reported once and the logger falls back
// to local output only.
func New(cfg Config, w io.Writer, extractors ...ContextExtractor) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	var local slog.Handler
	if cfg.Format == "text" {
		local = slog.NewTextHandler(w, opts)
	} else {
		local = slog.NewJSONHandler(w, opts)
	}

	if cfg.SentryDSN == "" {
		return slog.New(NewLogHandlerDecorator(local, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(local, extractors...))
	}

	remote := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background())

	return slog.New(NewLogHandlerDecorator(newMultiHandler(local, remote), extractors...))
}

// Flush returns a shutdown hook that delivers buffered Sentry events.
// It is a no-op when Sentry was never initialised.
func Flush(timeout time.Duration) func(context.Context) error {
	return func(context.Context) error {
		if sentry.CurrentHub().Client() == nil {
			return nil
		}
		if !sentry.Flush(timeout) {
			return ErrFlushTimeout
		}
		return nil
	}
}
