// Package logger builds the structured slog logger used across the service.
//
// Records are written as JSON to stdout by default. Context extractors inject
// request-scoped attributes, such as the request id, on every call:
//
//	log := logger.New(cfg.Log, os.Stdout, middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "email generated", slog.String("kind", "follow_up"))
//
// When SENTRY_DSN is configured, warnings and errors are forwarded to Sentry in
// addition to local output. Without it the logger stays local, which is the
// expected setup for development.
//
// NewNope returns a logger that discards everything. Packages use it as the
// default when no logger option is supplied.
package logger
