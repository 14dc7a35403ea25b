// Package middlewares provides the HTTP middleware stack of the campaigner UI.
//
// # Request ID
//
// RequestID reuses an incoming X-Request-ID or generates a UUID. Pair it with
// RequestIDExtractor so every log line made with the request context carries
// request_id:
//
//	log := logger.New(cfg.Log, os.Stdout, middlewares.RequestIDExtractor())
//	app := web.New(
//	    web.WithLogger(log),
//	    web.WithMiddleware(middlewares.RequestID(), middlewares.RequestLogger()),
//	)
//
// # Recover
//
// Recover converts panics into *PanicError so the app's ErrorHandler renders
// the usual error page instead of dropping the connection.
//
// # Timeout
//
// Timeout sets a deadline on the request context. Completion and SMTP calls
// use that context, so a slow upstream ends in *TimeoutError rather than a
// hung request.
package middlewares
