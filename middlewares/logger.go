package middlewares

import (
	"log/slog"
	"time"

	"github.com/semhq/campaigner/internal/web"
	"github.com/semhq/campaigner/pkg/htmx"
)

// RequestLogger logs one line per request with status and latency.
// Health check requests are skipped.
func RequestLogger() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			path := c.Request().URL.Path
			if path == "/health/live" || path == "/health/ready" {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			status := c.ResponseWriter().Status()
			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Bool("htmx", c.IsHTMX()),
				slog.Int64("latency_ms", latency.Milliseconds()),
			}
			if target := htmx.Target(c.Request()); target != "" {
				attrs = append(attrs, slog.String("hx_target", target))
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}

			switch {
			case err != nil || status >= 500:
				c.LogError("request completed with server error", attrs...)
			case status >= 400:
				c.LogWarn("request completed with client error", attrs...)
			default:
				c.LogInfo("request completed", attrs...)
			}
			return err
		}
	}
}
