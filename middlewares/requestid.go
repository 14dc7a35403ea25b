package middlewares

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/semhq/campaigner/internal/web"
	"github.com/semhq/campaigner/pkg/logger"
)

type requestIDKey struct{}

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestID reuses an incoming X-Request-ID or generates a UUID, stores it in
// the request context and echoes it in the response.
func RequestID() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			id := c.Header(RequestIDHeader)
			if id == "" || len(id) > 128 {
				id = uuid.NewString()
			}
			c.Set(requestIDKey{}, id)
			c.SetHeader(RequestIDHeader, id)
			return next(c)
		}
	}
}

// GetRequestID returns the request id or an empty string.
func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey{}).(string)
	return v
}

// RequestIDExtractor adds "request_id" to every log record made with a request context.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v := GetRequestID(ctx); v != "" {
			return slog.String("request_id", v), true
		}
		return slog.Attr{}, false
	}
}
