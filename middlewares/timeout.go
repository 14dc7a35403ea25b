package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/semhq/campaigner/internal/web"
)

// DefaultTimeout is the default request deadline.
const DefaultTimeout = 60 * time.Second

// Timeout puts a deadline on the request context. Outbound calls made with
// the handler's Context give up when it passes, and the failure surfaces as
// a *TimeoutError.
func Timeout(timeout time.Duration) web.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			parent := c.Context()
			ctx, cancel := context.WithTimeout(parent, timeout)
			defer cancel()

			c.SetContext(ctx)
			err := next(c)
			c.SetContext(parent)

			if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				c.LogWarn("request timeout", "timeout", timeout.String())
				return &TimeoutError{Duration: timeout, Err: err}
			}
			return err
		}
	}
}
