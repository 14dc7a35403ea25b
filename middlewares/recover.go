package middlewares

import (
	"log/slog"
	"runtime"

	"github.com/semhq/campaigner/internal/web"
)

// DefaultStackSize is the default maximum stack trace size in bytes.
const DefaultStackSize = 4096

type recoverConfig struct {
	stackSize    int
	disableStack bool
}

// RecoverOption configures Recover.
type RecoverOption func(*recoverConfig)

// WithRecoverStackSize sets the maximum captured stack size.
func WithRecoverStackSize(size int) RecoverOption {
	return func(cfg *recoverConfig) {
		if size > 0 {
			cfg.stackSize = size
		}
	}
}

// WithRecoverDisableStack skips stack capture.
func WithRecoverDisableStack() RecoverOption {
	return func(cfg *recoverConfig) {
		cfg.disableStack = true
	}
}

// Recover turns handler panics into a *PanicError for the app's ErrorHandler.
func Recover(opts ...RecoverOption) web.Middleware {
	cfg := &recoverConfig{stackSize: DefaultStackSize}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				pe := &PanicError{Value: r}
				if !cfg.disableStack {
					stack := make([]byte, cfg.stackSize)
					pe.Stack = stack[:runtime.Stack(stack, false)]
				}
				c.LogError("panic recovered", slog.Any("panic", r), slog.String("stack", string(pe.Stack)))
				err = pe
			}()
			return next(c)
		}
	}
}
