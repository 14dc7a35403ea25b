package web

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/semhq/campaigner/pkg/health"
	"github.com/semhq/campaigner/pkg/session"
)

// Option configures the application.
type Option func(*App)

// WithMiddleware adds global middleware. The first one listed runs first.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers handlers that declare routes.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithErrorHandler sets the handler called when a HandlerFunc returns an error.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		a.errorHandler = h
	}
}

// WithNotFoundHandler sets the handler for unmatched routes.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithSession enables cookie-backed sessions over store.
//
// Example:
//
//	web.WithSession(session.NewMemoryStore(), web.WithSessionTTL(2*time.Hour))
func WithSession(store session.Store, opts ...SessionOption) Option {
	return func(a *App) {
		if store != nil {
			a.sessionManager = NewSessionManager(store, opts...)
		}
	}
}

// WithHealth mounts /health/live and /health/ready backed by checker.
func WithHealth(checker *health.Checker) Option {
	return func(a *App) {
		a.health = checker
	}
}

// WithStaticFiles serves fsys (rooted at subDir) under pattern.
// Directory listings are disabled.
//
// Example:
//
//	//go:embed static
//	var assets embed.FS
//
//	web.WithStaticFiles("/static/", assets, "static")
func WithStaticFiles(pattern string, fsys fs.FS, subDir string) Option {
	return func(a *App) {
		subFS, err := fs.Sub(fsys, subDir)
		if err != nil {
			panic(err)
		}

		prefix := strings.TrimSuffix(pattern, "/")
		fileServer := http.StripPrefix(prefix, http.FileServerFS(subFS))

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/") {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Cache-Control", "public, max-age=3600")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			fileServer.ServeHTTP(w, r)
		})

		a.staticRoutes = append(a.staticRoutes, staticRoute{handler: handler, pattern: prefix})
	}
}
