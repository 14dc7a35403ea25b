package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/semhq/campaigner/pkg/health"
	"github.com/semhq/campaigner/pkg/logger"
)

// Default server timeouts. Write covers a full completion round trip.
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 90 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
	defaultShutdownTimeout   = 30 * time.Second
)

// Default health check paths.
const (
	defaultLivenessPath  = "/health/live"
	defaultReadinessPath = "/health/ready"
)

// App wires routing, middleware, sessions and error handling.
// App is immutable after creation.
type App struct {
	router          chi.Router
	errorHandler    ErrorHandler
	notFoundHandler HandlerFunc
	health          *health.Checker
	logger          *slog.Logger
	sessionManager  *SessionManager
	middlewares     []Middleware
	handlers        []Handler
	staticRoutes    []staticRoute
}

type staticRoute struct {
	handler http.Handler
	pattern string
}

// New creates an application with the given options.
//
// Example:
//
//	app := web.New(
//	    web.WithLogger(log),
//	    web.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    web.WithSession(store),
//	    web.WithHandlers(handlers.NewEmail(gen, sender)),
//	)
func New(opts ...Option) *App {
	a := &App{
		router: chi.NewRouter(),
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.sessionManager != nil {
		a.sessionManager.logger = a.logger
	}
	a.setupRoutes()
	return a
}

// ServeHTTP makes App an http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Router returns the underlying chi.Router.
func (a *App) Router() chi.Router {
	return a.router
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) setupRoutes() {
	if a.notFoundHandler != nil {
		a.router.NotFound(a.wrapHandler(a.notFoundHandler))
	}

	for _, mw := range a.middlewares {
		a.router.Use(a.adaptMiddleware(mw))
	}

	for _, sr := range a.staticRoutes {
		a.router.Mount(sr.pattern, sr.handler)
	}

	if a.health != nil {
		a.router.Get(defaultLivenessPath, health.LivenessHandler())
		a.router.Get(defaultReadinessPath, health.ReadinessHandler(a.health))
	}

	r := &routerAdapter{router: a.router, app: a}
	for _, h := range a.handlers {
		h.Routes(r)
	}
}

// wrapHandler converts a HandlerFunc to http.HandlerFunc using the app's error handler.
func (a *App) wrapHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := newContext(w, r, a)
		if err := h(c); err != nil {
			a.handleError(c, err)
		}
	}
}

// adaptMiddleware converts a Middleware into chi middleware. The wrapped
// ResponseWriter travels down the chain so every layer shares it.
func (a *App) adaptMiddleware(mw Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := newContext(w, r, a)
			wrapped := mw(func(c Context) error {
				next.ServeHTTP(c.Response(), c.Request())
				return nil
			})
			if err := wrapped(c); err != nil {
				a.handleError(c, err)
			}
		})
	}
}

func (a *App) handleError(c Context, err error) {
	if c.Written() {
		c.LogError("handler error after response was written", slog.Any("error", err))
		return
	}
	if a.errorHandler != nil {
		herr := a.errorHandler(c, err)
		if herr == nil {
			return
		}
		c.LogError("error handler failed", slog.Any("error", herr))
		if c.Written() {
			return
		}
	}
	defaultErrorHandler(c, err)
}

// defaultErrorHandler writes the HTTPError message as plain text, or a
// generic 500 for anything else.
func defaultErrorHandler(c Context, err error) {
	if he, ok := AsHTTPError(err); ok {
		_ = c.String(he.Code, he.Message)
		return
	}
	c.LogError("unhandled error", slog.Any("error", err))
	_ = c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
