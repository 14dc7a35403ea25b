package web

import "github.com/semhq/campaigner/pkg/htmx"

// Handler declares routes on a router.
//
// Example:
//
//	type EmailHandler struct {
//	    gen *generator.Service
//	}
//
//	func (h *EmailHandler) Routes(r web.Router) {
//	    r.GET("/", h.page)
//	    r.POST("/email/generate", h.generate)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands the request to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
//
// Example:
//
//	func Timing(next web.HandlerFunc) web.HandlerFunc {
//	    return func(c web.Context) error {
//	        start := time.Now()
//	        err := next(c)
//	        c.LogDebug("handled", "duration", time.Since(start))
//	        return err
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error

// Component is anything that renders HTML; templ.Component satisfies it.
type Component = htmx.Component
