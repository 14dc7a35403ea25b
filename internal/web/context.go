package web

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/semhq/campaigner/pkg/binder"
	"github.com/semhq/campaigner/pkg/htmx"
	"github.com/semhq/campaigner/pkg/sanitizer"
	"github.com/semhq/campaigner/pkg/session"
	"github.com/semhq/campaigner/pkg/validator"
)

// ValidationErrors is a collection of field validation failures.
type ValidationErrors = validator.ValidationErrors

// Context provides request/response access and helper methods.
// It also implements context.Context by delegating to the request context.
type Context interface {
	context.Context

	// Request returns the underlying *http.Request.
	Request() *http.Request

	// Response returns the wrapped http.ResponseWriter.
	Response() http.ResponseWriter

	// ResponseWriter returns the wrapper with status and hook access.
	ResponseWriter() *ResponseWriter

	// Context returns the request's context.Context.
	Context() context.Context

	// Param returns the URL parameter value by name.
	Param(name string) string

	// Query returns the query parameter value by name.
	Query(name string) string

	// Form returns the form value by name.
	Form(name string) string

	// Header returns the request header value by name.
	Header(name string) string

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// JSON writes a JSON response with the given status code.
	JSON(code int, v any) error

	// String writes a plain text response with the given status code.
	String(code int, s string) error

	// NoContent writes a response with no body.
	NoContent(code int) error

	// Redirect sends HX-Redirect to htmx and a 303 to everyone else.
	Redirect(url string) error

	// Error creates an HTTPError without writing a response.
	// Return it from the handler to reach the error handler.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// IsHTMX returns true if the request originated from htmx.
	IsHTMX() bool

	// Render writes component with the given status code.
	// htmx options are applied only to htmx requests.
	Render(code int, component Component, opts ...htmx.Option) error

	// RenderPartial renders partial for htmx requests and fullPage otherwise.
	RenderPartial(code int, fullPage, partial Component, opts ...htmx.Option) error

	// Bind binds form data, sanitizes, and validates into a struct.
	// Validation failures come back as ValidationErrors, never as error.
	Bind(v any) (ValidationErrors, error)

	// BindQuery is Bind over the query string.
	BindQuery(v any) (ValidationErrors, error)

	// Written returns true if a response has already been written.
	Written() bool

	// Logger returns the request logger.
	Logger() *slog.Logger

	LogDebug(msg string, attrs ...any)
	LogInfo(msg string, attrs ...any)
	LogWarn(msg string, attrs ...any)
	LogError(msg string, attrs ...any)

	// Set stores a value in the request context.
	Set(key any, value any)

	// Get retrieves a value from the request context.
	Get(key any) any

	// SetContext replaces the request context, for example to add a deadline.
	SetContext(ctx context.Context)

	// Session returns the current session, creating one when needed.
	// Changes are saved automatically before the response is written.
	Session() (*session.Session, error)

	// SessionValue returns a session value or an empty string.
	SessionValue(key string) string

	// SetSessionValues stores key/value pairs in the session.
	SetSessionValues(kv map[string]string) error
}

type requestContext struct {
	request        *http.Request
	responseWriter *ResponseWriter
	logger         *slog.Logger
	sessionManager *SessionManager
	session        *session.Session
	hookRegistered bool
}

// newContext reuses an existing ResponseWriter so middleware and handlers
// share hooks and status.
func newContext(w http.ResponseWriter, r *http.Request, app *App) *requestContext {
	rw, ok := w.(*ResponseWriter)
	if !ok {
		rw = NewResponseWriter(w, htmx.IsHTMX(r))
	}
	return &requestContext{
		request:        r,
		responseWriter: rw,
		logger:         app.logger,
		sessionManager: app.sessionManager,
	}
}

func (c *requestContext) Request() *http.Request {
	return c.request
}

func (c *requestContext) Response() http.ResponseWriter {
	return c.responseWriter
}

func (c *requestContext) ResponseWriter() *ResponseWriter {
	return c.responseWriter
}

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *requestContext) Form(name string) string {
	return c.request.FormValue(name)
}

func (c *requestContext) Deadline() (time.Time, bool) {
	return c.request.Context().Deadline()
}

func (c *requestContext) Done() <-chan struct{} {
	return c.request.Context().Done()
}

func (c *requestContext) Err() error {
	return c.request.Context().Err()
}

func (c *requestContext) Value(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.responseWriter.Header().Set(name, value)
}

func (c *requestContext) JSON(code int, v any) error {
	c.responseWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.responseWriter.WriteHeader(code)
	return json.NewEncoder(c.responseWriter).Encode(v)
}

func (c *requestContext) String(code int, s string) error {
	c.responseWriter.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.responseWriter.WriteHeader(code)
	_, err := c.responseWriter.Write([]byte(s))
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.responseWriter.WriteHeader(code)
	return nil
}

func (c *requestContext) Redirect(url string) error {
	htmx.Redirect(c.responseWriter, c.request, url)
	return nil
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(code, message, opts...)
}

func (c *requestContext) IsHTMX() bool {
	return htmx.IsHTMX(c.request)
}

func (c *requestContext) Render(code int, component Component, opts ...htmx.Option) error {
	c.responseWriter.Header().Set("Content-Type", "text/html; charset=utf-8")

	var resp *htmx.Response
	if len(opts) > 0 && c.IsHTMX() {
		resp = htmx.NewResponse(opts...)
		resp.WriteHeaders(c.responseWriter)
	}

	c.responseWriter.WriteHeader(code)

	if err := component.Render(c.request.Context(), c.responseWriter); err != nil {
		return err
	}
	return resp.RenderOOB(c.request.Context(), c.responseWriter)
}

func (c *requestContext) RenderPartial(code int, fullPage, partial Component, opts ...htmx.Option) error {
	if c.IsHTMX() {
		return c.Render(code, partial, opts...)
	}
	return c.Render(code, fullPage)
}

func (c *requestContext) Bind(v any) (ValidationErrors, error) {
	return c.bindAndValidate(binder.Form(), v, "bind form")
}

func (c *requestContext) BindQuery(v any) (ValidationErrors, error) {
	return c.bindAndValidate(binder.Query(), v, "bind query")
}

func (c *requestContext) bindAndValidate(bind func(*http.Request, any) error, v any, label string) (ValidationErrors, error) {
	if err := bind(c.request, v); err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	if err := sanitizer.SanitizeStruct(v); err != nil {
		return nil, fmt.Errorf("sanitize: %w", err)
	}
	if err := validator.ValidateStruct(v); err != nil {
		if validator.IsValidationError(err) {
			return validator.ExtractValidationErrors(err), nil
		}
		return nil, fmt.Errorf("validate: %w", err)
	}
	return nil, nil
}

func (c *requestContext) Written() bool {
	return c.responseWriter.Written()
}

func (c *requestContext) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	ctx := context.WithValue(c.request.Context(), key, value)
	c.request = c.request.WithContext(ctx)
}

func (c *requestContext) SetContext(ctx context.Context) {
	c.request = c.request.WithContext(ctx)
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Session() (*session.Session, error) {
	if c.sessionManager == nil {
		return nil, ErrSessionNotConfigured
	}
	if c.session != nil {
		return c.session, nil
	}

	sess, err := c.sessionManager.Load(c.Context(), c.request)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	c.session = sess

	if !c.hookRegistered {
		c.hookRegistered = true
		c.responseWriter.OnBeforeWrite(func() {
			if err := c.sessionManager.Save(c.Context(), c.responseWriter, c.session); err != nil {
				c.LogError("failed to save session", slog.Any("error", err))
			}
		})
	}
	return c.session, nil
}

func (c *requestContext) SessionValue(key string) string {
	sess, err := c.Session()
	if err != nil {
		return ""
	}
	return sess.GetString(key)
}

func (c *requestContext) SetSessionValues(kv map[string]string) error {
	sess, err := c.Session()
	if err != nil {
		return err
	}
	for k, v := range kv {
		sess.Set(k, v)
	}
	return nil
}

// Context returns the request context.
func (c *requestContext) Context() context.Context {
	return c.request.Context()
}
