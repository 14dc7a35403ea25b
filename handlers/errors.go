package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/semhq/campaigner/internal/web"
	"github.com/semhq/campaigner/middlewares"
	"github.com/semhq/campaigner/views"
)

// ErrorHandler renders handler errors as an error page, or as an inline
// notice for htmx requests. Internal details are logged, never shown.
func ErrorHandler(c web.Context, err error) error {
	code := http.StatusInternalServerError
	message := "Something went wrong. Please try again."

	var he *web.HTTPError
	switch {
	case errors.As(err, &he):
		code = he.Code
		message = he.Message
	case middlewares.IsTimeoutError(err):
		code = http.StatusGatewayTimeout
		message = "The request took too long. Please try again."
	}

	if code >= http.StatusInternalServerError {
		c.LogError("request failed", slog.Int("status", code), slog.Any("error", err))
	} else {
		c.LogWarn("request rejected", slog.Int("status", code), slog.Any("error", err))
	}

	return c.RenderPartial(code,
		views.ErrorPage(code, http.StatusText(code), message),
		views.ErrorFragment(message),
	)
}

// NotFound renders the 404 page.
func NotFound(c web.Context) error {
	return c.Render(http.StatusNotFound,
		views.ErrorPage(http.StatusNotFound, http.StatusText(http.StatusNotFound), "The page you are looking for does not exist."))
}
