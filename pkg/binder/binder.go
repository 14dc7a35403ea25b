package binder

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/form/v4"
)

var (
	// ErrInvalidTarget is returned when the destination is not a pointer to a struct.
	ErrInvalidTarget = errors.New("binder: target must be a non-nil pointer to a struct")

	// ErrParse is returned when a value cannot be converted to the field type.
	ErrParse = errors.New("binder: failed to parse value")
)

// maxFormMemory bounds multipart parsing; the forms here are text only.
const maxFormMemory = 1 << 20

// decoder caches struct metadata and is safe for concurrent use.
var decoder = form.NewDecoder()

// Form returns a binder that reads the request body form (and query string).
func Form() func(*http.Request, any) error {
	return func(r *http.Request, v any) error {
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			if err := r.ParseMultipartForm(maxFormMemory); err != nil {
				return fmt.Errorf("parse multipart form: %w", err)
			}
		} else if err := r.ParseForm(); err != nil {
			return fmt.Errorf("parse form: %w", err)
		}
		return Values(r.Form, v)
	}
}

// Query returns a binder that reads only the URL query string.
func Query() func(*http.Request, any) error {
	return func(r *http.Request, v any) error {
		return Values(r.URL.Query(), v)
	}
}

// Values copies form values into the struct fields tagged with `form:"name"`.
// Missing keys leave fields untouched. A checkbox field (bool) is true when
// the key is present with "on", "true", "1" or "yes".
func Values(values url.Values, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	if err := decoder.Decode(v, values); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	return nil
}
