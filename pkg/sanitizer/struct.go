package sanitizer

import (
	"errors"
	"reflect"
	"strings"
)

// ErrInvalidTarget is returned when SanitizeStruct gets anything but a struct pointer.
var ErrInvalidTarget = errors.New("sanitizer: target must be a non-nil pointer to a struct")

// SanitizeStruct rewrites string fields in place according to their
// `sanitize` tag. "trim" only strips surrounding whitespace and keeps the
// text otherwise verbatim; "line", "multiline" and "strip" also filter
// markup. Untagged fields and unknown tag values are left alone.
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := range rt.NumField() {
		sf := rt.Field(i)
		f := rv.Field(i)
		if !sf.IsExported() || f.Kind() != reflect.String {
			continue
		}
		switch sf.Tag.Get("sanitize") {
		case "trim":
			f.SetString(strings.TrimSpace(f.String()))
		case "line":
			f.SetString(Line(f.String()))
		case "multiline":
			f.SetString(Multiline(f.String()))
		case "strip":
			f.SetString(StripHTML(f.String()))
		}
	}
	return nil
}
