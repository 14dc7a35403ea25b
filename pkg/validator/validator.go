package validator

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(fieldName)
	})
	return instance
}

// fieldName reports the form name of a field so errors line up with inputs.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"form", "json", "env"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// ValidateStruct checks v against its `validate` tags.
// Field failures are returned as ValidationErrors; anything else, such as a
// non-struct argument, is returned as is.
func ValidateStruct(v any) error {
	err := get().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(t, fe),
		})
	}
	return out
}

// message prefers the field's `message` tag and falls back to a generic text.
func message(t reflect.Type, fe validator.FieldError) string {
	if sf, ok := t.FieldByName(fe.StructField()); ok {
		if m := sf.Tag.Get("message"); m != "" {
			return m
		}
	}
	switch fe.Tag() {
	case "required", "required_if", "required_with":
		return fe.Field() + " is required"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "email":
		return fe.Field() + " must be a valid email address"
	}
	return fe.Field() + " is invalid"
}
