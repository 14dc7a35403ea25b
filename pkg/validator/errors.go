package validator

import (
	"errors"
	"strings"
)

// ValidationError describes one failed field.
type ValidationError struct {
	Field   string
	Tag     string
	Message string
}

// ValidationErrors is the set of failed fields in declaration order.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, ve := range e {
		msgs = append(msgs, ve.Field+": "+ve.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has reports whether field failed.
func (e ValidationErrors) Has(field string) bool {
	return e.Get(field) != ""
}

// Get returns the message for field or an empty string.
func (e ValidationErrors) Get(field string) string {
	for _, ve := range e {
		if ve.Field == field {
			return ve.Message
		}
	}
	return ""
}

// First returns the message of the first failed field.
func (e ValidationErrors) First() string {
	if len(e) == 0 {
		return ""
	}
	return e[0].Message
}

// IsValidationError reports whether err carries ValidationErrors.
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}

// ExtractValidationErrors returns the ValidationErrors in err, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
