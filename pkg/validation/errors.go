package validation

import (
	"github.com/goliatone/go-enrollform/pkg/model"
)

// ValidationError is a single field violation.
type ValidationError struct {
	Field   model.Field `json:"field"`
	Message string      `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// FieldErrors maps each invalid field to its message. An empty map means the
// values passed every rule.
type FieldErrors map[model.Field]string

// Has reports whether field is invalid.
func (e FieldErrors) Has(field model.Field) bool {
	_, ok := e[field]
	return ok
}

// Empty reports whether there are no violations.
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// Clone returns an independent copy.
func (e FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(e))
	for field, message := range e {
		out[field] = message
	}
	return out
}

// List returns the violations in form order.
func (e FieldErrors) List() []ValidationError {
	if len(e) == 0 {
		return nil
	}
	out := make([]ValidationError, 0, len(e))
	for _, field := range model.Fields() {
		if message, ok := e[field]; ok {
			out = append(out, ValidationError{Field: field, Message: message})
		}
	}
	return out
}

// Strings converts the keys to plain strings for templates and JSON payloads.
func (e FieldErrors) Strings() map[string]string {
	out := make(map[string]string, len(e))
	for field, message := range e {
		out[field.String()] = message
	}
	return out
}
