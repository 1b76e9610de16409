package model

import (
	"errors"
	"fmt"
	"strings"
)

// Field identifies one of the form inputs.
type Field string

const (
	FieldName         Field = "name"
	FieldEmail        Field = "email"
	FieldCountry      Field = "country"
	FieldTerms        Field = "terms"
	FieldPhone        Field = "phone"
	FieldOrganization Field = "organization"
	FieldMessage      Field = "message"
)

// fieldOrder is the order inputs appear on the page.
var fieldOrder = []Field{
	FieldName,
	FieldEmail,
	FieldCountry,
	FieldTerms,
	FieldPhone,
	FieldOrganization,
	FieldMessage,
}

const (
	// DefaultCountry seeds the country select on a fresh form.
	DefaultCountry = "United Kingdom"
	// TermsChecked is the value the terms checkbox submits when ticked.
	TermsChecked = "checked"
)

var countries = []string{"United States", "United Kingdom", "Germany"}

var (
	// ErrUnknownField is returned when a caller names a field outside the form.
	ErrUnknownField = errors.New("model: unknown field")
	// ErrInvalidValue is returned when a value has the wrong shape for a field.
	ErrInvalidValue = errors.New("model: invalid value")
)

// Fields returns every field in render order.
func Fields() []Field {
	return append([]Field(nil), fieldOrder...)
}

// Countries returns the built-in country options.
func Countries() []string {
	return append([]string(nil), countries...)
}

// ParseField resolves an input name into a Field.
func ParseField(name string) (Field, error) {
	candidate := Field(strings.TrimSpace(name))
	if !candidate.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return candidate, nil
}

// Valid reports whether f is part of the form.
func (f Field) Valid() bool {
	for _, known := range fieldOrder {
		if f == known {
			return true
		}
	}
	return false
}

// String returns the input name.
func (f Field) String() string {
	return string(f)
}
