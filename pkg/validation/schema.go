package validation

import (
	"fmt"

	"github.com/goliatone/go-enrollform/pkg/model"
)

// Schema maps fields to their ordered rules. Fields are independent; the first
// failing rule of a field supplies its message.
type Schema struct {
	rules map[model.Field][]Rule
}

// NewSchema builds a Schema, rejecting rules for fields outside the form.
func NewSchema(rules map[model.Field][]Rule) (Schema, error) {
	out := make(map[model.Field][]Rule, len(rules))
	for field, fieldRules := range rules {
		if !field.Valid() {
			return Schema{}, fmt.Errorf("validation: %w: %q", model.ErrUnknownField, field)
		}
		out[field] = append([]Rule(nil), fieldRules...)
	}
	return Schema{rules: out}, nil
}

// DefaultSchema returns the enrollment rules.
func DefaultSchema() Schema {
	return Schema{rules: map[model.Field][]Rule{
		model.FieldName: {
			Required("Name is required"),
			MaxLength(20, "Name must be 20 characters or less."),
		},
		model.FieldEmail: {
			Required("Email is required"),
			Email("Invalid email address"),
		},
		model.FieldTerms: {
			Required("Terms of service must be checked"),
		},
		model.FieldPhone: {
			Required("Phone number is required"),
		},
		model.FieldOrganization: {
			Required("Organization name is required"),
		},
	}}
}

// Rules returns the rules declared for field.
func (s Schema) Rules(field model.Field) []Rule {
	return append([]Rule(nil), s.rules[field]...)
}

// Required reports whether field carries a required rule.
func (s Schema) Required(field model.Field) bool {
	for _, rule := range s.rules[field] {
		if rule.Kind == RuleRequired {
			return true
		}
	}
	return false
}

// Validate evaluates every field against values. It never returns nil.
func (s Schema) Validate(values model.Values) FieldErrors {
	errs := make(FieldErrors)
	for _, field := range model.Fields() {
		value, err := values.Get(field)
		if err != nil {
			continue
		}
		for _, rule := range s.rules[field] {
			if !rule.Check(value) {
				errs[field] = rule.Message
				break
			}
		}
	}
	return errs
}

// Validate runs the default schema.
func Validate(values model.Values) FieldErrors {
	return DefaultSchema().Validate(values)
}
