package model

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const enrollmentFormID = "enrollment"

// Builder produces the enrollment FormModel.
type Builder interface {
	Build() (FormModel, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	action     string
	countries  []string
	decorators []Decorator
}

// WithAction sets the path the form posts to.
func WithAction(action string) BuilderOption {
	return func(opts *builderOptions) {
		if trimmed := strings.TrimSpace(action); trimmed != "" {
			opts.action = trimmed
		}
	}
}

// WithCountries replaces the built-in country options.
func WithCountries(countries []string) BuilderOption {
	return func(opts *builderOptions) {
		if len(countries) > 0 {
			opts.countries = append([]string(nil), countries...)
		}
	}
}

// WithDecorators registers decorators that run after the base model is built.
func WithDecorators(decorators ...Decorator) BuilderOption {
	return func(opts *builderOptions) {
		opts.decorators = append(opts.decorators, decorators...)
	}
}

type builder struct {
	opts builderOptions
}

// NewBuilder returns a Builder for the enrollment form.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{
		action:    "/",
		countries: Countries(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return &builder{opts: cfg}
}

func (b *builder) Build() (FormModel, error) {
	if len(b.opts.countries) == 0 {
		return FormModel{}, errors.New("model builder: at least one country is required")
	}

	form := FormModel{
		ID:          enrollmentFormID,
		Action:      b.opts.action,
		Method:      http.MethodPost,
		Title:       "Let's get started 👋",
		Description: "Join our E-learning platform today and unlock over 500+ courses",
		SubmitLabel: "Start learning today!",
		Fields: []FieldSpec{
			{Name: FieldName, Type: InputText, Label: "Name", Placeholder: "Enter your name", Required: true},
			{Name: FieldEmail, Type: InputEmail, Label: "Email", Placeholder: "Enter your email address", Required: true},
			{Name: FieldCountry, Type: InputSelect, Label: "Country", Options: append([]string(nil), b.opts.countries...)},
			{
				Name:     FieldTerms,
				Type:     InputCheckbox,
				Label:    "Terms of service",
				Text:     "I agree to the Terms and Service that my data will be taken and sold.",
				Required: true,
			},
			{Name: FieldPhone, Type: InputTel, Label: "Phone Number", Placeholder: "Enter your phone number", Required: true},
			{Name: FieldOrganization, Type: InputText, Label: "Organization/Company Name", Placeholder: "Enter your organization/company name", Required: true},
			{Name: FieldMessage, Type: InputTextArea, Label: "Message/Comments", Placeholder: "Enter your message or comments"},
		},
	}

	for _, decorator := range b.opts.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(&form); err != nil {
			return FormModel{}, fmt.Errorf("model builder: decorate: %w", err)
		}
	}
	return form, nil
}
