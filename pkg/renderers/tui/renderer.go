package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-enrollform/pkg/form"
	"github.com/goliatone/go-enrollform/pkg/model"
	"github.com/goliatone/go-enrollform/pkg/navigation"
	"github.com/goliatone/go-enrollform/pkg/render"
)

// Renderer runs the form as a terminal session. Each answer is applied to a
// form.Controller and the field is marked touched, so a field is asked again
// while its error is visible. Once every field is valid the controller
// submits and Render returns the submitted values serialized.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	controllerOptions []form.Option
	maxAttempts       int
	theme             Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		maxAttempts:  DefaultMaxAttempts,
		theme:        Theme{ErrorPrefix: "✗ "},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	switch r.outputFormat {
	case OutputFormatJSON, OutputFormatFormURLEncoded, OutputFormatPrettyText:
	default:
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render prompts every field of the form in order, seeded with the values in
// opts.State, then submits.
func (r *Renderer) Render(ctx context.Context, formModel model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	controllerOptions := append([]form.Option(nil), r.controllerOptions...)
	if !opts.State.Values.IsZero() {
		controllerOptions = append(controllerOptions, form.WithInitialValues(opts.State.Values))
	}
	ctrl := form.New(controllerOptions...)

	if formModel.Title != "" {
		if err := r.info(ctx, formModel.Title); err != nil {
			return nil, err
		}
	}

	for _, spec := range formModel.Fields {
		if err := r.promptField(ctx, ctrl, spec); err != nil {
			return nil, err
		}
	}

	submitted, err := ctrl.Submit(ctx)
	if err != nil {
		return nil, fmt.Errorf("tui: submit: %w", err)
	}
	if !submitted {
		return nil, fmt.Errorf("%w: %s", ErrNotSubmitted, strings.Join(render.VisibleMessages(ctrl.State()), "; "))
	}
	return r.serialize(formModel, ctrl.Values())
}

func (r *Renderer) promptField(ctx context.Context, ctrl *form.Controller, spec model.FieldSpec) error {
	for attempt := 1; ; attempt++ {
		answer, err := r.ask(ctx, spec, ctrl.Values())
		if err != nil {
			return err
		}
		if err := ctrl.SetFieldValue(spec.Name, answer); err != nil {
			return fmt.Errorf("tui: set %s: %w", spec.Name, err)
		}
		if err := ctrl.SetFieldTouched(spec.Name); err != nil {
			return fmt.Errorf("tui: touch %s: %w", spec.Name, err)
		}

		message := ctrl.VisibleError(spec.Name)
		if message == "" {
			return nil
		}
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+message); err != nil {
			return err
		}
		if attempt >= r.maxAttempts {
			return fmt.Errorf("%w: %s", ErrMaxAttempts, spec.Name)
		}
	}
}

func (r *Renderer) ask(ctx context.Context, spec model.FieldSpec, values model.Values) (any, error) {
	current := values.String(spec.Name)

	switch spec.Type {
	case model.InputSelect:
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      spec.Label,
			Options:      spec.Options,
			DefaultIndex: indexOf(spec.Options, current),
			Help:         spec.Placeholder,
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(spec.Options) {
			return nil, fmt.Errorf("tui: %s: selection out of range", spec.Name)
		}
		return spec.Options[idx], nil
	case model.InputCheckbox:
		message := spec.Text
		if message == "" {
			message = spec.Label
		}
		ok, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: len(values.Terms) > 0,
			Help:    spec.Label,
		})
		if err != nil {
			return nil, err
		}
		if ok {
			return model.TermsChecked, nil
		}
		return "", nil
	case model.InputTextArea:
		return r.driver.TextArea(ctx, TextAreaConfig{
			Message: spec.Label,
			Default: current,
			Help:    spec.Placeholder,
		})
	default:
		return r.driver.Input(ctx, InputConfig{
			Message: spec.Label,
			Default: current,
			Help:    spec.Placeholder,
		})
	}
}

func (r *Renderer) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

func (r *Renderer) serialize(formModel model.FormModel, values model.Values) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(navigation.Encode(values).Encode()), nil
	case OutputFormatPrettyText:
		var b strings.Builder
		for _, spec := range formModel.Fields {
			value := values.String(spec.Name)
			if spec.Name == model.FieldTerms {
				value = fmt.Sprintf("%t", len(values.Terms) > 0)
			}
			fmt.Fprintf(&b, "%s: %s\n", spec.Label, value)
		}
		return []byte(b.String()), nil
	default:
		payload, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("tui: encode values: %w", err)
		}
		return payload, nil
	}
}
