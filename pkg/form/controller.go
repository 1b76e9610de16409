package form

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-enrollform/pkg/model"
	"github.com/goliatone/go-enrollform/pkg/navigation"
	"github.com/goliatone/go-enrollform/pkg/validation"
)

// ErrAlreadySubmitted is returned when Submit runs on a form whose values were
// already handed off.
var ErrAlreadySubmitted = errors.New("form: already submitted")

// Controller holds the state of one form instance.
type Controller struct {
	schema    validation.Schema
	navigator navigation.Navigator
	target    string
	logger    *zap.Logger
	initial   model.Values

	values     model.Values
	errors     validation.FieldErrors
	touched    map[model.Field]bool
	submitting bool
}

// New constructs a Controller in its pristine state.
func New(options ...Option) *Controller {
	c := &Controller{
		schema:    validation.DefaultSchema(),
		navigator: navigation.Discard,
		target:    navigation.DefaultTargetRoute,
		logger:    zap.NewNop(),
		initial:   model.DefaultValues(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.Reset()
	return c
}

// Reset restores the initial values, clears the touched set and recomputes
// errors.
func (c *Controller) Reset() {
	c.values = c.initial.Clone()
	c.touched = make(map[model.Field]bool)
	c.submitting = false
	c.revalidate()
}

// SetFieldValue stores value for field and re-validates.
func (c *Controller) SetFieldValue(field model.Field, value any) error {
	if !field.Valid() {
		return fmt.Errorf("form: %w: %q", model.ErrUnknownField, field)
	}
	if err := c.values.Set(field, value); err != nil {
		return fmt.Errorf("form: set %s: %w", field, err)
	}
	c.revalidate()
	return nil
}

// SetFieldTouched marks field as visited, making its error visible.
func (c *Controller) SetFieldTouched(field model.Field) error {
	if !field.Valid() {
		return fmt.Errorf("form: %w: %q", model.ErrUnknownField, field)
	}
	c.touched[field] = true
	return nil
}

// Validate re-evaluates the schema against the current values.
func (c *Controller) Validate() validation.FieldErrors {
	c.revalidate()
	return c.errors.Clone()
}

// Submit validates the form. When any field is invalid every field is marked
// touched and the navigator is not called. Otherwise the values are handed to
// the navigator unchanged, once. The bool reports whether the handoff ran.
func (c *Controller) Submit(ctx context.Context) (bool, error) {
	if c.submitting {
		return false, ErrAlreadySubmitted
	}

	c.revalidate()
	if !c.errors.Empty() {
		for _, field := range model.Fields() {
			c.touched[field] = true
		}
		c.logger.Debug("submission blocked", zap.Any("errors", c.errors.Strings()))
		return false, nil
	}

	c.submitting = true
	values := c.values.Clone()
	c.logger.Info("form submitted", zap.Any("values", values))

	if err := c.navigator.Navigate(ctx, navigation.NewTarget(c.target, values)); err != nil {
		c.submitting = false
		return true, fmt.Errorf("form: navigate: %w", err)
	}
	return true, nil
}

// Values returns a copy of the current values.
func (c *Controller) Values() model.Values {
	return c.values.Clone()
}

// Errors returns every current violation, touched or not.
func (c *Controller) Errors() validation.FieldErrors {
	return c.errors.Clone()
}

// Touched reports whether field was visited.
func (c *Controller) Touched(field model.Field) bool {
	return c.touched[field]
}

// TouchedFields lists visited fields in form order.
func (c *Controller) TouchedFields() []model.Field {
	var out []model.Field
	for _, field := range model.Fields() {
		if c.touched[field] {
			out = append(out, field)
		}
	}
	return out
}

// VisibleError returns the message the presentation layer should show for
// field: its error once touched, "" otherwise.
func (c *Controller) VisibleError(field model.Field) string {
	if !c.touched[field] {
		return ""
	}
	return c.errors[field]
}

// Submitting reports whether valid values were handed off.
func (c *Controller) Submitting() bool {
	return c.submitting
}

// Valid reports whether the current values pass every rule.
func (c *Controller) Valid() bool {
	return c.errors.Empty()
}

// Required reports whether the schema requires field.
func (c *Controller) Required(field model.Field) bool {
	return c.schema.Required(field)
}

func (c *Controller) revalidate() {
	c.errors = c.schema.Validate(c.values)
}
