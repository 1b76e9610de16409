package form

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-enrollform/pkg/model"
	"github.com/goliatone/go-enrollform/pkg/navigation"
	"github.com/goliatone/go-enrollform/pkg/validation"
)

// Option configures a Controller.
type Option func(*Controller)

// WithSchema replaces the default rule table.
func WithSchema(schema validation.Schema) Option {
	return func(c *Controller) {
		c.schema = schema
	}
}

// WithNavigator sets the action invoked after a successful submit.
func WithNavigator(navigator navigation.Navigator) Option {
	return func(c *Controller) {
		if navigator != nil {
			c.navigator = navigator
		}
	}
}

// WithTargetRoute overrides the confirmation route.
func WithTargetRoute(path string) Option {
	return func(c *Controller) {
		if path != "" {
			c.target = path
		}
	}
}

// WithInitialValues seeds the form, and Reset, with values other than the
// defaults.
func WithInitialValues(values model.Values) Option {
	return func(c *Controller) {
		c.initial = values.Clone()
	}
}

// WithLogger attaches a logger for submission events.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}
