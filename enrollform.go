// Package enrollform is the entry point for embedding the enrollment form:
// it re-exports the controller, the HTTP server and the built-in theme so
// callers can wire the form without importing each subpackage.
package enrollform

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-enrollform/pkg/form"
	"github.com/goliatone/go-enrollform/pkg/model"
	"github.com/goliatone/go-enrollform/pkg/navigation"
	"github.com/goliatone/go-enrollform/pkg/render"
	"github.com/goliatone/go-enrollform/pkg/server"
	"github.com/goliatone/go-enrollform/pkg/theming"
)

// Values aliases model.Values.
type Values = model.Values

// Controller aliases form.Controller.
type Controller = form.Controller

// Navigator aliases navigation.Navigator.
type Navigator = navigation.Navigator

// RenderOptions describes per-request state renderers use to prefill values
// and surface visible errors.
type RenderOptions = render.RenderOptions

// NewController builds a form controller with the default rules.
func NewController(options ...form.Option) *Controller {
	return form.New(options...)
}

// NewServer builds the HTTP server.
func NewServer(options ...server.Option) (*server.Server, error) {
	return server.New(options...)
}

// Theme resolves a variant of the built-in theme into renderer config. Blank
// arguments select the defaults.
func Theme(name, variant string) (*theme.RendererConfig, error) {
	selector, err := theming.NewSelector()
	if err != nil {
		return nil, err
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, err
	}
	return theming.Config(selection), nil
}
