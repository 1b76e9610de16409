// Package jsonstate renders the form model together with the controller
// state as JSON, for clients that draw the form themselves.
package jsonstate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-enrollform/pkg/form"
	"github.com/goliatone/go-enrollform/pkg/model"
	"github.com/goliatone/go-enrollform/pkg/render"
)

// Document is the rendered payload.
type Document struct {
	Form   model.FormModel    `json:"form"`
	State  form.State         `json:"state"`
	Fields []render.FieldView `json:"fields"`
	Theme  *Theme             `json:"theme,omitempty"`
}

// Theme carries the resolved theme tokens.
type Theme struct {
	Name    string            `json:"name"`
	Variant string            `json:"variant"`
	Tokens  map[string]string `json:"tokens,omitempty"`
}

// Renderer implements render.Renderer.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

// New returns a renderer. A non-empty indent pretty-prints the output.
func New(indent string) *Renderer {
	return &Renderer{indent: indent}
}

func (r *Renderer) Name() string        { return "json" }
func (r *Renderer) ContentType() string { return "application/json" }

func (r *Renderer) Render(_ context.Context, formModel model.FormModel, opts render.RenderOptions) ([]byte, error) {
	doc := Document{
		Form:   formModel,
		State:  opts.State,
		Fields: render.FieldViews(formModel, opts.State),
	}
	if opts.Theme != nil {
		doc.Theme = &Theme{
			Name:    opts.Theme.Theme,
			Variant: opts.Theme.Variant,
			Tokens:  opts.Theme.Tokens,
		}
	}

	var (
		payload []byte
		err     error
	)
	if r.indent != "" {
		payload, err = json.MarshalIndent(doc, "", r.indent)
	} else {
		payload, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("jsonstate: encode: %w", err)
	}
	return payload, nil
}
