package form

import (
	"github.com/goliatone/go-enrollform/pkg/model"
	"github.com/goliatone/go-enrollform/pkg/validation"
)

// State is a read-only snapshot for presentation layers.
type State struct {
	Values     model.Values           `json:"values"`
	Errors     validation.FieldErrors `json:"errors"`
	Touched    []model.Field          `json:"touched"`
	Visible    validation.FieldErrors `json:"visible"`
	Submitting bool                   `json:"submitting"`
}

// State snapshots the controller.
func (c *Controller) State() State {
	visible := make(validation.FieldErrors)
	for field, message := range c.errors {
		if c.touched[field] {
			visible[field] = message
		}
	}
	return State{
		Values:     c.values.Clone(),
		Errors:     c.errors.Clone(),
		Touched:    c.TouchedFields(),
		Visible:    visible,
		Submitting: c.submitting,
	}
}

// IsTouched reports whether field is in the snapshot's touched set.
func (s State) IsTouched(field model.Field) bool {
	for _, touched := range s.Touched {
		if touched == field {
			return true
		}
	}
	return false
}
