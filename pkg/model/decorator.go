package model

import "fmt"

// Decorator adjusts a built form model, for example to relabel fields or
// point the form at a different action.
type Decorator interface {
	Decorate(*FormModel) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*FormModel) error

// Decorate calls fn.
func (fn DecoratorFunc) Decorate(form *FormModel) error {
	return fn(form)
}

// RelabelFields replaces the resting label of each named field. Error
// messages still replace the label once a field is touched and invalid.
func RelabelFields(labels map[Field]string) Decorator {
	return DecoratorFunc(func(form *FormModel) error {
		for field, label := range labels {
			if !field.Valid() {
				return fmt.Errorf("%w: %q", ErrUnknownField, field)
			}
			for i := range form.Fields {
				if form.Fields[i].Name == field {
					form.Fields[i].Label = label
				}
			}
		}
		return nil
	})
}
