package render

import (
	"github.com/goliatone/go-enrollform/pkg/form"
	"github.com/goliatone/go-enrollform/pkg/model"
)

// FieldView joins a field spec with controller state in the shape templates
// consume.
type FieldView struct {
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Label       string       `json:"label"`
	Invalid     bool         `json:"invalid"`
	Placeholder string       `json:"placeholder,omitempty"`
	Text        string       `json:"text,omitempty"`
	Value       string       `json:"value"`
	Checked     bool         `json:"checked"`
	Required    bool         `json:"required"`
	Options     []OptionView `json:"options,omitempty"`
}

// OptionView is a single select option.
type OptionView struct {
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

// FieldViews builds one view per field spec, in spec order.
func FieldViews(formModel model.FormModel, state form.State) []FieldView {
	views := make([]FieldView, 0, len(formModel.Fields))
	for _, spec := range formModel.Fields {
		label, invalid := FieldLabel(spec, state)
		view := FieldView{
			Name:        spec.Name.String(),
			Type:        string(spec.Type),
			Label:       label,
			Invalid:     invalid,
			Placeholder: spec.Placeholder,
			Text:        spec.Text,
			Value:       state.Values.String(spec.Name),
			Required:    spec.Required,
		}
		if spec.Name == model.FieldTerms {
			view.Value = model.TermsChecked
			view.Checked = len(state.Values.Terms) > 0
		}
		for _, option := range spec.Options {
			view.Options = append(view.Options, OptionView{
				Value:    option,
				Selected: option == view.Value,
			})
		}
		views = append(views, view)
	}
	return views
}
