package model

// InputType is the control a field renders as.
type InputType string

const (
	InputText     InputType = "text"
	InputEmail    InputType = "email"
	InputTel      InputType = "tel"
	InputSelect   InputType = "select"
	InputCheckbox InputType = "checkbox"
	InputTextArea InputType = "textarea"
)

// FieldSpec describes how a single field is presented. Label is the resting
// text; renderers swap it for the field's error once the field is touched and
// invalid.
type FieldSpec struct {
	Name        Field     `json:"name"`
	Type        InputType `json:"type"`
	Label       string    `json:"label"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []string  `json:"options,omitempty"`
	Text        string    `json:"text,omitempty"`
	Required    bool      `json:"required"`
}

// FormModel is the presentation description renderers consume.
type FormModel struct {
	ID          string      `json:"id"`
	Action      string      `json:"action"`
	Method      string      `json:"method"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	SubmitLabel string      `json:"submitLabel"`
	Fields      []FieldSpec `json:"fields"`
}

// Field returns the spec for name.
func (f FormModel) Field(name Field) (FieldSpec, bool) {
	for _, spec := range f.Fields {
		if spec.Name == name {
			return spec, true
		}
	}
	return FieldSpec{}, false
}
