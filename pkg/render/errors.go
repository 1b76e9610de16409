package render

import (
	"strings"

	"github.com/goliatone/go-enrollform/pkg/form"
	"github.com/goliatone/go-enrollform/pkg/model"
)

// FieldLabel returns the text shown above a field: the field's error once it
// is touched and invalid, its label otherwise. The bool reports the error case.
func FieldLabel(spec model.FieldSpec, state form.State) (string, bool) {
	if message := strings.TrimSpace(state.Visible[spec.Name]); message != "" {
		return message, true
	}
	return spec.Label, false
}

// VisibleMessages lists visible errors in form order, dropping blanks.
func VisibleMessages(state form.State) []string {
	var out []string
	for _, field := range model.Fields() {
		if message := strings.TrimSpace(state.Visible[field]); message != "" {
			out = append(out, message)
		}
	}
	return out
}
