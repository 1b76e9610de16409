// Package testsupport holds fixtures shared by the package tests.
package testsupport

import (
	"net/url"
	"testing"

	"github.com/goliatone/go-enrollform/pkg/model"
	"github.com/goliatone/go-enrollform/pkg/navigation"
)

// BuildForm builds the default enrollment form model.
func BuildForm(t testing.TB, options ...model.BuilderOption) model.FormModel {
	t.Helper()

	formModel, err := model.NewBuilder(options...).Build()
	if err != nil {
		t.Fatalf("build form: %v", err)
	}
	return formModel
}

// ValidValues returns values that pass every rule.
func ValidValues() model.Values {
	return model.Values{
		Name:         "Ada",
		Email:        "ada@example.com",
		Country:      "Germany",
		Terms:        []string{model.TermsChecked},
		Phone:        "555-0100",
		Organization: "Analytical Engines",
	}
}

// ValidForm returns ValidValues encoded as a posted form body.
func ValidForm() url.Values {
	return navigation.Encode(ValidValues())
}
