package model_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-enrollform/pkg/model"
)

func TestDefaultValues(t *testing.T) {
	want := model.Values{Country: "United Kingdom"}
	if diff := cmp.Diff(want, model.DefaultValues()); diff != "" {
		t.Fatalf("default values mismatch (-want +got):\n%s", diff)
	}
}

func TestValuesSetAcceptsFormShapes(t *testing.T) {
	var values model.Values

	steps := []struct {
		field model.Field
		value any
	}{
		{model.FieldName, "Ada"},
		{model.FieldEmail, []string{"ada@example.com"}},
		{model.FieldCountry, "Germany"},
		{model.FieldTerms, []string{model.TermsChecked}},
		{model.FieldPhone, "  +44 20 "},
		{model.FieldOrganization, "Analytical Engines"},
		{model.FieldMessage, nil},
	}
	for _, step := range steps {
		if err := values.Set(step.field, step.value); err != nil {
			t.Fatalf("set %s: %v", step.field, err)
		}
	}

	want := model.Values{
		Name:         "Ada",
		Email:        "ada@example.com",
		Country:      "Germany",
		Terms:        []string{"checked"},
		Phone:        "  +44 20 ",
		Organization: "Analytical Engines",
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestValuesSetTermsUnchecked(t *testing.T) {
	values := model.Values{Terms: []string{model.TermsChecked}}

	for _, unchecked := range []any{"", []string{}, nil, false} {
		values.Terms = []string{model.TermsChecked}
		if err := values.Set(model.FieldTerms, unchecked); err != nil {
			t.Fatalf("set terms %#v: %v", unchecked, err)
		}
		if len(values.Terms) != 0 {
			t.Fatalf("expected terms cleared for %#v, got %v", unchecked, values.Terms)
		}
	}
}

func TestValuesSetRejectsBadInput(t *testing.T) {
	var values model.Values

	if err := values.Set(model.Field("age"), "42"); !errors.Is(err, model.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if err := values.Set(model.FieldName, 42); !errors.Is(err, model.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue for int, got %v", err)
	}
	if err := values.Set(model.FieldName, []string{"a", "b"}); !errors.Is(err, model.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue for multi value, got %v", err)
	}
}

func TestValuesCloneDetachesTerms(t *testing.T) {
	original := model.Values{Terms: []string{model.TermsChecked}}
	clone := original.Clone()
	clone.Terms[0] = "changed"

	if original.Terms[0] != model.TermsChecked {
		t.Fatalf("clone shares terms slice with original")
	}
}

func TestParseField(t *testing.T) {
	field, err := model.ParseField(" email ")
	if err != nil {
		t.Fatalf("parse field: %v", err)
	}
	if field != model.FieldEmail {
		t.Fatalf("expected email, got %q", field)
	}
	if _, err := model.ParseField("password"); !errors.Is(err, model.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestParseValuesJSONAndYAML(t *testing.T) {
	fromJSON, err := model.ParseValues([]byte(`{"name":"Ada","email":"ada@example.com","terms":["checked"],"phone":5550100}`))
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	fromYAML, err := model.ParseValues([]byte("name: Ada\nemail: ada@example.com\nterms: true\nphone: 5550100\n"))
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}

	want := model.Values{
		Name:    "Ada",
		Email:   "ada@example.com",
		Country: model.DefaultCountry,
		Terms:   []string{model.TermsChecked},
		Phone:   "5550100",
	}
	if diff := cmp.Diff(want, fromJSON); diff != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, fromYAML); diff != "" {
		t.Fatalf("yaml mismatch (-want +got):\n%s", diff)
	}
}

func TestParseValuesRejectsUnknownFields(t *testing.T) {
	if _, err := model.ParseValues([]byte(`{"age": "12"}`)); !errors.Is(err, model.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if _, err := model.ParseValues([]byte("   ")); err == nil {
		t.Fatalf("expected empty document error")
	}
}
