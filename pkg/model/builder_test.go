package model_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-enrollform/pkg/model"
)

func TestBuilderProducesEveryField(t *testing.T) {
	form, err := model.NewBuilder().Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	got := make([]model.Field, 0, len(form.Fields))
	for _, spec := range form.Fields {
		got = append(got, spec.Name)
	}
	if diff := cmp.Diff(model.Fields(), got); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	country, ok := form.Field(model.FieldCountry)
	if !ok {
		t.Fatalf("expected country field")
	}
	if diff := cmp.Diff(model.Countries(), country.Options); diff != "" {
		t.Fatalf("country options mismatch (-want +got):\n%s", diff)
	}
	if form.Method != "POST" || form.Action != "/" {
		t.Fatalf("unexpected submission target %s %s", form.Method, form.Action)
	}
}

func TestBuilderAppliesOptionsAndDecorators(t *testing.T) {
	relabel := model.DecoratorFunc(func(form *model.FormModel) error {
		form.SubmitLabel = "Enroll"
		return nil
	})

	form, err := model.NewBuilder(
		model.WithAction("/enroll"),
		model.WithCountries([]string{"Germany"}),
		model.WithDecorators(relabel),
	).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if form.Action != "/enroll" {
		t.Fatalf("expected action override, got %q", form.Action)
	}
	if form.SubmitLabel != "Enroll" {
		t.Fatalf("expected decorator to run, got %q", form.SubmitLabel)
	}
	country, _ := form.Field(model.FieldCountry)
	if diff := cmp.Diff([]string{"Germany"}, country.Options); diff != "" {
		t.Fatalf("country options mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilderPropagatesDecoratorErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := model.NewBuilder(model.WithDecorators(model.DecoratorFunc(func(*model.FormModel) error {
		return boom
	}))).Build()
	if !errors.Is(err, boom) {
		t.Fatalf("expected decorator error, got %v", err)
	}
}

func TestRelabelFields(t *testing.T) {
	form, err := model.NewBuilder(model.WithDecorators(model.RelabelFields(map[model.Field]string{
		model.FieldOrganization: "Company",
		model.FieldPhone:        "Mobile",
	}))).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	organization, _ := form.Field(model.FieldOrganization)
	phone, _ := form.Field(model.FieldPhone)
	name, _ := form.Field(model.FieldName)
	if organization.Label != "Company" || phone.Label != "Mobile" || name.Label != "Name" {
		t.Fatalf("unexpected labels %q %q %q", organization.Label, phone.Label, name.Label)
	}
}

func TestRelabelFieldsRejectsUnknownField(t *testing.T) {
	_, err := model.NewBuilder(model.WithDecorators(model.RelabelFields(map[model.Field]string{
		"age": "Age",
	}))).Build()
	if !errors.Is(err, model.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}
