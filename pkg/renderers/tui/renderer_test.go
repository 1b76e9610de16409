package tui

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-enrollform/pkg/form"
	"github.com/goliatone/go-enrollform/pkg/model"
	"github.com/goliatone/go-enrollform/pkg/navigation"
	"github.com/goliatone/go-enrollform/pkg/render"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	textAreas    []string
	infoMessages []string
	inputPos     int
	selectPos    int
	confirmPos   int
	textPos      int
	prompts      []string
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.prompts = append(s.prompts, cfg.Help)
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func enrollmentForm(t *testing.T) model.FormModel {
	t.Helper()
	formModel, err := model.NewBuilder().Build()
	if err != nil {
		t.Fatalf("build form: %v", err)
	}
	return formModel
}

func validDriver() *stubDriver {
	return &stubDriver{
		// name, email, phone, organization
		inputs:    []string{"Ada", "ada@example.com", "555-0100", "Analytical Engines"},
		selectIdx: []int{2},
		confirm:   []bool{true},
		textAreas: []string{"hello"},
	}
}

func TestRendererSubmitsValidSession(t *testing.T) {
	driver := validDriver()
	recorder := &navigation.Recorder{}

	r, err := New(
		WithPromptDriver(driver),
		WithControllerOptions(form.WithNavigator(recorder)),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := r.Render(context.Background(), enrollmentForm(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := model.Values{
		Name:         "Ada",
		Email:        "ada@example.com",
		Country:      "Germany",
		Terms:        []string{model.TermsChecked},
		Phone:        "555-0100",
		Organization: "Analytical Engines",
		Message:      "hello",
	}

	var got model.Values
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	if len(recorder.Calls) != 1 {
		t.Fatalf("expected one navigation, got %d", len(recorder.Calls))
	}
	target, _ := recorder.Last()
	if target.Path != navigation.DefaultTargetRoute {
		t.Fatalf("unexpected path %q", target.Path)
	}
	if diff := cmp.Diff(want, navigation.Decode(target.Query)); diff != "" {
		t.Fatalf("query mismatch (-want +got):\n%s", diff)
	}

	wantPrompts := []string{"Name", "Email", "Country", "Terms of service", "Phone Number", "Organization/Company Name", "Message/Comments"}
	if diff := cmp.Diff(wantPrompts, driver.prompts); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}
}

func TestRendererRepromptsWhileErrorVisible(t *testing.T) {
	driver := validDriver()
	driver.inputs = []string{"", "Ada", "ada@", "ada@example.com", "555-0100", "Analytical Engines"}
	driver.confirm = []bool{false, true}

	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := r.Render(context.Background(), enrollmentForm(t), render.RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}

	want := []string{
		"Let's get started 👋",
		"✗ Name is required",
		"✗ Invalid email address",
		"✗ Terms of service must be checked",
	}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("info messages mismatch (-want +got):\n%s", diff)
	}
}

func TestRendererStopsAfterMaxAttempts(t *testing.T) {
	driver := &stubDriver{inputs: []string{"", ""}}

	r, err := New(WithPromptDriver(driver), WithMaxAttempts(2))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	_, err = r.Render(context.Background(), enrollmentForm(t), render.RenderOptions{})
	if !errors.Is(err, ErrMaxAttempts) {
		t.Fatalf("expected ErrMaxAttempts, got %v", err)
	}
}

func TestRendererSeedsDefaultsFromState(t *testing.T) {
	driver := validDriver()
	driver.selectIdx = []int{1}

	r, _ := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatFormURLEncoded))

	state := form.New(form.WithInitialValues(model.Values{Country: "United States", Message: "seed"})).State()
	out, err := r.Render(context.Background(), enrollmentForm(t), render.RenderOptions{State: state})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "country=United+Kingdom") {
		t.Fatalf("unexpected form output %q", out)
	}
	if !strings.Contains(string(out), "terms=checked") {
		t.Fatalf("expected terms in output %q", out)
	}
}

func TestRendererPrettyOutput(t *testing.T) {
	r, _ := New(WithPromptDriver(validDriver()), WithOutputFormat(OutputFormatPrettyText))

	out, err := r.Render(context.Background(), enrollmentForm(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "Terms of service: true\n") {
		t.Fatalf("unexpected pretty output %q", out)
	}
	if r.ContentType() != "text/plain" {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}
}

func TestRendererPropagatesAbort(t *testing.T) {
	r, _ := New(WithPromptDriver(&abortDriver{stubDriver: validDriver()}))

	_, err := r.Render(context.Background(), enrollmentForm(t), render.RenderOptions{})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(WithPromptDriver(&stubDriver{}), WithOutputFormat("xml")); err == nil {
		t.Fatalf("expected format error")
	}
}

type abortDriver struct {
	*stubDriver
}

func (a *abortDriver) Select(context.Context, SelectConfig) (int, error) {
	return 0, ErrAborted
}
