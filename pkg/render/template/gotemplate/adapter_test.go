package gotemplate_test

import (
	"bytes"
	"embed"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-enrollform/pkg/render/template/gotemplate"
)

//go:embed testdata/*.tmpl
var templates embed.FS

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(templates)}, options...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngineRenderTemplateWritesOutput(t *testing.T) {
	engine := newEngine(t)

	var buf bytes.Buffer
	got, err := engine.RenderTemplate("testdata/hello", map[string]any{"name": "Ada"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello, Ada!" {
		t.Fatalf("unexpected output %q", got)
	}
	if buf.String() != got {
		t.Fatalf("writer mismatch: %q", buf.String())
	}
}

func TestEngineGlobalsAndStructData(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"site": map[string]any{"title": "Enroll"},
	}))

	data := struct {
		Page string `json:"page"`
	}{Page: "success"}

	got, err := engine.RenderTemplate("testdata/globals.tmpl", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Enroll / success" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngineFilterOption(t *testing.T) {
	engine := newEngine(t, gotemplate.WithFilter("shout", func(input any, _ any) (any, error) {
		s, _ := input.(string)
		return strings.ToUpper(s) + "!", nil
	}))

	got, err := engine.RenderTemplate("testdata/shout", map[string]any{
		"field": map[string]any{"label": "name"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "NAME!" {
		t.Fatalf("unexpected output %q", got)
	}

	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}
}

func TestEngineEscapesValues(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderTemplate("testdata/escape", map[string]any{"text": "<b>hi</b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(got, "<b>") {
		t.Fatalf("expected escaped output, got %q", got)
	}
}

func TestEngineRenderString(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderString("{{ a|trim }}-{{ b }}", map[string]any{"a": "  x ", "b": 2})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "x-2" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestNewRequiresTemplateSource(t *testing.T) {
	if _, err := gotemplate.New(); !errors.Is(err, gotemplate.ErrNoTemplates) {
		t.Fatalf("expected ErrNoTemplates, got %v", err)
	}
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("testdata/missing", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
}
