package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-enrollform/pkg/model"
	"github.com/goliatone/go-enrollform/pkg/render"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, model.FormModel, render.RenderOptions) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistryDefaultsToFirstRegistered(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(namedRenderer("html"))
	registry.MustRegister(namedRenderer("json"))

	got, err := registry.Resolve("")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Name() != "html" {
		t.Fatalf("expected html default, got %s", got.Name())
	}

	if err := registry.SetDefault("json"); err != nil {
		t.Fatalf("set default: %v", err)
	}
	got, _ = registry.Resolve("  ")
	if got.Name() != "json" {
		t.Fatalf("expected json default, got %s", got.Name())
	}

	if diff := cmp.Diff([]string{"html", "json"}, registry.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryRejectsDuplicatesAndUnknown(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(namedRenderer("html"))

	if err := registry.Register(namedRenderer("html")); err == nil {
		t.Fatalf("expected duplicate error")
	}
	if err := registry.Register(namedRenderer(" ")); err == nil {
		t.Fatalf("expected empty name error")
	}
	if _, err := registry.Get("pdf"); err == nil {
		t.Fatalf("expected not found error")
	}
	if err := registry.SetDefault("pdf"); err == nil {
		t.Fatalf("expected not found error for default")
	}
	if registry.Has("pdf") || !registry.Has("html") {
		t.Fatalf("unexpected Has results")
	}
}
