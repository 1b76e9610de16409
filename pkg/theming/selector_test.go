package theming_test

import (
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-enrollform/pkg/theming"
)

func TestSelectorDefaults(t *testing.T) {
	selector, err := theming.NewSelector()
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}

	selection, err := selector.Select("", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selection.Theme != theming.DefaultTheme || selection.Variant != theming.DefaultVariant {
		t.Fatalf("unexpected selection %s/%s", selection.Theme, selection.Variant)
	}
	if diff := cmp.Diff([]string{theming.DefaultTheme}, selector.Themes()); diff != "" {
		t.Fatalf("themes mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectorUnknownThemeAndVariant(t *testing.T) {
	selector, _ := theming.NewSelector()

	if _, err := selector.Select("acme", ""); !errors.Is(err, theming.ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
	if _, err := selector.Select("", "neon"); !errors.Is(err, theming.ErrVariantNotFound) {
		t.Fatalf("expected ErrVariantNotFound, got %v", err)
	}
	if err := selector.Register(theming.DefaultManifest()); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestConfigMergesVariantTokens(t *testing.T) {
	selector, _ := theming.NewSelector()
	selection, err := selector.Select(theming.DefaultTheme, "dark")
	if err != nil {
		t.Fatalf("select: %v", err)
	}

	cfg := theming.Config(selection)
	if cfg.Tokens["surface"] != "#0f172a" {
		t.Fatalf("expected dark surface token, got %q", cfg.Tokens["surface"])
	}
	if cfg.Tokens["accent"] != "#0d9488" {
		t.Fatalf("expected base accent token, got %q", cfg.Tokens["accent"])
	}
	if cfg.CSSVars["--surface"] != "#0f172a" {
		t.Fatalf("css vars not derived from tokens")
	}
	if got := cfg.AssetURL(theming.AssetStylesheet); got != "/assets/enrollform.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("expected empty url for unknown asset, got %q", got)
	}
}

func TestCSSVarsStyleIsSorted(t *testing.T) {
	cfg := &theme.RendererConfig{CSSVars: map[string]string{
		"--text":   "#000",
		"--accent": "#0d9488",
	}}

	want := ":root{--accent:#0d9488;--text:#000;}"
	if got := theming.CSSVarsStyle(cfg); got != want {
		t.Fatalf("style mismatch\nwant: %q\n got: %q", want, got)
	}
	if theming.CSSVarsStyle(nil) != "" {
		t.Fatalf("expected empty style for nil config")
	}
}

func TestConfigNilSelection(t *testing.T) {
	if theming.Config(nil) != nil {
		t.Fatalf("expected nil config")
	}
	if theming.Config(&theme.Selection{Theme: "x"}) != nil {
		t.Fatalf("expected nil config without manifest")
	}
}
