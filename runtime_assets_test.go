package enrollform

import (
	"context"
	"io/fs"
	"strings"
	"testing"
)

func TestRuntimeAssetsFSContainsValidationScript(t *testing.T) {
	data, err := fs.ReadFile(RuntimeAssetsFS(), "enrollform.js")
	if err != nil {
		t.Fatalf("expected runtime script to be readable: %v", err)
	}
	if !strings.Contains(string(data), "touched") {
		t.Fatalf("expected runtime script to post the touched set")
	}
}

func TestEmbeddedTemplatesContainPages(t *testing.T) {
	for _, name := range []string{"templates/enroll.tmpl", "templates/success.tmpl"} {
		if _, err := fs.Stat(EmbeddedTemplates(), name); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestThemeAndControllerFacade(t *testing.T) {
	cfg, err := Theme("", "dark")
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if cfg.Variant != "dark" {
		t.Fatalf("unexpected variant %q", cfg.Variant)
	}

	ctrl := NewController()
	submitted, err := ctrl.Submit(context.Background())
	if err != nil || submitted {
		t.Fatalf("expected blocked submit, got %v %v", submitted, err)
	}

	if _, err := NewServer(); err != nil {
		t.Fatalf("server: %v", err)
	}
}
