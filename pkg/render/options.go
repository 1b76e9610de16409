package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-enrollform/pkg/form"
)

// RenderOptions describe per-request data renderers use without mutating the
// form model.
type RenderOptions struct {
	// State is the controller snapshot: values to prefill, plus the errors that
	// are visible because their field was touched.
	State form.State
	// Theme carries resolved tokens and asset URLs; nil renders with the
	// stylesheet defaults.
	Theme *theme.RendererConfig
	// Assets points at the stylesheet and runtime script the page links.
	Assets Assets
}

// Assets holds public URLs for static files referenced by rendered pages.
type Assets struct {
	Stylesheet string
	Script     string
}
