package theming

import (
	theme "github.com/goliatone/go-theme"
)

const (
	// DefaultTheme is the built-in manifest name.
	DefaultTheme = "enroll"
	// DefaultVariant is used when a selection names no variant.
	DefaultVariant = "light"

	// AssetStylesheet and AssetScript are the asset keys pages resolve.
	AssetStylesheet = "stylesheet"
	AssetScript     = "script"
)

// DefaultManifest returns the built-in theme: a light variant carrying the
// base tokens and a dark variant overriding surface and text colours.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultTheme,
		Version: "1.0.0",
		Tokens: map[string]string{
			"accent":        "#0d9488",
			"accent-strong": "#0f766e",
			"surface":       "#ffffff",
			"surface-muted": "#f1f5f9",
			"text":          "#0f172a",
			"text-muted":    "#64748b",
			"border":        "#cbd5e1",
			"danger":        "#dc2626",
			"radius":        "0.5rem",
			"font":          "system-ui, -apple-system, sans-serif",
		},
		Assets: theme.Assets{
			Prefix: "/assets",
			Files: map[string]string{
				AssetStylesheet: "enrollform.css",
				AssetScript:     "enrollform.js",
			},
		},
		Variants: map[string]theme.Variant{
			"light": {},
			"dark": {
				Tokens: map[string]string{
					"surface":       "#0f172a",
					"surface-muted": "#1e293b",
					"text":          "#f8fafc",
					"text-muted":    "#94a3b8",
					"border":        "#334155",
					"danger":        "#f87171",
				},
			},
		},
	}
}
