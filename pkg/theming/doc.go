// Package theming resolves go-theme manifests into the renderer configuration
// the HTML pages use: design tokens, the CSS custom properties derived from
// them, and asset URLs.
package theming
