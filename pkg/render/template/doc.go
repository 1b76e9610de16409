// Package template defines the engine contract HTML renderers depend on.
// The gotemplate subpackage provides the pongo2-backed implementation that
// loads the page templates from an fs.FS.
package template
