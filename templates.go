package enrollform

import (
	"io/fs"

	vanilla "github.com/goliatone/go-enrollform/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in page templates so callers can copy
// or extend them and load the result with vanilla.WithTemplatesDir.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}
