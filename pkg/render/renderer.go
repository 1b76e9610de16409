package render

import (
	"context"

	"github.com/goliatone/go-enrollform/pkg/model"
)

// Renderer converts the form model plus controller state into a byte
// representation (HTML, JSON, terminal output).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.FormModel, options RenderOptions) ([]byte, error)
}
