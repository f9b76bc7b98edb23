package render

import (
	"context"

	"github.com/goliatone/go-priceform/pkg/form"
	"github.com/goliatone/go-priceform/pkg/model"
)

// Renderer turns a schema plus the current form view into bytes (HTML, plain
// text, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, schema model.FormModel, view form.View, options RenderOptions) ([]byte, error)
}
