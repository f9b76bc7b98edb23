// Package priceform is the top-level entry point: it re-exports the form and
// schema types and wires the default HTTP predictor and HTML renderer for
// callers that do not need the individual packages.
package priceform

import (
	"context"

	"github.com/goliatone/go-priceform/pkg/form"
	"github.com/goliatone/go-priceform/pkg/model"
	"github.com/goliatone/go-priceform/pkg/predict"
	"github.com/goliatone/go-priceform/pkg/render"
	"github.com/goliatone/go-priceform/pkg/renderers/vanilla"
	"github.com/goliatone/go-priceform/pkg/schema"
)

// FormModel aliases model.FormModel.
type FormModel = model.FormModel

// SchemaSource aliases schema.Source.
type SchemaSource = schema.Source

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// LoadSchema resolves a preset, schema file or OpenAPI operation.
func LoadSchema(ctx context.Context, src SchemaSource) (FormModel, error) {
	return schema.Resolve(ctx, src)
}

// NewPredictor returns the HTTP prediction client while keeping the concrete
// type hidden from consumers.
func NewPredictor(options ...predict.Option) predict.Predictor {
	return predict.NewClient(options...)
}

// NewForm mounts a form for fm. Unless options say otherwise it posts to
// fm.Endpoint with the default HTTP predictor.
func NewForm(fm FormModel, options ...form.Option) (*form.PredictionForm, error) {
	return form.New(fm, options...)
}

// RenderHTML renders the current state of f as a standalone HTML page.
func RenderHTML(ctx context.Context, f *form.PredictionForm, opts RenderOptions, options ...vanilla.Option) ([]byte, error) {
	renderer, err := vanilla.New(options...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, f.Schema(), f.View(), opts)
}
