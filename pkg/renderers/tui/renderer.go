package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-priceform/pkg/form"
	"github.com/goliatone/go-priceform/pkg/model"
	"github.com/goliatone/go-priceform/pkg/render"
)

// Renderer prints a plain-text snapshot of a form and drives interactive
// terminal sessions.
type Renderer struct {
	driver PromptDriver
	out    io.Writer
	theme  Theme
	locale string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer backed by survey unless another driver is
// supplied.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render writes the title, each field with its current value, and the result
// line if there is one.
func (r *Renderer) Render(ctx context.Context, schema model.FormModel, view form.View, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(schema.Title)
	b.WriteString("\n\n")
	for _, field := range schema.Fields {
		value := view.Values[field.Name]
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(&b, "  %s: %s\n", fieldLabel(field), value)
	}
	if line := r.resultLine(view, r.localeFor(opts.Locale)); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}

func (r *Renderer) resultLine(view form.View, locale string) string {
	switch {
	case view.HasPrice():
		return r.theme.InfoPrefix + render.PriceText(*view.Price, locale)
	case view.HasError():
		return r.theme.ErrorPrefix + view.Error
	default:
		return ""
	}
}

func (r *Renderer) localeFor(locale string) string {
	if locale != "" {
		return locale
	}
	return r.locale
}

func fieldLabel(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}
