package vanilla

import (
	"context"
	"fmt"
	"strings"

	"github.com/yosssi/gohtml"
	"golang.org/x/text/language"

	"github.com/goliatone/go-priceform/pkg/form"
	"github.com/goliatone/go-priceform/pkg/model"
	"github.com/goliatone/go-priceform/pkg/render"
	rendertemplate "github.com/goliatone/go-priceform/pkg/render/template"
	gotemplate "github.com/goliatone/go-priceform/pkg/render/template/gotemplate"
)

const (
	pageTemplate = "templates/page.tmpl"
	formTemplate = "templates/form.tmpl"
)

// Renderer produces a standalone HTML page for a prediction form.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	themeStyle string
	stylesheet string
	pretty     bool
	locale     string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		templates = engine
	}

	stylesheet := defaultStylesheet()
	if cfg.stylesheet != nil {
		stylesheet = *cfg.stylesheet
	}

	return &Renderer{
		templates:  templates,
		themeStyle: cssVarsStyle(themeTokens(cfg.manifest, cfg.variant)),
		stylesheet: stylesheet,
		pretty:     cfg.pretty,
		locale:     cfg.locale,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render draws the heading, one numeric input per field, the submit button,
// and at most one of the price or the error message.
func (r *Renderer) Render(ctx context.Context, schema model.FormModel, view form.View, options render.RenderOptions) ([]byte, error) {
	if r == nil || r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	locale := options.Locale
	if locale == "" {
		locale = r.locale
	}
	data := r.templateData(schema, view, options, locale)

	body, err := r.templates.RenderTemplate(formTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render form: %w", err)
	}
	data["body"] = body

	page, err := r.templates.RenderTemplate(pageTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render page: %w", err)
	}
	if r.pretty {
		page = gohtml.Format(page)
	}
	return []byte(page), nil
}

func (r *Renderer) templateData(schema model.FormModel, view form.View, options render.RenderOptions, locale string) map[string]any {
	fields := make([]map[string]any, 0, len(schema.Fields))
	for _, field := range schema.Fields {
		entry := map[string]any{
			"name":        field.Name,
			"label":       field.Label,
			"placeholder": field.Placeholder,
			"value":       view.Values[field.Name],
			"step":        "any",
			"unit":        field.Metadata["unit"],
		}
		if field.Type == model.FieldTypeInteger {
			entry["step"] = "1"
		}
		for _, rule := range field.Validations {
			switch rule.Kind {
			case model.ValidationRuleMin:
				entry["min"] = rule.Params["value"]
				entry["has_min"] = true
			case model.ValidationRuleMax:
				entry["max"] = rule.Params["value"]
				entry["has_max"] = true
			}
		}
		fields = append(fields, entry)
	}

	data := map[string]any{
		"form": map[string]any{
			"id":           schema.ID,
			"title":        schema.Title,
			"submit_label": schema.SubmitLabel,
		},
		"fields":        fields,
		"action":        options.Action,
		"submission_id": options.SubmissionID,
		"error":         view.Error,
		"has_price":     view.HasPrice(),
		"theme_style":   r.themeStyle,
		"stylesheet":    r.stylesheet,
		"lang":          pageLang(locale),
	}
	if view.HasPrice() {
		data["price_text"] = render.PriceText(*view.Price, locale)
	}
	return data
}

func pageLang(locale string) string {
	if strings.TrimSpace(locale) == "" {
		return "en"
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	return base.String()
}
