package vanilla

import (
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	rendertemplate "github.com/goliatone/go-priceform/pkg/render/template"
)

// Option configures the vanilla renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	manifest         *theme.Manifest
	variant          string
	pretty           bool
	locale           string
	lang             string
	stylesheet       *string
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// templates/page.tmpl and templates/form.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTheme exposes the manifest tokens (merged with the named variant, if
// any) as CSS custom properties on :root.
func WithTheme(manifest *theme.Manifest, variant string) Option {
	return func(cfg *config) {
		cfg.manifest = manifest
		cfg.variant = strings.TrimSpace(variant)
	}
}

// WithPrettyOutput indents the generated HTML.
func WithPrettyOutput(enabled bool) Option {
	return func(cfg *config) {
		cfg.pretty = enabled
	}
}

// WithLocale sets the fallback locale used for price formatting when the
// render call does not supply one.
func WithLocale(locale string) Option {
	return func(cfg *config) {
		cfg.locale = strings.TrimSpace(locale)
	}
}

// WithStylesheet replaces the embedded stylesheet. An empty string drops it.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = &css
	}
}
