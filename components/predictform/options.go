package predictform

import (
	"net/http"

	"github.com/goliatone/go-priceform/internal/logger"
	"github.com/goliatone/go-priceform/pkg/form"
	"github.com/goliatone/go-priceform/pkg/model"
	"github.com/goliatone/go-priceform/pkg/predict"
	"github.com/goliatone/go-priceform/pkg/render"
	"github.com/goliatone/go-priceform/pkg/renderers/vanilla"
)

const (
	defaultRoutePath    = "/"
	defaultAPIPath      = "/api/predict"
	defaultMaxBodyBytes = 64 << 10
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath    string
	APIPath      string
	Guard        GuardFunc
	Locale       string
	MaxBodyBytes int64

	Schema    model.FormModel
	Renderer  render.Renderer
	Predictor predict.Predictor
	Recorder  form.Recorder
	Logger    logger.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:    defaultRoutePath,
		APIPath:      defaultAPIPath,
		MaxBodyBytes: defaultMaxBodyBytes,
		Schema:       model.HousingArea(),
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.APIPath == "" {
		opts.APIPath = defaultAPIPath
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}
	if len(opts.Schema.Fields) == 0 {
		opts.Schema = model.HousingArea()
	}
	opts.Schema = opts.Schema.Clone()
	opts.Logger = logger.OrNop(opts.Logger)
	if opts.Renderer == nil {
		if r, err := vanilla.New(vanilla.WithLocale(opts.Locale)); err == nil {
			opts.Renderer = r
		}
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithAPIPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.APIPath = path
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithLocale(locale string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Locale = locale
	}
}

func WithMaxBodyBytes(limit int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxBodyBytes = limit
	}
}

func WithSchema(schema model.FormModel) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Schema = schema.Clone()
	}
}

func WithRenderer(renderer render.Renderer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = renderer
	}
}

func WithPredictor(predictor predict.Predictor) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Predictor = predictor
	}
}

func WithRecorder(recorder form.Recorder) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Recorder = recorder
	}
}

func WithLogger(l logger.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = l
	}
}

// formOptions translates component options into per-request form options.
func (o Options) formOptions() []form.Option {
	out := []form.Option{form.WithLogger(o.Logger)}
	if o.Predictor != nil {
		out = append(out, form.WithPredictor(o.Predictor))
	}
	if o.Recorder != nil {
		out = append(out, form.WithRecorder(o.Recorder))
	}
	return out
}
