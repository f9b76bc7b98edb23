package predictform

import (
	"errors"
	"net/http"
	"strings"

	"github.com/goliatone/go-priceform/pkg/form"
	"github.com/goliatone/go-priceform/pkg/render"
)

// Handler builds the page handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return HandlerWithOptions(NewOptions(fns...))
}

// HandlerWithOptions builds the page handler from a pre-constructed Options
// value.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodPost:
		default:
			w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodHead, http.MethodPost}, ", "))
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}
		if opts.Renderer == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		f, err := form.New(opts.Schema, opts.formOptions()...)
		if err != nil {
			opts.Logger.Errorf("predictform: build form: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		renderOpts := render.RenderOptions{Action: r.URL.Path, Locale: opts.Locale}
		if r.Method == http.MethodPost {
			r.Body = http.MaxBytesReader(w, r.Body, opts.MaxBodyBytes)
			if err := r.ParseForm(); err != nil {
				code := http.StatusBadRequest
				var maxErr *http.MaxBytesError
				if errors.As(err, &maxErr) {
					code = http.StatusRequestEntityTooLarge
				}
				http.Error(w, http.StatusText(code), code)
				return
			}
			for _, name := range opts.Schema.FieldNames() {
				_ = f.OnFieldChange(name, r.PostForm.Get(name))
			}
			out := f.Submit(r.Context())
			renderOpts.SubmissionID = out.SubmissionID
		}

		body, err := opts.Renderer.Render(r.Context(), opts.Schema, f.View(), renderOpts)
		if err != nil {
			opts.Logger.Errorf("predictform: render: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", opts.Renderer.ContentType())
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(body)
	})
}
