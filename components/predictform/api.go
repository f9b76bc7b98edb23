package predictform

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/goliatone/go-priceform/pkg/form"
)

type apiResponse struct {
	Price        *float64 `json:"price,omitempty"`
	Error        string   `json:"error,omitempty"`
	Fields       []string `json:"fields,omitempty"`
	SubmissionID string   `json:"submission_id,omitempty"`
}

// APIHandler builds the JSON handler with default options plus any overrides.
func APIHandler(fns ...OptionFn) http.Handler {
	return APIHandlerWithOptions(NewOptions(fns...))
}

// APIHandlerWithOptions builds the JSON handler from a pre-constructed
// Options value. Validation failures answer 422, upstream and malformed
// responses answer 502.
func APIHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeJSON(w, http.StatusMethodNotAllowed, apiResponse{Error: http.StatusText(http.StatusMethodNotAllowed)})
			return
		}
		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				code := guardStatus(err)
				writeJSON(w, code, apiResponse{Error: http.StatusText(code)})
				return
			}
		}

		var payload map[string]any
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, opts.MaxBodyBytes))
		if err := dec.Decode(&payload); err != nil || payload == nil {
			writeJSON(w, http.StatusBadRequest, apiResponse{Error: "request body must be a JSON object"})
			return
		}

		f, err := form.New(opts.Schema, opts.formOptions()...)
		if err != nil {
			opts.Logger.Errorf("predictform: build form: %v", err)
			writeJSON(w, http.StatusInternalServerError, apiResponse{Error: http.StatusText(http.StatusInternalServerError)})
			return
		}
		for _, name := range opts.Schema.FieldNames() {
			_ = f.OnFieldChange(name, rawValue(payload[name]))
		}

		out := f.Submit(r.Context())
		resp := apiResponse{SubmissionID: out.SubmissionID}
		status := http.StatusOK
		switch {
		case out.OK():
			resp.Price = out.Price
		case out.Kind == form.ErrorKindValidation:
			status = http.StatusUnprocessableEntity
			resp.Error = out.Message
			var vErr *form.ValidationError
			if errors.As(out.Err, &vErr) {
				resp.Fields = vErr.Fields
			}
		default:
			status = http.StatusBadGateway
			resp.Error = out.Message
		}
		writeJSON(w, status, resp)
	})
}

// rawValue turns a decoded JSON value back into the text a user would have
// typed.
func rawValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}
