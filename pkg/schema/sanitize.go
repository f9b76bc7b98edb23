package schema

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-priceform/pkg/model"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func plainText(raw string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(raw)))
}

// Normalize strips markup from display text, applies default labels and
// request defaults, and validates the schema.
func Normalize(form model.FormModel) (model.FormModel, error) {
	out := form.Clone()
	out.Title = plainText(out.Title)
	out.SubmitLabel = plainText(out.SubmitLabel)
	for i := range out.Fields {
		field := &out.Fields[i]
		field.Name = strings.TrimSpace(field.Name)
		field.Label = plainText(field.Label)
		field.Placeholder = plainText(field.Placeholder)
		field.Description = plainText(field.Description)
		if field.Type == "" {
			field.Type = model.FieldTypeNumber
		}
	}
	if out.Title == "" {
		out.Title = defaultTitle
	}
	if out.SubmitLabel == "" {
		out.SubmitLabel = defaultSubmitLabel
	}
	if out.Method == "" {
		out.Method = "POST"
	}
	out.Method = strings.ToUpper(out.Method)
	model.ApplyDefaultLabels(&out)

	if err := out.Validate(); err != nil {
		return model.FormModel{}, err
	}
	return out, nil
}

const (
	defaultTitle       = "Predict Housing Price"
	defaultSubmitLabel = "Predict Price"
)
