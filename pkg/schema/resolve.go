package schema

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-priceform/pkg/model"
)

// Source selects where a schema comes from. The first non-empty of OpenAPI,
// File and Preset wins; Endpoint overrides whatever the source declares.
type Source struct {
	Preset    string
	File      string
	OpenAPI   string
	Operation string
	Endpoint  string
}

// Resolve loads the schema described by src, runs decorators in order and
// normalises the result.
func Resolve(ctx context.Context, src Source, decorators ...model.Decorator) (model.FormModel, error) {
	var (
		form model.FormModel
		err  error
	)
	switch {
	case strings.TrimSpace(src.OpenAPI) != "":
		form, err = LoadOpenAPIFile(ctx, src.OpenAPI, src.Operation)
	case strings.TrimSpace(src.File) != "":
		form, err = LoadFile(src.File)
	case strings.TrimSpace(src.Preset) != "":
		form, err = model.Preset(src.Preset)
	default:
		return model.FormModel{}, errors.New("schema: no preset, file, or openapi source configured")
	}
	if err != nil {
		return model.FormModel{}, err
	}
	if endpoint := strings.TrimSpace(src.Endpoint); endpoint != "" {
		form = form.WithEndpoint(endpoint)
	}
	for _, decorator := range decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(&form); err != nil {
			return model.FormModel{}, fmt.Errorf("schema: decorate: %w", err)
		}
	}
	return Normalize(form)
}
