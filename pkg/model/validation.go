package model

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrFormIDMissing       = errors.New("model: form id is required")
	ErrFormEndpointMissing = errors.New("model: form endpoint is required")
	ErrFormFieldsMissing   = errors.New("model: form declares no fields")
)

// Validate checks the structural requirements every prediction form must
// satisfy before it can be submitted.
func (f FormModel) Validate() error {
	if strings.TrimSpace(f.ID) == "" {
		return ErrFormIDMissing
	}
	if strings.TrimSpace(f.Endpoint) == "" {
		return ErrFormEndpointMissing
	}
	if _, err := url.ParseRequestURI(f.Endpoint); err != nil {
		return fmt.Errorf("model: invalid endpoint %q: %w", f.Endpoint, err)
	}
	if len(f.Fields) == 0 {
		return ErrFormFieldsMissing
	}

	seen := make(map[string]struct{}, len(f.Fields))
	for i, field := range f.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return fmt.Errorf("model: field %d has no name", i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("model: duplicate field %q", name)
		}
		seen[name] = struct{}{}
		switch field.Type {
		case FieldTypeNumber, FieldTypeInteger:
		default:
			return fmt.Errorf("model: field %q has unsupported type %q", name, field.Type)
		}
	}
	return nil
}
