package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-priceform/pkg/model"
)

// Format names the encoding of a schema document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("schema: unsupported file format")

// FormatFromPath infers the document format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// LoadFile reads and normalizes a schema file.
func LoadFile(path string) (model.FormModel, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return model.FormModel{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return Parse(data, format)
}

// Parse decodes a schema document and normalizes it.
func Parse(data []byte, format Format) (model.FormModel, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return model.FormModel{}, errors.New("schema: document is empty")
	}

	var form model.FormModel
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&form); err != nil {
			return model.FormModel{}, fmt.Errorf("schema: decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&form); err != nil {
			return model.FormModel{}, fmt.Errorf("schema: decode json: %w", err)
		}
	default:
		return model.FormModel{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return Normalize(form)
}

// Encode renders a schema in the requested format.
func Encode(form model.FormModel, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(form); err != nil {
			return nil, fmt.Errorf("schema: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(form, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("schema: encode json: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
