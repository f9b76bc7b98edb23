package form

import (
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-priceform/pkg/model"
	"github.com/goliatone/go-priceform/pkg/predict"
)

// ParseFeatures converts raw values into the request payload. Every schema
// field must parse as a finite float; zero is rejected together with empty
// and non-numeric input, so a missing value and a literal 0 look the same.
func ParseFeatures(schema model.FormModel, values State) (predict.Features, error) {
	features := make(predict.Features, len(schema.Fields))
	var invalid []string
	for _, field := range schema.Fields {
		value, ok := parseNumber(values[field.Name])
		if !ok {
			invalid = append(invalid, field.Name)
			continue
		}
		features[field.Name] = value
	}
	if len(invalid) > 0 {
		return nil, &ValidationError{Fields: invalid}
	}
	return features, nil
}

func parseNumber(raw string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value == 0 {
		return 0, false
	}
	return value, true
}
