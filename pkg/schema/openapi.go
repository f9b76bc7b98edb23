package schema

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-priceform/pkg/model"
)

// ErrOperationNotFound is returned when the document has no usable operation.
var ErrOperationNotFound = errors.New("schema: operation not found")

// LoadOpenAPIFile reads an OpenAPI document and converts one of its operations.
func LoadOpenAPIFile(ctx context.Context, path, operationID string) (model.FormModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return FromOpenAPI(ctx, data, operationID)
}

// FromOpenAPI builds a form from the JSON request body of a POST operation.
// An empty operationID selects the first POST operation by path. Fields are
// ordered by the schema's required list, then alphabetically.
func FromOpenAPI(ctx context.Context, data []byte, operationID string) (model.FormModel, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return model.FormModel{}, err
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("schema: load openapi: %w", err)
	}
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return model.FormModel{}, errors.New("schema: openapi document does not contain any paths")
	}

	path, op, err := findOperation(doc, operationID)
	if err != nil {
		return model.FormModel{}, err
	}

	body := requestSchema(op)
	if body == nil {
		return model.FormModel{}, fmt.Errorf("schema: operation %q has no JSON request body", op.OperationID)
	}

	fields, err := fieldsFromSchema(body)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("schema: operation %q: %w", op.OperationID, err)
	}

	id := op.OperationID
	if id == "" {
		id = "post:" + path
	}
	title := op.Summary
	if title == "" && doc.Info != nil {
		title = doc.Info.Title
	}

	return Normalize(model.FormModel{
		ID:       id,
		Title:    title,
		Endpoint: serverURL(doc) + path,
		Method:   "POST",
		Fields:   fields,
		Metadata: map[string]string{"source": "openapi"},
	})
}

func findOperation(doc *openapi3.T, operationID string) (string, *openapi3.Operation, error) {
	paths := doc.Paths.Map()
	keys := make([]string, 0, len(paths))
	for path := range paths {
		keys = append(keys, path)
	}
	sort.Strings(keys)

	for _, path := range keys {
		item := paths[path]
		if item == nil || item.Post == nil {
			continue
		}
		if operationID == "" || item.Post.OperationID == operationID {
			return path, item.Post, nil
		}
	}
	if operationID == "" {
		return "", nil, fmt.Errorf("%w: no POST operations", ErrOperationNotFound)
	}
	return "", nil, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
}

func requestSchema(op *openapi3.Operation) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	mt, ok := op.RequestBody.Value.Content["application/json"]
	if !ok || mt == nil || mt.Schema == nil {
		return nil
	}
	return mt.Schema.Value
}

func fieldsFromSchema(body *openapi3.Schema) ([]model.Field, error) {
	if len(body.Properties) == 0 {
		return nil, errors.New("request body declares no properties")
	}

	required := make(map[string]bool, len(body.Required))
	order := make([]string, 0, len(body.Properties))
	for _, name := range body.Required {
		if _, ok := body.Properties[name]; ok && !required[name] {
			required[name] = true
			order = append(order, name)
		}
	}
	var rest []string
	for name := range body.Properties {
		if !required[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	order = append(order, rest...)

	fields := make([]model.Field, 0, len(order))
	for _, name := range order {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			return nil, fmt.Errorf("property %q is unresolved", name)
		}
		field, err := convertProperty(name, ref.Value)
		if err != nil {
			return nil, err
		}
		// Every input is mandatory on submit; the flag only documents intent.
		field.Required = true
		fields = append(fields, field)
	}
	return fields, nil
}

func convertProperty(name string, prop *openapi3.Schema) (model.Field, error) {
	var fieldType model.FieldType
	switch firstSchemaType(prop.Type) {
	case "number":
		fieldType = model.FieldTypeNumber
	case "integer":
		fieldType = model.FieldTypeInteger
	default:
		return model.Field{}, fmt.Errorf("property %q must be a number or integer", name)
	}

	field := model.Field{
		Name:        name,
		Type:        fieldType,
		Label:       prop.Title,
		Description: prop.Description,
	}
	if prop.Example != nil {
		field.Placeholder = fmt.Sprint(prop.Example)
	}
	metadata, hints := model.ParseUIExtensions(prop.Extensions)
	if v := hints["label"]; v != "" {
		field.Label = v
	}
	if v := hints["placeholder"]; v != "" {
		field.Placeholder = v
	}
	if v := hints["helpText"]; v != "" && field.Description == "" {
		field.Description = v
	}
	for key, value := range metadata {
		switch key {
		case "label", "placeholder", "helpText":
			continue
		}
		if field.Metadata == nil {
			field.Metadata = make(map[string]string)
		}
		field.Metadata[key] = value
	}
	if prop.Min != nil {
		field.Validations = append(field.Validations, boundRule(model.ValidationRuleMin, *prop.Min))
	}
	if prop.Max != nil {
		field.Validations = append(field.Validations, boundRule(model.ValidationRuleMax, *prop.Max))
	}
	return field, nil
}

func boundRule(kind string, value float64) model.ValidationRule {
	return model.ValidationRule{
		Kind:   kind,
		Params: map[string]string{"value": strconv.FormatFloat(value, 'f', -1, 64)},
	}
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func serverURL(doc *openapi3.T) string {
	if len(doc.Servers) == 0 || doc.Servers[0] == nil {
		return ""
	}
	return strings.TrimRight(doc.Servers[0].URL, "/")
}
