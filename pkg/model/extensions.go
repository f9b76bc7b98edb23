package model

import (
	"encoding/json"
	"sort"
	"strconv"
)

// ExtensionKey is the vendor extension carrying field presentation hints in
// OpenAPI documents.
const ExtensionKey = "x-priceform"

// PlaceholderExtension is the flat shorthand for a placeholder hint.
const PlaceholderExtension = "x-placeholder"

var uiHintKeys = map[string]struct{}{
	"label":       {},
	"placeholder": {},
	"helpText":    {},
	"unit":        {},
}

// AllowedUIHintKeys returns a sorted copy of the recognised hint keys.
func AllowedUIHintKeys() []string {
	keys := make([]string, 0, len(uiHintKeys))
	for key := range uiHintKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ParseUIExtensions extracts metadata and UI hints from the x-priceform and
// x-placeholder extensions. Metadata keeps every scalar entry; hints keep only
// the recognised keys. It returns nil maps when nothing is found.
func ParseUIExtensions(ext map[string]any) (map[string]string, map[string]string) {
	var metadata map[string]string
	set := func(key string, raw any) {
		value, ok := canonicalizeExtensionValue(raw)
		if !ok {
			return
		}
		if metadata == nil {
			metadata = make(map[string]string)
		}
		metadata[key] = value
	}

	if raw, ok := ext[PlaceholderExtension]; ok {
		set("placeholder", raw)
	}
	if block, ok := ext[ExtensionKey].(map[string]any); ok {
		for key, raw := range block {
			set(key, raw)
		}
	}

	var hints map[string]string
	for key, value := range metadata {
		if _, ok := uiHintKeys[key]; !ok {
			continue
		}
		if hints == nil {
			hints = make(map[string]string)
		}
		hints[key] = value
	}
	return metadata, hints
}

func canonicalizeExtensionValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, v != ""
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case json.Number:
		return v.String(), v != ""
	default:
		return "", false
	}
}
