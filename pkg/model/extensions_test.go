package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-priceform/pkg/model"
)

func TestParseUIExtensions(t *testing.T) {
	extensions := map[string]any{
		"x-priceform": map[string]any{
			"label":    "Living Area",
			"unit":     "sq ft",
			"order":    float64(2),
			"internal": map[string]any{"ignored": true},
		},
		"x-placeholder": "e.g. 7420",
		"x-other":       "skip",
	}

	metadata, hints := model.ParseUIExtensions(extensions)

	wantMetadata := map[string]string{
		"label":       "Living Area",
		"unit":        "sq ft",
		"order":       "2",
		"placeholder": "e.g. 7420",
	}
	if diff := cmp.Diff(wantMetadata, metadata); diff != "" {
		t.Fatalf("metadata mismatch (-want +got):\n%s", diff)
	}
	wantHints := map[string]string{
		"label":       "Living Area",
		"unit":        "sq ft",
		"placeholder": "e.g. 7420",
	}
	if diff := cmp.Diff(wantHints, hints); diff != "" {
		t.Fatalf("hints mismatch (-want +got):\n%s", diff)
	}
}

func TestParseUIExtensionsBlockOverridesShorthand(t *testing.T) {
	_, hints := model.ParseUIExtensions(map[string]any{
		"x-placeholder": "flat",
		"x-priceform":   map[string]any{"placeholder": "nested"},
	})
	if got := hints["placeholder"]; got != "nested" {
		t.Fatalf("expected nested placeholder to win, got %q", got)
	}
}

func TestParseUIExtensionsEmpty(t *testing.T) {
	metadata, hints := model.ParseUIExtensions(map[string]any{"x-priceform": map[string]any{"label": ""}})
	if metadata != nil || hints != nil {
		t.Fatalf("expected nil maps, got %v %v", metadata, hints)
	}
}

func TestAllowedUIHintKeysSorted(t *testing.T) {
	want := []string{"helpText", "label", "placeholder", "unit"}
	if diff := cmp.Diff(want, model.AllowedUIHintKeys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}
