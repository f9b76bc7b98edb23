package model_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-priceform/pkg/model"
)

func TestPresets_AreValid(t *testing.T) {
	for _, name := range model.PresetNames() {
		form, err := model.Preset(name)
		if err != nil {
			t.Fatalf("preset %s: %v", name, err)
		}
		if err := form.Validate(); err != nil {
			t.Fatalf("preset %s invalid: %v", name, err)
		}
	}
}

func TestHousingArea_FieldOrder(t *testing.T) {
	want := []string{
		"Avg_Area_Income",
		"Avg_Area_House_Age",
		"Avg_Area_Number_of_Rooms",
		"Avg_Area_Number_of_Bedrooms",
		"Area_Population",
	}
	if diff := cmp.Diff(want, model.HousingArea().FieldNames()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestPreset_Unknown(t *testing.T) {
	if _, err := model.Preset("condo"); err == nil {
		t.Fatalf("expected error for unknown preset")
	}
}

func TestFormModel_ValidateRejects(t *testing.T) {
	base := model.HousingStructure()

	cases := []struct {
		name   string
		mutate func(*model.FormModel)
		want   error
	}{
		{"missing id", func(f *model.FormModel) { f.ID = "" }, model.ErrFormIDMissing},
		{"missing endpoint", func(f *model.FormModel) { f.Endpoint = "" }, model.ErrFormEndpointMissing},
		{"no fields", func(f *model.FormModel) { f.Fields = nil }, model.ErrFormFieldsMissing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := base.Clone()
			tc.mutate(&form)
			if err := form.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}

	dup := base.Clone()
	dup.Fields = append(dup.Fields, dup.Fields[0])
	if err := dup.Validate(); err == nil {
		t.Fatalf("expected duplicate field error")
	}

	badType := base.Clone()
	badType.Fields[0].Type = "string"
	if err := badType.Validate(); err == nil {
		t.Fatalf("expected unsupported type error")
	}
}

func TestFormModel_CloneIsDeep(t *testing.T) {
	original := model.HousingArea()
	original.Fields[0].Metadata = map[string]string{"unit": "usd"}

	clone := original.Clone()
	clone.Fields[0].Label = "changed"
	clone.Fields[0].Metadata["unit"] = "eur"

	if original.Fields[0].Label == "changed" {
		t.Fatalf("clone shares field slice")
	}
	if original.Fields[0].Metadata["unit"] != "usd" {
		t.Fatalf("clone shares metadata map")
	}
}

func TestDefaultLabeler(t *testing.T) {
	cases := map[string]string{
		"Avg_Area_Income": "Avg Area Income",
		"bedrooms":        "Bedrooms",
		"houseAge":        "House Age",
		"area-population": "Area Population",
		"":                "",
	}
	for in, want := range cases {
		if got := model.DefaultLabeler(in); got != want {
			t.Fatalf("DefaultLabeler(%q) = %q, want %q", in, got, want)
		}
	}
}
