package model

import (
	"fmt"
	"sort"
)

const (
	PresetHousingArea      = "housing-area"
	PresetHousingStructure = "housing-structure"

	DefaultHousingAreaEndpoint      = "https://app.onrender.com/predict"
	DefaultHousingStructureEndpoint = "http://localhost:5000/predict"
)

// HousingArea returns the area-statistics feature set used by the original
// price predictor.
func HousingArea() FormModel {
	return FormModel{
		ID:          PresetHousingArea,
		Title:       "Predict Housing Price",
		SubmitLabel: "Predict Price",
		Endpoint:    DefaultHousingAreaEndpoint,
		Method:      "POST",
		Fields: []Field{
			numberField("Avg_Area_Income", "Avg Area Income"),
			numberField("Avg_Area_House_Age", "Avg Area House Age"),
			numberField("Avg_Area_Number_of_Rooms", "Avg Area Number of Rooms"),
			numberField("Avg_Area_Number_of_Bedrooms", "Avg Area Number of Bedrooms"),
			numberField("Area_Population", "Area Population"),
		},
	}
}

// HousingStructure returns the structural feature set (area, bedrooms,
// bathrooms, stories).
func HousingStructure() FormModel {
	return FormModel{
		ID:          PresetHousingStructure,
		Title:       "Predict Housing Price",
		SubmitLabel: "Predict Price",
		Endpoint:    DefaultHousingStructureEndpoint,
		Method:      "POST",
		Fields: []Field{
			numberField("area", "Area"),
			numberField("bedrooms", "Bedrooms"),
			numberField("bathrooms", "Bathrooms"),
			numberField("stories", "Stories"),
		},
	}
}

var presets = map[string]func() FormModel{
	PresetHousingArea:      HousingArea,
	PresetHousingStructure: HousingStructure,
}

// Preset resolves a built-in schema by name.
func Preset(name string) (FormModel, error) {
	build, ok := presets[name]
	if !ok {
		return FormModel{}, fmt.Errorf("model: unknown preset %q (available: %v)", name, PresetNames())
	}
	return build(), nil
}

// PresetNames lists the built-in schema names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func numberField(name, label string) Field {
	return Field{
		Name:        name,
		Type:        FieldTypeNumber,
		Label:       label,
		Placeholder: label,
		Required:    true,
	}
}
