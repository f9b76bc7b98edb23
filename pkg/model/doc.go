// Package model defines the field schema a prediction form is built from.
// A FormModel names the prediction endpoint, the HTTP method used to reach it,
// and the ordered set of numeric fields collected from the user. Field names
// double as JSON keys in the outbound request body, so they must match the
// contract of the remote prediction service exactly.
//
// Two schemas ship with the package: HousingArea mirrors the area-statistics
// feature set (income, house age, rooms, bedrooms, population) and
// HousingStructure mirrors the structural feature set (area, bedrooms,
// bathrooms, stories). Callers needing a different contract can build a
// FormModel by hand or load one through pkg/schema.
package model
