// Package form implements the prediction form component: it tracks the raw
// text of every schema field, validates the values at submit time, forwards
// them to the prediction endpoint and exposes either the returned price or a
// single user-facing error message.
//
// The price and the error message are mutually exclusive; setting one clears
// the other. Submissions may overlap. Each one is stamped with a generation
// number and only the newest submission is allowed to update what the form
// displays; older responses are reported as stale and otherwise discarded.
package form
