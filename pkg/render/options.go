package render

// RenderOptions carry per-request data that does not belong in the schema or
// the form view.
type RenderOptions struct {
	// Action is the URL the rendered form posts back to. Empty means the
	// current page.
	Action string
	// Locale selects digit grouping for the displayed price (e.g. "en-US").
	// Empty keeps the plain two-decimal rendering.
	Locale string
	// SubmissionID tags the output so logs and markup can be correlated.
	SubmissionID string
}
