package form

// State holds the raw text of every field, keyed by field name.
type State map[string]string

// Clone returns a copy that does not alias the receiver.
func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// View is an immutable snapshot of what the form currently displays.
type View struct {
	Values     State
	Price      *float64
	Error      string
	ErrorKind  ErrorKind
	Submitting bool
	Generation uint64
}

// HasPrice reports whether a prediction is displayed.
func (v View) HasPrice() bool {
	return v.Price != nil
}

// HasError reports whether an error message is displayed.
func (v View) HasError() bool {
	return v.Error != ""
}

// Outcome describes how a single submission ended.
type Outcome struct {
	SubmissionID string
	Generation   uint64
	Price        *float64
	Message      string
	Kind         ErrorKind
	// Stale is set when a newer submission started before this one resolved;
	// the form state was left untouched.
	Stale bool
	// Err is the underlying error, if any.
	Err error
}

// OK reports whether the submission produced a price.
func (o Outcome) OK() bool {
	return o.Price != nil && o.Kind == ErrorKindNone
}
