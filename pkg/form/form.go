package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goliatone/go-priceform/internal/logger"
	"github.com/goliatone/go-priceform/pkg/model"
	"github.com/goliatone/go-priceform/pkg/predict"
)

// PredictionForm is the stateful form component. It is safe for concurrent
// use; the lock is never held across the network call.
type PredictionForm struct {
	schema    model.FormModel
	predictor predict.Predictor
	log       logger.Logger
	recorder  Recorder
	newID     func() string

	mu         sync.Mutex
	values     State
	price      *float64
	message    string
	kind       ErrorKind
	generation uint64
	inFlight   int
}

// New mounts a form for schema with every field empty and nothing displayed.
func New(schema model.FormModel, options ...Option) (*PredictionForm, error) {
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("form: %w", err)
	}

	f := &PredictionForm{
		schema:   schema.Clone(),
		log:      logger.NopLogger{},
		recorder: nopRecorder{},
		newID:    newSubmissionID,
		values:   make(State, len(schema.Fields)),
	}
	for _, name := range schema.FieldNames() {
		f.values[name] = ""
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	if f.predictor == nil {
		f.predictor = predict.NewClient(
			predict.WithMethod(schema.Method),
			predict.WithLogger(f.log),
		)
	}
	return f, nil
}

// Schema returns a copy of the schema the form was mounted with.
func (f *PredictionForm) Schema() model.FormModel {
	return f.schema.Clone()
}

// OnFieldChange records the raw text for a field. The value is not checked
// until Submit.
func (f *PredictionForm) OnFieldChange(name, raw string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.values[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	f.values[name] = raw
	return nil
}

// Values returns a copy of the current form state.
func (f *PredictionForm) Values() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values.Clone()
}

// View returns a snapshot of the displayed state.
func (f *PredictionForm) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()

	view := View{
		Values:     f.values.Clone(),
		Error:      f.message,
		ErrorKind:  f.kind,
		Submitting: f.inFlight > 0,
		Generation: f.generation,
	}
	if f.price != nil {
		price := *f.price
		view.Price = &price
	}
	return view
}

// Submit validates the current values and, when they pass, posts them to the
// prediction endpoint. Validation failures never reach the network.
func (f *PredictionForm) Submit(ctx context.Context) Outcome {
	if ctx == nil {
		ctx = context.Background()
	}

	f.mu.Lock()
	f.generation++
	gen := f.generation
	values := f.values.Clone()
	f.mu.Unlock()

	out := Outcome{SubmissionID: f.newID(), Generation: gen}
	started := time.Now()

	features, err := ParseFeatures(f.schema, values)
	if err != nil {
		out.Kind = ErrorKindValidation
		out.Message = MessageValidation
		out.Err = err
		f.log.Debugw("validation failed", map[string]any{
			"submission_id": out.SubmissionID,
			"error":         err.Error(),
		})
		return f.finish(out, started)
	}

	f.mu.Lock()
	f.inFlight++
	f.mu.Unlock()

	f.log.Debugw("submitting prediction", map[string]any{
		"submission_id": out.SubmissionID,
		"endpoint":      f.schema.Endpoint,
		"fields":        len(features),
	})

	res, err := f.predictor.Predict(ctx, f.schema.Endpoint, features)

	f.mu.Lock()
	f.inFlight--
	f.mu.Unlock()

	if err != nil {
		out.Kind, out.Message = classify(err)
		out.Err = err
	} else {
		price := res.Price
		out.Price = &price
	}
	return f.finish(out, started)
}

// finish applies the outcome when it belongs to the newest submission.
func (f *PredictionForm) finish(out Outcome, started time.Time) Outcome {
	f.mu.Lock()
	if out.Generation != f.generation {
		out.Stale = true
	} else if out.Price != nil {
		price := *out.Price
		f.price = &price
		f.message = ""
		f.kind = ErrorKindNone
	} else {
		f.price = nil
		f.message = out.Message
		f.kind = out.Kind
	}
	f.mu.Unlock()

	latency := time.Since(started)
	f.recorder.RecordSubmission(out.Kind, out.Stale, latency)

	switch {
	case out.Stale:
		f.log.Warnf("submission %s discarded: generation %d superseded", out.SubmissionID, out.Generation)
	case out.Price != nil:
		f.log.Infof("submission %s predicted price %.2f in %s", out.SubmissionID, *out.Price, latency)
	case out.Kind == ErrorKindValidation:
		f.log.Infof("submission %s rejected: %s", out.SubmissionID, out.Message)
	default:
		f.log.Errorf("submission %s failed (%s): %v", out.SubmissionID, out.Kind, out.Err)
	}
	return out
}

func classify(err error) (ErrorKind, string) {
	if errors.Is(err, predict.ErrInvalidResponse) {
		return ErrorKindInvalidResponse, MessageInvalidResponse
	}
	if msg, ok := predict.ServerMessage(err); ok {
		return ErrorKindServer, msg
	}
	var statusErr *predict.StatusError
	if errors.As(err, &statusErr) {
		return ErrorKindServer, MessageNetwork
	}
	return ErrorKindNetwork, MessageNetwork
}
