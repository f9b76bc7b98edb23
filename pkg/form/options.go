package form

import (
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-priceform/internal/logger"
	"github.com/goliatone/go-priceform/pkg/predict"
)

// Recorder observes finished submissions, typically for metrics.
type Recorder interface {
	RecordSubmission(kind ErrorKind, stale bool, latency time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) RecordSubmission(ErrorKind, bool, time.Duration) {}

// Option configures a PredictionForm.
type Option func(*PredictionForm)

// WithPredictor overrides the prediction client.
func WithPredictor(p predict.Predictor) Option {
	return func(f *PredictionForm) {
		if p != nil {
			f.predictor = p
		}
	}
}

// WithLogger attaches a logger for submission diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(f *PredictionForm) {
		f.log = logger.OrNop(l)
	}
}

// WithRecorder attaches a submission recorder.
func WithRecorder(r Recorder) Option {
	return func(f *PredictionForm) {
		if r != nil {
			f.recorder = r
		}
	}
}

// WithIDGenerator overrides how submission ids are minted.
func WithIDGenerator(fn func() string) Option {
	return func(f *PredictionForm) {
		if fn != nil {
			f.newID = fn
		}
	}
}

// WithValues seeds the form state, ignoring names outside the schema.
func WithValues(values map[string]string) Option {
	return func(f *PredictionForm) {
		for name, raw := range values {
			if _, ok := f.values[name]; ok {
				f.values[name] = raw
			}
		}
	}
}

func newSubmissionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
