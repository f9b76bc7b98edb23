package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-priceform/pkg/form"
)

// PromRecorder implements form.Recorder on top of Prometheus collectors.
type PromRecorder struct {
	submissions *prometheus.CounterVec
	latency     *prometheus.HistogramVec
}

var _ form.Recorder = (*PromRecorder)(nil)

// NewPromRecorder registers submission metrics on reg, or the default
// registerer when reg is nil. Collectors that are already registered are
// reused.
func NewPromRecorder(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "priceform_submissions_total",
		Help: "Total number of prediction form submissions by outcome",
	}, []string{"outcome", "stale"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "priceform_submission_duration_seconds",
		Help:    "Time from submit to outcome, including the prediction request",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})

	if err := reg.Register(submissions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			submissions = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(latency); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			latency = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	return &PromRecorder{submissions: submissions, latency: latency}, nil
}

// RecordSubmission counts the outcome and observes its latency.
func (r *PromRecorder) RecordSubmission(kind form.ErrorKind, stale bool, latency time.Duration) {
	if r == nil {
		return
	}
	outcome := outcomeLabel(kind)
	r.submissions.WithLabelValues(outcome, strconv.FormatBool(stale)).Inc()
	r.latency.WithLabelValues(outcome).Observe(latency.Seconds())
}

func outcomeLabel(kind form.ErrorKind) string {
	if kind == form.ErrorKindNone {
		return "success"
	}
	return string(kind)
}
