package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/goliatone/go-priceform/pkg/form"
)

func TestPromRecorder_RecordSubmission(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPromRecorder(reg)
	if err != nil {
		t.Fatalf("create recorder: %v", err)
	}

	rec.RecordSubmission(form.ErrorKindNone, false, 120*time.Millisecond)
	rec.RecordSubmission(form.ErrorKindValidation, false, time.Millisecond)
	rec.RecordSubmission(form.ErrorKindNone, true, 300*time.Millisecond)

	expected := `
# HELP priceform_submissions_total Total number of prediction form submissions by outcome
# TYPE priceform_submissions_total counter
priceform_submissions_total{outcome="success",stale="false"} 1
priceform_submissions_total{outcome="success",stale="true"} 1
priceform_submissions_total{outcome="validation",stale="false"} 1
`
	if err := testutil.CollectAndCompare(rec.submissions, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
	if c := testutil.CollectAndCount(rec.latency); c != 2 {
		t.Errorf("expected 2 latency series, got %d", c)
	}
}

func TestPromRecorder_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromRecorder(reg)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := NewPromRecorder(reg)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first.submissions != second.submissions {
		t.Fatalf("expected collectors to be reused")
	}
}

func TestHandler_ExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPromRecorder(reg)
	if err != nil {
		t.Fatalf("create recorder: %v", err)
	}
	rec.RecordSubmission(form.ErrorKindNetwork, false, time.Second)

	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `priceform_submissions_total{outcome="network",stale="false"} 1`) {
		t.Fatalf("metrics output missing counter:\n%s", w.Body.String())
	}
}

func TestPromRecorder_NilSafe(t *testing.T) {
	var rec *PromRecorder
	rec.RecordSubmission(form.ErrorKindNone, false, time.Second)
}
