package testsupport

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RecordedRequest captures a request received by the fake endpoint.
type RecordedRequest struct {
	Method      string
	ContentType string
	Body        map[string]any
}

// ServerOption configures the fake prediction endpoint.
type ServerOption func(*PredictionServer)

// WithPrice sets the price returned on success.
func WithPrice(price float64) ServerOption {
	return func(s *PredictionServer) {
		s.respond = func(map[string]any) (int, any) {
			return http.StatusOK, map[string]any{"price": price}
		}
	}
}

// WithRequiredKeys makes the endpoint reject payloads missing any key, the
// way the reference backend does.
func WithRequiredKeys(keys ...string) ServerOption {
	return func(s *PredictionServer) {
		s.required = append([]string(nil), keys...)
	}
}

// WithResponse replies with a fixed status and JSON body for every request.
func WithResponse(status int, body any) ServerOption {
	return func(s *PredictionServer) {
		s.respond = func(map[string]any) (int, any) {
			return status, body
		}
	}
}

// WithRawResponse replies with a fixed status and raw body bytes.
func WithRawResponse(status int, body string) ServerOption {
	return func(s *PredictionServer) {
		s.raw = &rawResponse{status: status, body: body}
	}
}

// WithGate blocks every request until the returned channel receives a value.
// It lets tests hold a submission in flight.
func WithGate(gate <-chan struct{}) ServerOption {
	return func(s *PredictionServer) {
		s.gate = gate
	}
}

type rawResponse struct {
	status int
	body   string
}

// PredictionServer is an httptest-backed stand-in for a remote prediction
// service. It mirrors the reference backend's error contract without any
// model behind it.
type PredictionServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	required []string
	respond  func(map[string]any) (int, any)
	raw      *rawResponse
	gate     <-chan struct{}
}

// NewPredictionServer starts a fake endpoint that is closed when the test ends.
func NewPredictionServer(t testing.TB, options ...ServerOption) *PredictionServer {
	t.Helper()

	s := &PredictionServer{}
	WithPrice(250000)(s)
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// PredictURL returns the predict endpoint URL.
func (s *PredictionServer) PredictURL() string {
	return s.Server.URL + "/predict"
}

// Requests returns a copy of the recorded requests.
func (s *PredictionServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// Count reports how many requests reached the endpoint.
func (s *PredictionServer) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *PredictionServer) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:      r.Method,
		ContentType: r.Header.Get("Content-Type"),
		Body:        body,
	})
	gate := s.gate
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	if s.raw != nil {
		w.WriteHeader(s.raw.status)
		_, _ = io.WriteString(w, s.raw.body)
		return
	}

	if len(body) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "No data provided"})
		return
	}
	for _, key := range s.required {
		if _, ok := body[key]; !ok {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Missing required keys"})
			return
		}
	}

	status, payload := s.respond(body)
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
