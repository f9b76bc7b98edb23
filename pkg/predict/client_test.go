package predict_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-priceform/pkg/predict"
	"github.com/goliatone/go-priceform/pkg/testsupport"
)

func TestClient_PredictSuccess(t *testing.T) {
	srv := testsupport.NewPredictionServer(t, testsupport.WithPrice(250000))
	client := predict.NewClient()

	res, err := client.Predict(context.Background(), srv.PredictURL(), predict.Features{
		"area":     7420,
		"bedrooms": 4,
	})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if res.Price != 250000 {
		t.Fatalf("price: want 250000, got %v", res.Price)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status: want 200, got %d", res.StatusCode)
	}

	reqs := srv.Requests()
	if len(reqs) != 1 {
		t.Fatalf("expected one request, got %d", len(reqs))
	}
	if reqs[0].Method != http.MethodPost {
		t.Fatalf("method: want POST, got %s", reqs[0].Method)
	}
	if reqs[0].ContentType != "application/json" {
		t.Fatalf("content type: got %q", reqs[0].ContentType)
	}
	want := map[string]any{"area": float64(7420), "bedrooms": float64(4)}
	if diff := cmp.Diff(want, reqs[0].Body); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_ZeroPriceIsNumeric(t *testing.T) {
	srv := testsupport.NewPredictionServer(t, testsupport.WithResponse(http.StatusOK, map[string]any{"price": 0}))

	res, err := predict.NewClient().Predict(context.Background(), srv.PredictURL(), predict.Features{"a": 1})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if res.Price != 0 {
		t.Fatalf("expected zero price, got %v", res.Price)
	}
}

func TestClient_InvalidResponses(t *testing.T) {
	cases := map[string]testsupport.ServerOption{
		"missing price": testsupport.WithResponse(http.StatusOK, map[string]any{"estimate": 1}),
		"string price":  testsupport.WithResponse(http.StatusOK, map[string]any{"price": "250000"}),
		"null price":    testsupport.WithResponse(http.StatusOK, map[string]any{"price": nil}),
		"not json":      testsupport.WithRawResponse(http.StatusOK, "<html>ok</html>"),
		"array":         testsupport.WithRawResponse(http.StatusOK, "[1,2]"),
	}
	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			srv := testsupport.NewPredictionServer(t, opt)
			_, err := predict.NewClient().Predict(context.Background(), srv.PredictURL(), predict.Features{"a": 1})
			if !errors.Is(err, predict.ErrInvalidResponse) {
				t.Fatalf("want ErrInvalidResponse, got %v", err)
			}
		})
	}
}

func TestClient_StatusErrorCarriesServerMessage(t *testing.T) {
	srv := testsupport.NewPredictionServer(t, testsupport.WithRequiredKeys("area", "stories"))

	_, err := predict.NewClient().Predict(context.Background(), srv.PredictURL(), predict.Features{"area": 1})
	var statusErr *predict.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("want *StatusError, got %T %v", err, err)
	}
	if statusErr.Code != http.StatusBadRequest {
		t.Fatalf("code: want 400, got %d", statusErr.Code)
	}
	msg, ok := predict.ServerMessage(err)
	if !ok || msg != "Missing required keys" {
		t.Fatalf("server message: got %q (%v)", msg, ok)
	}
}

func TestClient_StatusErrorWithoutMessage(t *testing.T) {
	srv := testsupport.NewPredictionServer(t, testsupport.WithRawResponse(http.StatusBadGateway, "upstream down"))

	_, err := predict.NewClient().Predict(context.Background(), srv.PredictURL(), predict.Features{"a": 1})
	var statusErr *predict.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("want *StatusError, got %v", err)
	}
	if statusErr.StatusCode() != http.StatusBadGateway {
		t.Fatalf("status code: got %d", statusErr.StatusCode())
	}
	if _, ok := predict.ServerMessage(err); ok {
		t.Fatalf("expected no server message")
	}
}

func TestClient_SanitizesServerMessage(t *testing.T) {
	srv := testsupport.NewPredictionServer(t, testsupport.WithResponse(http.StatusInternalServerError, map[string]any{
		"error": `<script>alert(1)</script>Error during prediction: bad & broken`,
	}))

	_, err := predict.NewClient().Predict(context.Background(), srv.PredictURL(), predict.Features{"a": 1})
	msg, ok := predict.ServerMessage(err)
	if !ok {
		t.Fatalf("expected server message, got %v", err)
	}
	if msg != "Error during prediction: bad & broken" {
		t.Fatalf("unexpected sanitized message %q", msg)
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := testsupport.NewPredictionServer(t)
	url := srv.PredictURL()
	srv.Close()

	_, err := predict.NewClient().Predict(context.Background(), url, predict.Features{"a": 1})
	var transportErr *predict.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("want *TransportError, got %T %v", err, err)
	}
}

func TestClient_TimeoutOption(t *testing.T) {
	gate := make(chan struct{})
	srv := testsupport.NewPredictionServer(t, testsupport.WithGate(gate))
	t.Cleanup(func() { close(gate) })

	client := predict.NewClient(predict.WithTimeout(20 * time.Millisecond))
	_, err := client.Predict(context.Background(), srv.PredictURL(), predict.Features{"a": 1})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want deadline exceeded, got %v", err)
	}
}

func TestClient_RequiresEndpoint(t *testing.T) {
	if _, err := predict.NewClient().Predict(context.Background(), " ", predict.Features{}); err == nil {
		t.Fatalf("expected error for empty endpoint")
	}
}
