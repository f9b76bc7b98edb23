package predictform

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-priceform/pkg/testsupport"
)

func callAPI(t *testing.T, h http.Handler, body string) (int, apiResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/predict", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}
	var payload apiResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return rec.Code, payload
}

func TestAPI_Success(t *testing.T) {
	srv := testsupport.NewPredictionServer(t, testsupport.WithPrice(321000.5))
	h := APIHandler(WithSchema(structureSchema(srv.PredictURL())))

	code, payload := callAPI(t, h, `{"area":"7420","bedrooms":4,"bathrooms":"2","stories":3,"extra":"ignored"}`)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%+v)", code, payload)
	}
	if payload.Price == nil || *payload.Price != 321000.5 || payload.Error != "" {
		t.Fatalf("unexpected payload %+v", payload)
	}
	want := map[string]any{"area": 7420.0, "bedrooms": 4.0, "bathrooms": 2.0, "stories": 3.0}
	if diff := cmp.Diff(want, srv.Requests()[0].Body); diff != "" {
		t.Fatalf("upstream payload mismatch (-want +got):\n%s", diff)
	}
}

func TestAPI_ValidationError(t *testing.T) {
	srv := testsupport.NewPredictionServer(t)
	h := APIHandler(WithSchema(structureSchema(srv.PredictURL())))

	code, payload := callAPI(t, h, `{"area":"0","bedrooms":"4","bathrooms":"2"}`)
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if payload.Error != "All fields are required and must be valid numbers." {
		t.Fatalf("unexpected error %q", payload.Error)
	}
	if diff := cmp.Diff([]string{"area", "stories"}, payload.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if srv.Count() != 0 {
		t.Fatalf("validation failure reached upstream")
	}
}

func TestAPI_UpstreamFailures(t *testing.T) {
	cases := []struct {
		name    string
		option  testsupport.ServerOption
		wantErr string
	}{
		{"invalid response", testsupport.WithResponse(http.StatusOK, map[string]any{"ok": true}), "Invalid response from server"},
		{"server message", testsupport.WithResponse(http.StatusInternalServerError, map[string]any{"error": "Error during prediction: boom"}), "Error during prediction: boom"},
		{"bare failure", testsupport.WithRawResponse(http.StatusBadGateway, "upstream down"), "Network error. Please try again later."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := testsupport.NewPredictionServer(t, tc.option)
			h := APIHandler(WithSchema(structureSchema(srv.PredictURL())))
			code, payload := callAPI(t, h, `{"area":1,"bedrooms":1,"bathrooms":1,"stories":1}`)
			if code != http.StatusBadGateway {
				t.Fatalf("expected 502, got %d", code)
			}
			if payload.Error != tc.wantErr || payload.Price != nil {
				t.Fatalf("unexpected payload %+v", payload)
			}
		})
	}
}

func TestAPI_BadRequests(t *testing.T) {
	h := APIHandler()

	code, _ := callAPI(t, h, `not json`)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid JSON, got %d", code)
	}
	code, _ = callAPI(t, h, `null`)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for null body, got %d", code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/predict", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed || rec.Header().Get("Allow") != http.MethodPost {
		t.Fatalf("expected 405 with Allow: POST, got %d %q", rec.Code, rec.Header().Get("Allow"))
	}
}

func TestRawValue(t *testing.T) {
	cases := map[string]any{
		"":      nil,
		"12.5":  12.5,
		"7420":  7420.0,
		" 3 ":   " 3 ",
		"true":  true,
	}
	for want, in := range cases {
		if got := rawValue(in); got != want {
			t.Fatalf("rawValue(%v) = %q, want %q", in, got, want)
		}
	}
	if got := rawValue([]any{1}); got != "" {
		t.Fatalf("expected empty for arrays, got %q", got)
	}
}
