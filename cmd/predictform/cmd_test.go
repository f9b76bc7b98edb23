package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignments(t *testing.T) {
	values, err := parseAssignments([]string{"area=7420", " bedrooms = 4 ", "area=8000", "stories="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"area": "8000", "bedrooms": "4", "stories": ""}, values)
}

func TestParseAssignmentsRejectsMalformedPairs(t *testing.T) {
	for _, pair := range []string{"area", "=5", " =5"} {
		_, err := parseAssignments([]string{pair})
		assert.Error(t, err, pair)
	}
}

func TestRouterMuxRoutesEveryMethod(t *testing.T) {
	router := httprouter.New()
	var seen []string
	routerMux{router: router}.Handle("/predict", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))

	for _, method := range routedMethods {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, "/predict", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code, method)
	}
	assert.Equal(t, routedMethods, seen)
}

func TestRendererRegistryListsBothRenderers(t *testing.T) {
	registry, err := newRendererRegistry("en-US", false)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"tui", "vanilla"}, registry.List())
}
