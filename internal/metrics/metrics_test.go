package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordUpgrade(t *testing.T) {
	before := testutil.ToFloat64(UpgradeAttempts.WithLabelValues("weapon_elixir", OutcomeApplied))

	RecordUpgrade("weapon_elixir", OutcomeApplied)
	RecordUpgrade("weapon_elixir", OutcomeApplied)

	after := testutil.ToFloat64(UpgradeAttempts.WithLabelValues("weapon_elixir", OutcomeApplied))
	assert.Equal(t, before+2, after)
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/weapons/{id}/stats", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/weapons/{id}/stats", "418")
	before := testutil.ToFloat64(counter)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/weapons/6f1c2a4e-0000-4000-8000-000000000001/stats", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Zero(t, testutil.ToFloat64(HTTPRequestsInFlight))
}

func TestMiddleware_WithoutRouter(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "200")
	before := testutil.ToFloat64(counter)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/anything", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
