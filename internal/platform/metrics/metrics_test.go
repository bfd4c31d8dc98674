package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncreaseEstimatesTotal(t *testing.T) {
	before := testutil.ToFloat64(estimatesTotalMetric.WithLabelValues("manual"))
	IncreaseEstimatesTotal("manual")
	IncreaseEstimatesTotal("manual")
	assert.Equal(t, before+2, testutil.ToFloat64(estimatesTotalMetric.WithLabelValues("manual")))
}

func TestIncreaseCacheLookups(t *testing.T) {
	before := testutil.ToFloat64(cacheLookupsTotalMetric.WithLabelValues("hit"))
	IncreaseCacheLookups("hit")
	assert.Equal(t, before+1, testutil.ToFloat64(cacheLookupsTotalMetric.WithLabelValues("hit")))
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/estimates/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := requestsTotalMetric.WithLabelValues("404", http.MethodGet, "/estimates/{id}")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/estimates/abc", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
