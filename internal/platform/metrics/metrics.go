package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "construction_estimator"

	// Labels
	sourceLabel = "source"
	codeLabel   = "code"
	methodLabel = "method"
	pathLabel   = "path"
)

var (
	latencyBuckets = []float64{5, 25, 100, 500, 1000, 5000}

	estimatesTotalMetric = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimates_total",
			Help:      "number of material estimates computed, by source",
		},
		[]string{sourceLabel},
	)

	cacheLookupsTotalMetric = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimate_cache_lookups_total",
			Help:      "estimate cache lookups partitioned by result (hit, miss, error)",
		},
		[]string{"result"},
	)

	requestsTotalMetric = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests partitioned by status code, method and HTTP path.",
		},
		[]string{codeLabel, methodLabel, pathLabel},
	)

	requestLatencyMetric = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_milliseconds",
			Help:      "Time spent on the request partitioned by status code, method and HTTP path.",
			Buckets:   latencyBuckets,
		},
		[]string{codeLabel, methodLabel, pathLabel},
	)
)

func init() {
	prometheus.MustRegister(
		estimatesTotalMetric,
		cacheLookupsTotalMetric,
		requestsTotalMetric,
		requestLatencyMetric,
	)
}

// IncreaseEstimatesTotal counts one computed estimate.
func IncreaseEstimatesTotal(source string) {
	estimatesTotalMetric.With(prometheus.Labels{sourceLabel: source}).Inc()
}

// IncreaseCacheLookups counts a cache lookup outcome: "hit", "miss" or "error".
func IncreaseCacheLookups(result string) {
	cacheLookupsTotalMetric.WithLabelValues(result).Inc()
}

// Middleware records request count and latency labelled by the chi route pattern.
func Middleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			rp := rctx.RoutePattern()
			code := strconv.Itoa(ww.Status())
			since := float64(time.Since(start).Milliseconds())
			requestsTotalMetric.WithLabelValues(code, r.Method, rp).Inc()
			requestLatencyMetric.WithLabelValues(code, r.Method, rp).Observe(since)
		}
	}
	return http.HandlerFunc(fn)
}
