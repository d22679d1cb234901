// Package metrics provides Prometheus metrics for the RealScroll client
// and the development mock server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "realscroll_api_requests_total",
			Help: "Total API requests issued by the client transport",
		},
		[]string{"method", "status"},
	)

	apiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "realscroll_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	serverRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "realscroll_mockserver_requests_total",
			Help: "Total HTTP requests handled by the mock server",
		},
		[]string{"method", "status"},
	)

	serverRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "realscroll_mockserver_request_duration_seconds",
			Help:    "Mock server request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// RecordAPIRequest records one transport round trip. status is the HTTP
// status code, or 0 for a network/timeout failure.
func RecordAPIRequest(method string, status int, d time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	apiRequestsTotal.WithLabelValues(method, label).Inc()
	apiRequestDuration.WithLabelValues(method).Observe(d.Seconds())
}

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware instruments mock server requests.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		serverRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
		serverRequestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}
