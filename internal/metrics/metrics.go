package metrics

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// ExchangesTotal counts completed moment exchanges (one per swap row).
	ExchangesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "momentswap_exchanges_total",
			Help: "Total number of completed moment exchanges",
		},
	)

	// SelfSwapsTotal counts exchanges that fell back to returning the
	// submitter's own moment because no other moment existed.
	SelfSwapsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "momentswap_exchange_self_swaps_total",
			Help: "Total number of exchanges that fell back to the user's own moment",
		},
	)

	// SessionsPurgedTotal counts expired sessions removed by the cleanup job.
	SessionsPurgedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "momentswap_sessions_purged_total",
			Help: "Total number of expired sessions removed by the cleanup job",
		},
	)
)

var (
	numericPathSegment = regexp.MustCompile(`/[0-9]+(/|$)`)
	initOnce           sync.Once
)

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, ExchangesTotal, SelfSwapsTotal, SessionsPurgedTotal)
	})
}

// NormalizePath reduces cardinality by replacing numeric path segments with {id}.
func NormalizePath(path string) string {
	return numericPathSegment.ReplaceAllString(path, "/{id}$1")
}

// RecordRequest records duration and count for an HTTP request. Call from middleware with method, path, statusCode, duration.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// RecordExchange counts a completed exchange; selfSwap marks the no-peer fallback.
func RecordExchange(selfSwap bool) {
	ExchangesTotal.Inc()
	if selfSwap {
		SelfSwapsTotal.Inc()
	}
}

// AddSessionsPurged adds the count of sessions removed by a cleanup run.
func AddSessionsPurged(n int64) {
	if n > 0 {
		SessionsPurgedTotal.Add(float64(n))
	}
}
