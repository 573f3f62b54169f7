// Package metrics provides Prometheus metrics for the reel-api service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream call outcomes.
const (
	UpstreamOutcomeSuccess     = "success"
	UpstreamOutcomeUnavailable = "unavailable"
	UpstreamOutcomeNotFound    = "not_found"
	UpstreamOutcomeError       = "error"
	UpstreamOutcomeMisconfig   = "misconfigured"
)

var (
	// HTTPRequests counts inbound HTTP requests by route and status.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reel_api_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks inbound request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reel_api_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// UpstreamRequests counts calls to the download API by outcome.
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reel_api_upstream_requests_total",
			Help: "Total number of requests sent to the download API",
		},
		[]string{"outcome"},
	)

	// UpstreamDuration tracks download API latency.
	UpstreamDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reel_api_upstream_duration_seconds",
			Help:    "Duration of download API requests",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
	)

	// ReelResolutions counts terminal outcomes of reel resolution.
	ReelResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reel_api_reel_resolutions_total",
			Help: "Total number of reel resolutions by outcome",
		},
		[]string{"outcome"},
	)
)

// RecordHTTPRequest records a completed inbound request.
func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordUpstreamCall records a download API call.
func RecordUpstreamCall(outcome string, elapsed time.Duration) {
	UpstreamRequests.WithLabelValues(outcome).Inc()
	if outcome != UpstreamOutcomeMisconfig {
		UpstreamDuration.Observe(elapsed.Seconds())
	}
}

// RecordResolution records a terminal reel resolution outcome.
func RecordResolution(outcome string) {
	ReelResolutions.WithLabelValues(outcome).Inc()
}
