// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts API requests by method, route and status code.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autoloc_http_requests_total",
			Help: "Total HTTP requests handled by the API.",
		},
		[]string{"method", "route", "code"},
	)

	// HTTPDuration observes request latency by route.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "autoloc_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// JobRuns counts scheduled job executions by outcome.
	JobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autoloc_job_runs_total",
			Help: "Scheduled job executions.",
		},
		[]string{"job", "outcome"},
	)
)
