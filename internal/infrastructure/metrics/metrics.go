package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestsTotal counts handled HTTP requests by method, route and status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "playtube_http_requests_total",
		Help: "Total number of HTTP requests processed.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration observes request latency by route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "playtube_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// ToggleOutcomesTotal counts reaction and subscription toggle results by
// target kind and resulting state.
var ToggleOutcomesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "playtube_toggle_outcomes_total",
		Help: "Total number of toggle operations by kind and resulting state.",
	},
	[]string{"kind", "state"},
)

// ToggleContentionTotal counts toggles that failed after the conflict retry.
var ToggleContentionTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "playtube_toggle_contention_total",
		Help: "Total number of toggle operations abandoned due to write contention.",
	},
)
