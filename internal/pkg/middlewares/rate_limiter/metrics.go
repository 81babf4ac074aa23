package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RejectedRequests - orderdesk_console_api_rate_limited_requests_total.
var RejectedRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "orderdesk",
		Subsystem: "console_api",
		Name:      "rate_limited_requests_total",
		Help:      "Console API requests answered with 429 because the shared token bucket was empty, by method and route template",
	},
	[]string{"method", "route"},
)
