package tx

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var TxDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "orderdesk",
		Subsystem: "db",
		Name:      "tx_duration_seconds",
		Help:      "Duration of order store transactions by isolation level and outcome",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	},
	[]string{"isolation", "outcome"},
)
