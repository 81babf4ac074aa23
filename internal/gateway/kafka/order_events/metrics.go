package order_events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PublisherRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_publish_retries_total",
			Help: "Total number of order event publishes that needed more than one attempt",
		},
		[]string{"topic", "result"},
	)

	PublisherDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_events_publish_duration_seconds",
			Help:    "Duration of order event publishing including retries",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"topic", "result"},
	)
)
