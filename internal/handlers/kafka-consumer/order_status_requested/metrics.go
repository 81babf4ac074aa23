package order_status_requested

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultProcessed = "processed"
	resultRejected  = "rejected"
	resultMalformed = "malformed"
	resultFailed    = "failed"
	resultRequeued  = "requeued"
)

var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "order_status_requests_total",
		Help: "Total number of order.status.requested messages by processing result",
	},
	[]string{"result"},
)
