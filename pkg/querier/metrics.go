package querier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var Statements = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "orderdesk",
		Subsystem: "db",
		Name:      "statements_total",
		Help:      "SQL statements issued by the order store, by kind and whether they ran inside a transaction",
	},
	[]string{"statement", "scope"},
)
