package priority_sweep

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HighPriorityOrders = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "orders_high_priority",
		Help: "Active orders waiting longer than their status threshold, by status",
	},
	[]string{"status"},
)
