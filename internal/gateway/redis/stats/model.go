package stats

import (
	"time"

	"orderdesk/internal/entities"
)

type statsDTO struct {
	Total             int            `json:"total"`
	ByStatus          map[string]int `json:"by_status"`
	Revenue           int64          `json:"revenue"`
	DeliveryFees      int64          `json:"delivery_fees"`
	HighPriorityCount int            `json:"high_priority_count"`
	HighPriorityAt    []time.Time    `json:"high_priority_at,omitempty"`
}

func fromDomain(stats entities.OrderStats) statsDTO {
	byStatus := make(map[string]int, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[status.String()] = count
	}

	return statsDTO{
		Total:             stats.Total,
		ByStatus:          byStatus,
		Revenue:           stats.Revenue,
		DeliveryFees:      stats.DeliveryFees,
		HighPriorityCount: stats.HighPriorityCount,
		HighPriorityAt:    stats.HighPriorityAt,
	}
}

func (d statsDTO) toDomain() *entities.OrderStats {
	byStatus := make(map[entities.OrderStatus]int, len(d.ByStatus))
	for status, count := range d.ByStatus {
		byStatus[entities.ParseOrderStatus(status)] += count
	}

	return &entities.OrderStats{
		Total:             d.Total,
		ByStatus:          byStatus,
		Revenue:           d.Revenue,
		DeliveryFees:      d.DeliveryFees,
		HighPriorityCount: d.HighPriorityCount,
		HighPriorityAt:    d.HighPriorityAt,
	}
}
