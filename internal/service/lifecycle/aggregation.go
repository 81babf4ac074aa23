package lifecycle

import (
	"slices"
	"time"

	"orderdesk/internal/entities"
)

// CountByStatus с nil считает все заказы.
func CountByStatus(orders []entities.Order, status *entities.OrderStatus) int {
	if status == nil {
		return len(orders)
	}

	count := 0
	for _, order := range orders {
		if order.Status == *status {
			count++
		}
	}
	return count
}

// TotalRevenue - сумма TotalAmount без отмененных заказов.
func TotalRevenue(orders []entities.Order) int64 {
	var revenue int64
	for _, order := range orders {
		if order.Status == entities.OrderCancelled {
			continue
		}
		revenue += order.TotalAmount
	}
	return revenue
}

// Summarize заполняет HighPriorityAt, чтобы закэшированный результат можно было
// пересчитать на другой момент через RefreshHighPriority.
func Summarize(orders []entities.Order, now time.Time) entities.OrderStats {
	stats := entities.OrderStats{
		Total:    len(orders),
		ByStatus: make(map[entities.OrderStatus]int),
	}

	for _, order := range orders {
		stats.ByStatus[order.Status]++

		if order.Status != entities.OrderCancelled {
			stats.Revenue += order.TotalAmount
			stats.DeliveryFees += order.DeliveryFee
		}
		if at, ok := HighPriorityAt(order); ok {
			stats.HighPriorityAt = append(stats.HighPriorityAt, at)
		}
	}

	slices.SortFunc(stats.HighPriorityAt, time.Time.Compare)

	return RefreshHighPriority(stats, now)
}

// RefreshHighPriority пересчитывает HighPriorityCount на момент now.
func RefreshHighPriority(stats entities.OrderStats, now time.Time) entities.OrderStats {
	count := 0
	for _, at := range stats.HighPriorityAt {
		if !now.Before(at) {
			count++
		}
	}
	stats.HighPriorityCount = count
	return stats
}
