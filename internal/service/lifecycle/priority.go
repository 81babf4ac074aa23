package lifecycle

import (
	"time"

	"orderdesk/internal/entities"
)

var priorityThresholds = map[entities.OrderStatus]time.Duration{
	entities.OrderPending:   5 * time.Minute,
	entities.OrderConfirmed: 10 * time.Minute,
	entities.OrderPreparing: 20 * time.Minute,
}

// PriorityThreshold - время ожидания, после которого заказ в статусе становится high.
func PriorityThreshold(status entities.OrderStatus) (time.Duration, bool) {
	threshold, ok := priorityThresholds[status]
	return threshold, ok
}

// ClassifyPriority считает ожидание от создания заказа.
func ClassifyPriority(order entities.Order, now time.Time) entities.PriorityBucket {
	threshold, ok := priorityThresholds[order.Status]
	if !ok {
		return entities.PriorityNormal
	}

	if Elapsed(order, now) >= threshold {
		return entities.PriorityHigh
	}
	return entities.PriorityNormal
}

func Elapsed(order entities.Order, now time.Time) time.Duration {
	if order.CreatedAt.IsZero() {
		return 0
	}
	elapsed := now.Sub(order.CreatedAt)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// HighPriorityAt - момент, начиная с которого ClassifyPriority вернет high
// для заказа в его текущем статусе. false для статусов без порога и заказов без CreatedAt.
func HighPriorityAt(order entities.Order) (time.Time, bool) {
	threshold, ok := priorityThresholds[order.Status]
	if !ok || order.CreatedAt.IsZero() {
		return time.Time{}, false
	}
	return order.CreatedAt.Add(threshold), true
}
