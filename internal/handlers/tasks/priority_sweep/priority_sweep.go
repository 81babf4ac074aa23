package priority_sweep

import (
	"context"
	"fmt"
	"time"

	"orderdesk/internal/entities"
	"orderdesk/internal/service/lifecycle"
	"orderdesk/pkg/logger"
)

const pageSize = entities.MaxOrderListLimit

// PrioritySweep периодически пересчитывает, сколько активных заказов
// ждут дольше порога своего статуса, и выставляет gauge orders_high_priority.
type PrioritySweep struct {
	log      handlerLogger
	service  Service
	interval time.Duration
	now      func() time.Time
}

func NewPrioritySweep(log handlerLogger, service Service, interval time.Duration) *PrioritySweep {
	return &PrioritySweep{
		log:      log.With(logger.NewField("task", "priority_sweep")),
		service:  service,
		interval: interval,
		now:      time.Now,
	}
}

func (p *PrioritySweep) TTL() time.Duration {
	return p.interval
}

func (p *PrioritySweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	now := p.now().UTC()
	highByStatus := make(map[entities.OrderStatus]int, len(entities.ActiveOrderStatuses()))
	for _, status := range entities.ActiveOrderStatuses() {
		highByStatus[status] = 0
	}

	filter := entities.OrderFilter{
		Statuses: entities.ActiveOrderStatuses(),
		SortBy:   entities.SortByCreatedAt,
		SortDir:  entities.SortAsc,
		Limit:    pageSize,
	}

	total := 0
	for {
		orders, err := p.service.ListOrders(ctxWithTimeout, filter)
		if err != nil {
			return fmt.Errorf("list active orders: %w", err)
		}

		for _, order := range orders {
			if lifecycle.ClassifyPriority(order, now) == entities.PriorityHigh {
				highByStatus[order.Status]++
			}
		}
		total += len(orders)

		if uint64(len(orders)) < filter.Limit {
			break
		}
		// keyset по (created_at, id): смена статуса во время обхода не сдвигает страницы
		filter.After = orders[len(orders)-1].Cursor()
	}

	highTotal := 0
	for status, count := range highByStatus {
		HighPriorityOrders.WithLabelValues(status.String()).Set(float64(count))
		highTotal += count
	}

	if highTotal > 0 {
		p.log.With(
			logger.NewField("active_orders", total),
			logger.NewField("high_priority_orders", highTotal),
		).Warn("orders waiting past threshold")
	}

	return nil
}

func (p *PrioritySweep) Info() string {
	return "priority sweep"
}
