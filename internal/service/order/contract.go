//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"orderdesk/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.OrderStatusChangedEvent) error
}

// StatsCache - кэш агрегатов для дашборда. Get возвращает поколение кэша,
// промах - (nil, generation, nil). Set пишет в поколение, полученное из Get.
type StatsCache interface {
	Get(ctx context.Context, key string) (*entities.OrderStats, int64, error)
	Set(ctx context.Context, generation int64, key string, stats entities.OrderStats) error
	Invalidate(ctx context.Context) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
