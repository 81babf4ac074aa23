//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_stats_get_test
package orders_stats_get

import (
	"context"

	"orderdesk/internal/entities"
	"orderdesk/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetStats(ctx context.Context, filter entities.OrderFilter) (*entities.OrderStats, error)
}
