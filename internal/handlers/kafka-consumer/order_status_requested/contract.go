//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_requested_test
package order_status_requested

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
	ProcessStatusRequest(ctx context.Context, request entities.OrderStatusRequest) (*entities.Order, error)
}
