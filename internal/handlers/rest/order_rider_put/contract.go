//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_rider_put_test
package order_rider_put

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
	AssignRider(ctx context.Context, orderID, riderID string) (*entities.Order, error)
}
