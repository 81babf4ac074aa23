//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_test
package rider

import (
	"context"

	"orderdesk/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Rider, error)
	GetAll(ctx context.Context, activeOnly bool) ([]entities.Rider, error)
}
