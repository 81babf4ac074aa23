package rider

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"orderdesk/internal/entities"
)

type Rider struct {
	repository Repository
}

func New(repository Repository) *Rider {
	return &Rider{
		repository: repository,
	}
}

func (s *Rider) GetRider(ctx context.Context, id string) (*entities.Rider, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrInvalidRiderID
	}

	rider, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get rider: %w", err)
	}

	return rider, nil
}

func (s *Rider) GetRiders(ctx context.Context, activeOnly bool) ([]entities.Rider, error) {
	riders, err := s.repository.GetAll(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get riders: %w", err)
	}

	return riders, nil
}
