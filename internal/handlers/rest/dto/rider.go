package dto

import (
	"time"

	"orderdesk/internal/entities"
)

type Rider struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func RidersFromEntities(riders []entities.Rider) []Rider {
	result := make([]Rider, len(riders))
	for i, rider := range riders {
		result[i] = Rider{
			ID:        rider.ID,
			Name:      rider.Name,
			Phone:     rider.Phone,
			Active:    rider.Active,
			CreatedAt: rider.CreatedAt,
		}
	}
	return result
}
