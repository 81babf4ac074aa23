package dto

import "fmt"

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

// RiderAssignRequest: пустой или null rider_id снимает курьера.
type RiderAssignRequest struct {
	RiderID *string `json:"rider_id"`
}

type Error struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Target возвращает id курьера для назначения, "" означает снятие.
func (r RiderAssignRequest) Target() (string, error) {
	if r.RiderID == nil || *r.RiderID == "" {
		return "", nil
	}
	if err := Validator().Var(*r.RiderID, "uuid"); err != nil {
		return "", fmt.Errorf("%w: rider_id: %w", ErrInvalidQuery, err)
	}
	return *r.RiderID, nil
}

func (r StatusUpdateRequest) Validate() error {
	if err := Validator().Struct(r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	return nil
}
