package lifecycle

import (
	"fmt"

	"orderdesk/internal/entities"
)

// ResolveAssignment назначает курьера riderID, пустая строка снимает назначение.
// Для завершенных заказов любое назначение отклоняется, даже повторное.
func ResolveAssignment(order entities.Order, riderID string) (entities.Order, error) {
	if order.Status.IsTerminal() {
		return entities.Order{}, fmt.Errorf("%w: order %s is %s", ErrInvalidAssignment, order.ID, order.Status)
	}

	if order.CurrentRiderID() == riderID {
		return order, nil
	}

	updated := order
	if riderID == "" {
		updated.RiderID = nil
	} else {
		id := riderID
		updated.RiderID = &id
	}

	return updated, nil
}
