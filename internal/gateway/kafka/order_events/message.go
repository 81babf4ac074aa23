package order_events

import (
	"time"

	"orderdesk/internal/entities"
)

const (
	headerEventType        = "event_type"
	eventTypeStatusChanged = "order.status.changed"
)

type statusChangedMessage struct {
	EventID        string    `json:"event_id"`
	OrderID        string    `json:"order_id"`
	RestaurantID   string    `json:"restaurant_id"`
	PreviousStatus string    `json:"previous_status"`
	Status         string    `json:"status"`
	RiderID        *string   `json:"rider_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func fromDomain(event entities.OrderStatusChangedEvent) statusChangedMessage {
	return statusChangedMessage{
		EventID:        event.EventID,
		OrderID:        event.OrderID,
		RestaurantID:   event.RestaurantID,
		PreviousStatus: event.PreviousStatus.String(),
		Status:         event.Status.String(),
		RiderID:        event.RiderID,
		OccurredAt:     event.OccurredAt.UTC(),
	}
}
