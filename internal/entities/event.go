package entities

import "time"

type OrderStatusChangedEvent struct {
	EventID        string
	OrderID        string
	RestaurantID   string
	PreviousStatus OrderStatus
	Status         OrderStatus
	RiderID        *string
	OccurredAt     time.Time
}
