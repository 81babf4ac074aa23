package order_status_requested

import "orderdesk/internal/entities"

// requestedEvent: отсутствующее поле не применяется, rider_id "" снимает курьера.
type requestedEvent struct {
	OrderID string  `json:"order_id"`
	Status  *string `json:"status,omitempty"`
	RiderID *string `json:"rider_id,omitempty"`
}

func (e requestedEvent) toRequest() entities.OrderStatusRequest {
	request := entities.OrderStatusRequest{
		OrderID: e.OrderID,
		RiderID: e.RiderID,
	}
	if e.Status != nil {
		status := entities.ParseOrderStatus(*e.Status)
		request.Status = &status
	}
	return request
}
