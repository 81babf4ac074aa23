package entities

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderReadyForPickup OrderStatus = "ready_for_pickup"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"

	// OrderStatusUnknown - все, что пришло из хранилища или запроса и не распознано.
	OrderStatusUnknown OrderStatus = "unknown"
)

var knownStatuses = map[OrderStatus]struct{}{
	OrderPending:        {},
	OrderConfirmed:      {},
	OrderPreparing:      {},
	OrderReadyForPickup: {},
	OrderOutForDelivery: {},
	OrderDelivered:      {},
	OrderCancelled:      {},
}

func ParseOrderStatus(s string) OrderStatus {
	status := OrderStatus(s)
	if _, ok := knownStatuses[status]; ok {
		return status
	}
	return OrderStatusUnknown
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsKnown() bool {
	_, ok := knownStatuses[s]
	return ok
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// ActiveOrderStatuses - статусы, по которым считается приоритет ожидания.
func ActiveOrderStatuses() []OrderStatus {
	return []OrderStatus{OrderPending, OrderConfirmed, OrderPreparing}
}

type PriorityBucket string

const (
	PriorityNormal PriorityBucket = "normal"
	PriorityHigh   PriorityBucket = "high"
)

func (p PriorityBucket) String() string {
	return string(p)
}
