package entities

import "time"

// Order хранит суммы в минимальных единицах валюты (копейки/центы).
type Order struct {
	ID                    string
	RestaurantID          string
	UserID                string
	RiderID               *string
	Status                OrderStatus
	TotalAmount           int64
	DeliveryFee           int64
	DeliveryAddress       string
	DeliveryInstructions  *string
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	Items                 []OrderItem
	Version               int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// OrderItem.UnitPrice фиксируется в момент заказа и не меняется вместе с меню.
type OrderItem struct {
	ID         int64
	MenuItemID string
	Name       string
	Quantity   int32
	UnitPrice  int64
}

func (i OrderItem) Subtotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

func (o Order) ItemsTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Subtotal()
	}
	return total
}

func (o Order) HasRider() bool {
	return o.RiderID != nil && *o.RiderID != ""
}

func (o Order) CurrentRiderID() string {
	if o.RiderID == nil {
		return ""
	}
	return *o.RiderID
}

// OrderModify - частичное обновление заказа. ExpectedVersion обязателен:
// обновление проходит только если версия в хранилище не изменилась.
type OrderModify struct {
	ID                    string
	ExpectedVersion       int64
	Status                *OrderStatus
	RiderID               *string
	ClearRider            bool
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
}

func (m OrderModify) IsEmpty() bool {
	return m.Status == nil &&
		m.RiderID == nil &&
		!m.ClearRider &&
		m.EstimatedDeliveryTime == nil &&
		m.ActualDeliveryTime == nil
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type OrderSortField string

const (
	SortByCreatedAt   OrderSortField = "created_at"
	SortByUpdatedAt   OrderSortField = "updated_at"
	SortByTotalAmount OrderSortField = "total_amount"
	SortByStatus      OrderSortField = "status"
)

const (
	DefaultOrderListLimit = 50
	MaxOrderListLimit     = 500
)

// OrderFilter - простые предикаты равенства и диапазона, CreatedFrom включительно, CreatedTo исключительно.
type OrderFilter struct {
	RestaurantID *string
	UserID       *string
	RiderID      *string
	Statuses     []OrderStatus
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
	SortBy       OrderSortField
	SortDir      SortDirection
	Limit        uint64
	Offset       uint64
	// After - keyset-курсор, работает только с сортировкой по created_at.
	After *OrderCursor
}

// OrderCursor - позиция заказа в порядке (created_at, id).
type OrderCursor struct {
	CreatedAt time.Time
	ID        string
}

func (o Order) Cursor() *OrderCursor {
	return &OrderCursor{CreatedAt: o.CreatedAt, ID: o.ID}
}

type OrderStats struct {
	Total             int
	ByStatus          map[OrderStatus]int
	Revenue           int64
	DeliveryFees      int64
	HighPriorityCount int
	// HighPriorityAt - моменты, когда активные заказы переходят в high, по возрастанию.
	// HighPriorityCount пересчитывается по ним на любой момент времени.
	HighPriorityAt []time.Time
}

// OrderStatusRequest приходит от внешних систем (kafka), пустые поля не применяются.
type OrderStatusRequest struct {
	OrderID string
	Status  *OrderStatus
	RiderID *string
}
