package order

import "time"

type OrderDB struct {
	ID                    string
	RestaurantID          string
	UserID                string
	RiderID               *string
	Status                string
	TotalAmount           int64
	DeliveryFee           int64
	DeliveryAddress       string
	DeliveryInstructions  *string
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	Version               int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type OrderItemDB struct {
	ID         int64
	OrderID    string
	MenuItemID string
	Name       string
	Quantity   int32
	UnitPrice  int64
}

type OrderModifyDB struct {
	ID                    string
	ExpectedVersion       int64
	Status                *string
	RiderID               *string
	ClearRider            bool
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
}
