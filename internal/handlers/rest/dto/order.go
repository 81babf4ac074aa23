package dto

import (
	"time"

	"orderdesk/internal/entities"
	"orderdesk/internal/service/lifecycle"
)

type OrderItem struct {
	ID         int64  `json:"id"`
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int32  `json:"quantity"`
	UnitPrice  int64  `json:"unit_price"`
	Subtotal   int64  `json:"subtotal"`
}

type Order struct {
	ID                    string      `json:"id"`
	RestaurantID          string      `json:"restaurant_id"`
	UserID                string      `json:"user_id"`
	RiderID               *string     `json:"rider_id"`
	Status                string      `json:"status"`
	Priority              string      `json:"priority"`
	TotalAmount           int64       `json:"total_amount"`
	DeliveryFee           int64       `json:"delivery_fee"`
	DeliveryAddress       string      `json:"delivery_address"`
	DeliveryInstructions  *string     `json:"delivery_instructions,omitempty"`
	EstimatedDeliveryTime *time.Time  `json:"estimated_delivery_time,omitempty"`
	ActualDeliveryTime    *time.Time  `json:"actual_delivery_time,omitempty"`
	Items                 []OrderItem `json:"items"`
	Version               int64       `json:"version"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

type OrderList struct {
	Orders []Order `json:"orders"`
	Limit  uint64  `json:"limit"`
	Offset uint64  `json:"offset"`
}

type OrderStats struct {
	Total             int            `json:"total"`
	ByStatus          map[string]int `json:"by_status"`
	Revenue           int64          `json:"revenue"`
	DeliveryFees      int64          `json:"delivery_fees"`
	HighPriorityCount int            `json:"high_priority_count"`
}

// OrderFromEntity считает priority на момент now, в хранилище он не лежит.
func OrderFromEntity(order entities.Order, now time.Time) Order {
	items := make([]OrderItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItem{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Subtotal:   item.Subtotal(),
		}
	}

	return Order{
		ID:                    order.ID,
		RestaurantID:          order.RestaurantID,
		UserID:                order.UserID,
		RiderID:               order.RiderID,
		Status:                order.Status.String(),
		Priority:              lifecycle.ClassifyPriority(order, now).String(),
		TotalAmount:           order.TotalAmount,
		DeliveryFee:           order.DeliveryFee,
		DeliveryAddress:       order.DeliveryAddress,
		DeliveryInstructions:  order.DeliveryInstructions,
		EstimatedDeliveryTime: order.EstimatedDeliveryTime,
		ActualDeliveryTime:    order.ActualDeliveryTime,
		Items:                 items,
		Version:               order.Version,
		CreatedAt:             order.CreatedAt,
		UpdatedAt:             order.UpdatedAt,
	}
}

func OrdersFromEntities(orders []entities.Order, now time.Time) []Order {
	result := make([]Order, len(orders))
	for i, order := range orders {
		result[i] = OrderFromEntity(order, now)
	}
	return result
}

func StatsFromEntity(stats entities.OrderStats) OrderStats {
	byStatus := make(map[string]int, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[status.String()] = count
	}

	return OrderStats{
		Total:             stats.Total,
		ByStatus:          byStatus,
		Revenue:           stats.Revenue,
		DeliveryFees:      stats.DeliveryFees,
		HighPriorityCount: stats.HighPriorityCount,
	}
}
