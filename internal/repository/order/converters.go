package order

import (
	"orderdesk/internal/entities"
)

func ToDomain(o *OrderDB, items []OrderItemDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:                    o.ID,
		RestaurantID:          o.RestaurantID,
		UserID:                o.UserID,
		RiderID:               o.RiderID,
		Status:                entities.ParseOrderStatus(o.Status),
		TotalAmount:           o.TotalAmount,
		DeliveryFee:           o.DeliveryFee,
		DeliveryAddress:       o.DeliveryAddress,
		DeliveryInstructions:  o.DeliveryInstructions,
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		ActualDeliveryTime:    o.ActualDeliveryTime,
		Items:                 ItemsToDomain(items),
		Version:               o.Version,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
}

func ItemsToDomain(items []OrderItemDB) []entities.OrderItem {
	if len(items) == 0 {
		return nil
	}

	result := make([]entities.OrderItem, len(items))
	for i, item := range items {
		result[i] = entities.OrderItem{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		}
	}
	return result
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i := range ordersDB {
		result[i] = *ToDomain(&ordersDB[i], nil)
	}
	return result
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}

	orderDB := &OrderModifyDB{
		ID:                    orderModify.ID,
		ExpectedVersion:       orderModify.ExpectedVersion,
		RiderID:               orderModify.RiderID,
		ClearRider:            orderModify.ClearRider,
		EstimatedDeliveryTime: orderModify.EstimatedDeliveryTime,
		ActualDeliveryTime:    orderModify.ActualDeliveryTime,
	}

	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}

	return orderDB
}
