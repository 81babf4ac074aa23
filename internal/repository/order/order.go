package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"orderdesk/internal/entities"
	"orderdesk/internal/repository"
	"orderdesk/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"id",
	"restaurant_id",
	"user_id",
	"rider_id",
	"status",
	"total_amount",
	"delivery_fee",
	"delivery_address",
	"delivery_instructions",
	"estimated_delivery_time",
	"actual_delivery_time",
	"version",
	"created_at",
	"updated_at",
}

// колонки сортировки только из белого списка, в ORDER BY нельзя плейсхолдеры
var sortColumns = map[entities.OrderSortField]string{
	entities.SortByCreatedAt:   "created_at",
	entities.SortByUpdatedAt:   "updated_at",
	entities.SortByTotalAmount: "total_amount",
	entities.SortByStatus:      "status",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner, orderModel *OrderDB) error {
	return row.Scan(
		&orderModel.ID,
		&orderModel.RestaurantID,
		&orderModel.UserID,
		&orderModel.RiderID,
		&orderModel.Status,
		&orderModel.TotalAmount,
		&orderModel.DeliveryFee,
		&orderModel.DeliveryAddress,
		&orderModel.DeliveryInstructions,
		&orderModel.EstimatedDeliveryTime,
		&orderModel.ActualDeliveryTime,
		&orderModel.Version,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + strings.Join(orderColumns, ", ") + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := scanOrder(r.querier.QueryRow(ctx, query, id), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || repository.IsPgErrorWithCode(err, repository.PgErrInvalidTextRepr) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	items, err := r.getItems(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderModel, items), nil
}

func (r *Repository) getItems(ctx context.Context, orderID string) ([]OrderItemDB, error) {
	query := `
	SELECT id, order_id, menu_item_id, name, quantity, unit_price
	FROM order_items
	WHERE order_id = $1
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository items error: %w", err)
	}
	defer rows.Close()

	items := make([]OrderItemDB, 0, 4)
	for rows.Next() {
		var item OrderItemDB
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.MenuItemID,
			&item.Name,
			&item.Quantity,
			&item.UnitPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository items error: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository items error: %w", err)
	}

	return items, nil
}

// List не загружает позиции заказа, для списков они не нужны.
func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 16)
	for rows.Next() {
		var orderModel OrderDB
		if err := scanOrder(rows, &orderModel); err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func buildListQuery(filter entities.OrderFilter) (string, []interface{}, error) {
	builder := qb.
		Select(orderColumns...).
		From("orders")

	if filter.RestaurantID != nil {
		builder = builder.Where(sq.Eq{"restaurant_id": *filter.RestaurantID})
	}
	if filter.UserID != nil {
		builder = builder.Where(sq.Eq{"user_id": *filter.UserID})
	}
	if filter.RiderID != nil {
		builder = builder.Where(sq.Eq{"rider_id": *filter.RiderID})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			statuses[i] = status.String()
		}
		builder = builder.Where(sq.Eq{"status": statuses})
	}
	if filter.CreatedFrom != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.CreatedFrom})
	}
	if filter.CreatedTo != nil {
		builder = builder.Where(sq.Lt{"created_at": *filter.CreatedTo})
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = sortColumns[entities.SortByCreatedAt]
	}
	direction := "DESC"
	if filter.SortDir == entities.SortAsc {
		direction = "ASC"
	}

	if filter.After != nil {
		cmp := "<"
		if filter.SortDir == entities.SortAsc {
			cmp = ">"
		}
		builder = builder.Where(sq.Expr("(created_at, id) "+cmp+" (?, ?)", filter.After.CreatedAt, filter.After.ID))
	}
	// id вторым ключом, чтобы пагинация была стабильной
	builder = builder.OrderBy(column+" "+direction, "id "+direction)

	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	return builder.ToSql()
}

// Update применяет изменения только если версия заказа совпала с ожидаемой.
func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	query, args, err := buildUpdateQuery(FromDomainModify(&orderModifyEntity))
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = scanOrder(r.querier.QueryRow(ctx, query, args...), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missingUpdateReason(ctx, orderModifyEntity.ID)
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrRiderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	items, err := r.getItems(ctx, orderModel.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderModel, items), nil
}

func buildUpdateQuery(orderModify *OrderModifyDB) (string, []interface{}, error) {
	builder := qb.
		Update("orders")

	// опциональные поля
	if orderModify.Status != nil {
		builder = builder.Set("status", *orderModify.Status)
	}
	if orderModify.ClearRider {
		builder = builder.Set("rider_id", nil)
	} else if orderModify.RiderID != nil {
		builder = builder.Set("rider_id", *orderModify.RiderID)
	}
	if orderModify.EstimatedDeliveryTime != nil {
		builder = builder.Set("estimated_delivery_time", *orderModify.EstimatedDeliveryTime)
	}
	if orderModify.ActualDeliveryTime != nil {
		builder = builder.Set("actual_delivery_time", *orderModify.ActualDeliveryTime)
	}

	return builder.
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": orderModify.ID}).
		Where(sq.Eq{"version": orderModify.ExpectedVersion}).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		ToSql()
}

// missingUpdateReason различает удаленный заказ и устаревшую версию.
func (r *Repository) missingUpdateReason(ctx context.Context, id string) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected order repository update error: %w", err)
	}

	if !exists {
		return order.ErrOrderNotFound
	}
	return order.ErrConcurrentUpdate
}
