package dto

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"orderdesk/internal/entities"
)

var ErrInvalidQuery = errors.New("invalid query")

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator общий на пакет, validator кэширует разбор тегов.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// OrdersQuery - параметры GET /orders и GET /orders/stats.
type OrdersQuery struct {
	RestaurantID string   `validate:"omitempty,uuid"`
	UserID       string   `validate:"omitempty,uuid"`
	RiderID      string   `validate:"omitempty,uuid"`
	Statuses     []string `validate:"dive,oneof=pending confirmed preparing ready_for_pickup out_for_delivery delivered cancelled"`
	CreatedFrom  string   `validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	CreatedTo    string   `validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	SortBy       string   `validate:"omitempty,oneof=created_at updated_at total_amount status"`
	SortDir      string   `validate:"omitempty,oneof=asc desc"`
	Limit        string   `validate:"omitempty,number"`
	Offset       string   `validate:"omitempty,number"`
}

func NewOrdersQuery(values url.Values) OrdersQuery {
	query := OrdersQuery{
		RestaurantID: values.Get("restaurant_id"),
		UserID:       values.Get("user_id"),
		RiderID:      values.Get("rider_id"),
		CreatedFrom:  values.Get("created_from"),
		CreatedTo:    values.Get("created_to"),
		SortBy:       values.Get("sort_by"),
		SortDir:      values.Get("sort_dir"),
		Limit:        values.Get("limit"),
		Offset:       values.Get("offset"),
	}

	// status=pending,confirmed и status=pending&status=confirmed равнозначны
	for _, raw := range values["status"] {
		for _, status := range strings.Split(raw, ",") {
			if status = strings.TrimSpace(status); status != "" {
				query.Statuses = append(query.Statuses, status)
			}
		}
	}

	return query
}

// Filter валидирует параметры и переводит их в фильтр хранилища.
func (q OrdersQuery) Filter() (entities.OrderFilter, error) {
	if err := Validator().Struct(q); err != nil {
		return entities.OrderFilter{}, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	filter := entities.OrderFilter{
		RestaurantID: optional(q.RestaurantID),
		UserID:       optional(q.UserID),
		RiderID:      optional(q.RiderID),
		SortBy:       entities.OrderSortField(q.SortBy),
		SortDir:      entities.SortDirection(q.SortDir),
	}

	for _, status := range q.Statuses {
		filter.Statuses = append(filter.Statuses, entities.ParseOrderStatus(status))
	}

	var err error
	if filter.CreatedFrom, err = optionalTime(q.CreatedFrom); err != nil {
		return entities.OrderFilter{}, fmt.Errorf("%w: created_from: %w", ErrInvalidQuery, err)
	}
	if filter.CreatedTo, err = optionalTime(q.CreatedTo); err != nil {
		return entities.OrderFilter{}, fmt.Errorf("%w: created_to: %w", ErrInvalidQuery, err)
	}
	if filter.Limit, err = optionalUint(q.Limit); err != nil {
		return entities.OrderFilter{}, fmt.Errorf("%w: limit: %w", ErrInvalidQuery, err)
	}
	if filter.Offset, err = optionalUint(q.Offset); err != nil {
		return entities.OrderFilter{}, fmt.Errorf("%w: offset: %w", ErrInvalidQuery, err)
	}

	return filter, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}

func optionalUint(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseUint(s, 10, 64)
}
