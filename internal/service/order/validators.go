package order

import (
	"fmt"

	"github.com/google/uuid"
	"orderdesk/internal/entities"
)

func isValidID(id string) bool {
	return uuid.Validate(id) == nil
}

var sortableFields = map[entities.OrderSortField]struct{}{
	entities.SortByCreatedAt:   {},
	entities.SortByUpdatedAt:   {},
	entities.SortByTotalAmount: {},
	entities.SortByStatus:      {},
}

// normalizeFilter проверяет фильтр и проставляет значения по умолчанию.
func normalizeFilter(filter entities.OrderFilter, paginate bool) (entities.OrderFilter, error) {
	for _, id := range []*string{filter.RestaurantID, filter.RiderID} {
		if id != nil && !isValidID(*id) {
			return entities.OrderFilter{}, fmt.Errorf("%w: malformed id %q", ErrInvalidFilter, *id)
		}
	}

	for _, status := range filter.Statuses {
		if !status.IsKnown() {
			return entities.OrderFilter{}, fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, status)
		}
	}

	if filter.CreatedFrom != nil && filter.CreatedTo != nil && !filter.CreatedFrom.Before(*filter.CreatedTo) {
		return entities.OrderFilter{}, fmt.Errorf("%w: created_from must be before created_to", ErrInvalidFilter)
	}

	if filter.SortBy == "" {
		filter.SortBy = entities.SortByCreatedAt
	}
	if _, ok := sortableFields[filter.SortBy]; !ok {
		return entities.OrderFilter{}, fmt.Errorf("%w: unsupported sort field %q", ErrInvalidFilter, filter.SortBy)
	}

	switch filter.SortDir {
	case "":
		filter.SortDir = entities.SortDesc
	case entities.SortAsc, entities.SortDesc:
	default:
		return entities.OrderFilter{}, fmt.Errorf("%w: unsupported sort direction %q", ErrInvalidFilter, filter.SortDir)
	}

	if filter.After != nil {
		if filter.SortBy != entities.SortByCreatedAt {
			return entities.OrderFilter{}, fmt.Errorf("%w: cursor requires sort by %s", ErrInvalidFilter, entities.SortByCreatedAt)
		}
		if !isValidID(filter.After.ID) {
			return entities.OrderFilter{}, fmt.Errorf("%w: malformed cursor id %q", ErrInvalidFilter, filter.After.ID)
		}
	}

	if !paginate {
		filter.Limit = 0
		filter.Offset = 0
		filter.After = nil
		return filter, nil
	}

	if filter.Limit == 0 {
		filter.Limit = entities.DefaultOrderListLimit
	}
	if filter.Limit > entities.MaxOrderListLimit {
		return entities.OrderFilter{}, fmt.Errorf("%w: limit exceeds %d", ErrInvalidFilter, entities.MaxOrderListLimit)
	}

	return filter, nil
}
