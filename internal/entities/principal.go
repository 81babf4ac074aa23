package entities

type Role string

const (
	RoleAdmin           Role = "admin"
	RoleRestaurantOwner Role = "restaurant_owner"
)

func (r Role) String() string {
	return string(r)
}

// Principal - пользователь консоли из проверенного токена.
type Principal struct {
	UserID       string
	Role         Role
	RestaurantID string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanAccessRestaurant: админ видит все, владелец только свой ресторан.
func (p Principal) CanAccessRestaurant(restaurantID string) bool {
	switch p.Role {
	case RoleAdmin:
		return true
	case RoleRestaurantOwner:
		return p.RestaurantID != "" && p.RestaurantID == restaurantID
	default:
		return false
	}
}

// ScopeFilter ограничивает фильтр рестораном владельца. false, если владелец
// запросил чужой ресторан.
func (p Principal) ScopeFilter(filter OrderFilter) (OrderFilter, bool) {
	if p.IsAdmin() {
		return filter, true
	}
	if p.Role != RoleRestaurantOwner || p.RestaurantID == "" {
		return OrderFilter{}, false
	}
	if filter.RestaurantID != nil && *filter.RestaurantID != p.RestaurantID {
		return OrderFilter{}, false
	}

	restaurantID := p.RestaurantID
	filter.RestaurantID = &restaurantID
	return filter, true
}
