// Package lifecycle содержит правила жизненного цикла заказа: переходы статусов,
// назначение курьера, приоритет ожидания и агрегаты для дашборда.
// Функции чистые: без I/O, логирования и общего состояния.
package lifecycle

import (
	"fmt"
	"time"

	"orderdesk/internal/entities"
)

type TransitionPolicy string

const (
	// PolicyAdjacent разрешает только следующий шаг вперед и отмену.
	PolicyAdjacent TransitionPolicy = "adjacent"
	// PolicyPermissive разрешает любой известный статус, пока заказ не завершен.
	PolicyPermissive TransitionPolicy = "permissive"
)

func ParseTransitionPolicy(s string) (TransitionPolicy, error) {
	switch TransitionPolicy(s) {
	case PolicyAdjacent, "":
		return PolicyAdjacent, nil
	case PolicyPermissive:
		return PolicyPermissive, nil
	default:
		return "", fmt.Errorf("unknown transition policy %q", s)
	}
}

var forwardFlow = []entities.OrderStatus{
	entities.OrderPending,
	entities.OrderConfirmed,
	entities.OrderPreparing,
	entities.OrderReadyForPickup,
	entities.OrderOutForDelivery,
	entities.OrderDelivered,
}

func nextStatus(current entities.OrderStatus) (entities.OrderStatus, bool) {
	for i := 0; i < len(forwardFlow)-1; i++ {
		if forwardFlow[i] == current {
			return forwardFlow[i+1], true
		}
	}
	return "", false
}

// Validator проверяет переходы по выбранной политике.
type Validator struct {
	policy TransitionPolicy
}

func NewValidator(policy TransitionPolicy) *Validator {
	if policy == "" {
		policy = PolicyAdjacent
	}
	return &Validator{policy: policy}
}

func (v *Validator) Policy() TransitionPolicy {
	return v.policy
}

// ValidateTransition возвращает копию заказа в статусе target.
// Повтор текущего статуса не считается ошибкой и возвращает заказ без изменений.
func ValidateTransition(order entities.Order, target entities.OrderStatus, now time.Time) (entities.Order, error) {
	return NewValidator(PolicyAdjacent).ValidateTransition(order, target, now)
}

func (v *Validator) ValidateTransition(
	order entities.Order,
	target entities.OrderStatus,
	now time.Time,
) (entities.Order, error) {
	current := order.Status

	if current == target && current.IsKnown() {
		return order, nil
	}

	if !target.IsKnown() {
		return entities.Order{}, fmt.Errorf("%w: unknown target status %q", ErrInvalidTransition, target)
	}
	if !current.IsKnown() {
		return entities.Order{}, fmt.Errorf("%w: order %s has unknown status %q", ErrInvalidTransition, order.ID, current)
	}
	if current.IsTerminal() {
		return entities.Order{}, fmt.Errorf("%w: order %s is already %s", ErrInvalidTransition, order.ID, current)
	}
	if !v.allowed(current, target) {
		return entities.Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, target)
	}

	updated := order
	updated.Status = target

	if target == entities.OrderDelivered && updated.ActualDeliveryTime == nil {
		delivered := now
		if delivered.Before(order.CreatedAt) {
			delivered = order.CreatedAt
		}
		updated.ActualDeliveryTime = &delivered
	}

	return updated, nil
}

func (v *Validator) allowed(current, target entities.OrderStatus) bool {
	if target == entities.OrderCancelled {
		return true
	}

	switch v.policy {
	case PolicyPermissive:
		return true
	default:
		next, ok := nextStatus(current)
		return ok && next == target
	}
}

// AllowedTargets - статусы, в которые можно перевести заказ из current.
func (v *Validator) AllowedTargets(current entities.OrderStatus) []entities.OrderStatus {
	if !current.IsKnown() || current.IsTerminal() {
		return nil
	}

	var targets []entities.OrderStatus
	for _, status := range append(forwardFlow[:len(forwardFlow):len(forwardFlow)], entities.OrderCancelled) {
		if status != current && v.allowed(current, status) {
			targets = append(targets, status)
		}
	}
	return targets
}
