package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"orderdesk/internal/entities"
	"orderdesk/internal/service/lifecycle"
	"orderdesk/pkg/logger"
)

type Service struct {
	repository Repository
	publisher  EventPublisher
	statsCache StatsCache
	txManager  TxManager
	validator  *lifecycle.Validator
	log        logger.Logger
}

func New(
	repository Repository,
	publisher EventPublisher,
	statsCache StatsCache,
	txManager TxManager,
	validator *lifecycle.Validator,
	log logger.Logger,
) *Service {
	return &Service{
		repository: repository,
		publisher:  publisher,
		statsCache: statsCache,
		txManager:  txManager,
		validator:  validator,
		log:        log,
	}
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	filter, err := normalizeFilter(filter, true)
	if err != nil {
		return nil, err
	}

	orders, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

// GetStats считает агрегаты по всем заказам фильтра, пагинация игнорируется.
// Недоступный кэш не ломает запрос.
func (s *Service) GetStats(ctx context.Context, filter entities.OrderFilter) (*entities.OrderStats, error) {
	filter, err := normalizeFilter(filter, false)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	key := statsKey(filter)

	cached, generation, cacheErr := s.statsCache.Get(ctx, key)
	if cacheErr != nil {
		s.log.Warn("stats cache read failed", logger.NewField("error", cacheErr))
	}
	if cached != nil {
		refreshed := lifecycle.RefreshHighPriority(*cached, now)
		return &refreshed, nil
	}

	orders, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders for stats: %w", err)
	}

	stats := lifecycle.Summarize(orders, now)

	// без поколения писать нельзя: можно перезаписать данные после Invalidate
	if cacheErr == nil {
		if err := s.statsCache.Set(ctx, generation, key, stats); err != nil {
			s.log.Warn("stats cache write failed", logger.NewField("error", err))
		}
	}

	return &stats, nil
}

func (s *Service) ChangeStatus(ctx context.Context, orderID string, target entities.OrderStatus) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.mutate(ctx, orderID, func(order entities.Order, now time.Time) (entities.Order, error) {
		return s.validator.ValidateTransition(order, target, now)
	})
	if err != nil {
		return nil, fmt.Errorf("change order status: %w", err)
	}

	return order, nil
}

// AssignRider с пустым riderID снимает курьера с заказа.
func (s *Service) AssignRider(ctx context.Context, orderID, riderID string) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if riderID != "" && !isValidID(riderID) {
		return nil, ErrInvalidRiderID
	}

	order, err := s.mutate(ctx, orderID, func(order entities.Order, _ time.Time) (entities.Order, error) {
		return lifecycle.ResolveAssignment(order, riderID)
	})
	if err != nil {
		return nil, fmt.Errorf("assign rider: %w", err)
	}

	return order, nil
}

// ProcessStatusRequest применяет запрос из очереди: сначала курьера, потом статус,
// одной записью в хранилище.
func (s *Service) ProcessStatusRequest(ctx context.Context, request entities.OrderStatusRequest) (*entities.Order, error) {
	if !isValidID(request.OrderID) {
		return nil, ErrInvalidOrderID
	}
	if request.Status == nil && request.RiderID == nil {
		return nil, ErrEmptyRequest
	}
	if request.RiderID != nil && *request.RiderID != "" && !isValidID(*request.RiderID) {
		return nil, ErrInvalidRiderID
	}

	order, err := s.mutate(ctx, request.OrderID, func(order entities.Order, now time.Time) (entities.Order, error) {
		var err error
		if request.RiderID != nil {
			order, err = lifecycle.ResolveAssignment(order, *request.RiderID)
			if err != nil {
				return entities.Order{}, err
			}
		}
		if request.Status != nil {
			order, err = s.validator.ValidateTransition(order, *request.Status, now)
			if err != nil {
				return entities.Order{}, err
			}
		}
		return order, nil
	})
	if err != nil {
		return nil, fmt.Errorf("process status request: %w", err)
	}

	return order, nil
}

type applyFn func(order entities.Order, now time.Time) (entities.Order, error)

// mutate: чтение, правило жизненного цикла, запись с проверкой версии и событие
// в одной транзакции. Ошибка публикации откатывает запись.
func (s *Service) mutate(ctx context.Context, orderID string, apply applyFn) (*entities.Order, error) {
	var (
		result  *entities.Order
		changed bool
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		now := time.Now().UTC()
		updated, err := apply(*current, now)
		if err != nil {
			return err
		}

		modify := diff(*current, updated)
		if modify.IsEmpty() {
			result = current
			return nil
		}

		saved, err := s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		event := entities.OrderStatusChangedEvent{
			EventID:        uuid.NewString(),
			OrderID:        saved.ID,
			RestaurantID:   saved.RestaurantID,
			PreviousStatus: current.Status,
			Status:         saved.Status,
			RiderID:        saved.RiderID,
			OccurredAt:     now,
		}
		if err := s.publisher.PublishStatusChanged(ctx, event); err != nil {
			return fmt.Errorf("publish status changed: %w", err)
		}

		result = saved
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.invalidateStats(ctx, orderID)
	}

	return result, nil
}

func (s *Service) invalidateStats(ctx context.Context, orderID string) {
	if err := s.statsCache.Invalidate(ctx); err != nil && !errors.Is(err, context.Canceled) {
		s.log.Warn("stats cache invalidation failed",
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		)
	}
}

func diff(current, updated entities.Order) entities.OrderModify {
	modify := entities.OrderModify{
		ID:              current.ID,
		ExpectedVersion: current.Version,
	}

	if updated.Status != current.Status {
		status := updated.Status
		modify.Status = &status
	}

	if updated.CurrentRiderID() != current.CurrentRiderID() {
		if updated.HasRider() {
			riderID := updated.CurrentRiderID()
			modify.RiderID = &riderID
		} else {
			modify.ClearRider = true
		}
	}

	if current.ActualDeliveryTime == nil && updated.ActualDeliveryTime != nil {
		actual := *updated.ActualDeliveryTime
		modify.ActualDeliveryTime = &actual
	}

	return modify
}
