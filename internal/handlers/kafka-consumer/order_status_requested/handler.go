package order_status_requested

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"orderdesk/internal/entities"
	"orderdesk/internal/service/lifecycle"
	orderservice "orderdesk/internal/service/order"
	"orderdesk/pkg/logger"
)

// maxConcurrentAttempts - сколько раз повторяем запрос, проигравший гонку по version.
const maxConcurrentAttempts = 3

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order.status.requested"))

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim messages channel closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение. true означает, что контекст отменен,
// сообщение не помечено и будет прочитано повторно.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event requestedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("received malformed message")
		RequestsTotal.WithLabelValues(resultMalformed).Inc()
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("partition", message.Partition),
		logger.NewField("offset", message.Offset),
	)

	order, err := h.process(ctx, event)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("context cancelled, message will be reprocessed")
			RequestsTotal.WithLabelValues(resultRequeued).Inc()
			return true

		case errors.Is(err, orderservice.ErrInvalidOrderID),
			errors.Is(err, orderservice.ErrInvalidRiderID),
			errors.Is(err, orderservice.ErrEmptyRequest),
			errors.Is(err, orderservice.ErrOrderNotFound),
			errors.Is(err, orderservice.ErrRiderNotFound),
			errors.Is(err, lifecycle.ErrInvalidTransition),
			errors.Is(err, lifecycle.ErrInvalidAssignment):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("status request rejected")
			RequestsTotal.WithLabelValues(resultRejected).Inc()

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("failed to process status request")
			RequestsTotal.WithLabelValues(resultFailed).Inc()
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("status", order.Status.String()),
		logger.NewField("rider", order.CurrentRiderID()),
		logger.NewField("version", order.Version),
	).Info("status request processed")
	RequestsTotal.WithLabelValues(resultProcessed).Inc()

	sess.MarkMessage(message, "")
	return false
}

func (h *Handler) process(ctx context.Context, event requestedEvent) (order *entities.Order, err error) {
	request := event.toRequest()

	for attempt := 1; ; attempt++ {
		order, err = h.orderService.ProcessStatusRequest(ctx, request)
		if !errors.Is(err, orderservice.ErrConcurrentUpdate) || attempt == maxConcurrentAttempts {
			return order, err
		}
	}
}
