package order_events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"orderdesk/internal/entities"
	retrierconfig "orderdesk/pkg/retrier"
	"orderdesk/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Publisher struct {
	producer producer
	topic    string
	retrier  retrierconfig.Retrier
}

func New(producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		retrier: backoff_adapter.New(retrierconfig.Config{
			InitialInterval: initialInterval,
			MaxInterval:     maxInterval,
			MaxElapsedTime:  maxElapsedTime,
			Randomization:   randomization,
			Multiplier:      multiplier,
			ShouldRetry:     isRetryable,
		}),
	}
}

// PublishStatusChanged пишет событие с ключом заказа, события одного заказа попадают в одну партицию.
func (p *Publisher) PublishStatusChanged(ctx context.Context, event entities.OrderStatusChangedEvent) error {
	payload, err := json.Marshal(fromDomain(event))
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(headerEventType), Value: []byte(eventTypeStatusChanged)},
		},
		Timestamp: event.OccurredAt,
	}

	err = p.executeWithMetrics(ctx, func(context.Context) error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return fmt.Errorf("send order event %s: %w", event.EventID, err)
	}

	return nil
}

func (p *Publisher) executeWithMetrics(ctx context.Context, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := p.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	result := "ok"
	if err != nil {
		result = "error"
	}
	PublisherDuration.WithLabelValues(p.topic, result).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		PublisherRetriesTotal.WithLabelValues(p.topic, result).Inc()
	}

	return err
}

var retryableErrors = []error{
	sarama.ErrOutOfBrokers,
	sarama.ErrNotConnected,
	sarama.ErrLeaderNotAvailable,
	sarama.ErrNotLeaderForPartition,
	sarama.ErrRequestTimedOut,
	sarama.ErrNotEnoughReplicas,
	sarama.ErrNotEnoughReplicasAfterAppend,
}

func isRetryable(err error) bool {
	for _, target := range retryableErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
