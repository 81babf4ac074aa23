//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"orderdesk/internal/gateway/kafka/order_events"
	"orderdesk/internal/gateway/redis/stats"
	"orderdesk/internal/handlers/rest/healthcheck_head"
	"orderdesk/internal/handlers/tasks/priority_sweep"
	"orderdesk/internal/pkg/config"
	orderRepo "orderdesk/internal/repository/order"
	riderRepo "orderdesk/internal/repository/rider"
	orderService "orderdesk/internal/service/order"
	riderService "orderdesk/internal/service/rider"

	"orderdesk/pkg/logger"
	"orderdesk/pkg/querier"
	"orderdesk/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	redisClient *redis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		providePrioritySweepInterval,

		provideOrderRepository,
		provideRiderRepository,

		provideTransitionValidator,
		provideEventPublisher,
		provideStatsCache,
		provideOrderService,
		provideRiderService,
		provideVerifier,

		providePrioritySweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceRider), new(*riderService.Rider)),
		wire.Bind(new(healthcheck_head.Pinger), new(*querier.Querier)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.EventPublisher), new(*order_events.Publisher)),
		wire.Bind(new(orderService.StatsCache), new(*stats.Cache)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(riderService.Repository), new(*riderRepo.Repository)),

		wire.Bind(new(priority_sweep.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-requested)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	redisClient *redis.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,

		provideTransitionValidator,
		provideEventPublisher,
		provideStatsCache,
		provideOrderService,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.EventPublisher), new(*order_events.Publisher)),
		wire.Bind(new(orderService.StatsCache), new(*stats.Cache)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
