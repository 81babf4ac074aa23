package app

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"orderdesk/internal/gateway/kafka/order_events"
	"orderdesk/internal/gateway/redis/stats"
	"orderdesk/internal/handlers/tasks/priority_sweep"
	"orderdesk/internal/pkg/config"
	"orderdesk/internal/pkg/middlewares/auth"
	orderRepo "orderdesk/internal/repository/order"
	riderRepo "orderdesk/internal/repository/rider"
	"orderdesk/internal/service/lifecycle"
	orderService "orderdesk/internal/service/order"
	riderService "orderdesk/internal/service/rider"
	"orderdesk/pkg/background"
	"orderdesk/pkg/logger"
	"orderdesk/pkg/querier"
	"orderdesk/pkg/tx"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideRiderRepository(querier *querier.Querier) *riderRepo.Repository {
	return riderRepo.New(querier)
}

func provideTransitionValidator(cfg *config.Config) (*lifecycle.Validator, error) {
	policy, err := lifecycle.ParseTransitionPolicy(cfg.Lifecycle.TransitionPolicy)
	if err != nil {
		return nil, fmt.Errorf("transition policy: %w", err)
	}
	return lifecycle.NewValidator(policy), nil
}

func provideEventPublisher(producer sarama.SyncProducer, cfg *config.Config) *order_events.Publisher {
	return order_events.New(producer, cfg.Kafka.ProducerTopic)
}

func provideStatsCache(client *redis.Client, cfg *config.Config) *stats.Cache {
	return stats.New(client, cfg.Redis.StatsCacheTTL)
}

func provideOrderService(
	repository orderService.Repository,
	publisher orderService.EventPublisher,
	statsCache orderService.StatsCache,
	txManager orderService.TxManager,
	validator *lifecycle.Validator,
	log logger.Logger,
) *orderService.Service {
	return orderService.New(repository, publisher, statsCache, txManager, validator, log)
}

func provideRiderService(repository riderService.Repository) *riderService.Rider {
	return riderService.New(repository)
}

func provideVerifier(cfg *config.Config) *auth.Verifier {
	return auth.NewVerifier(cfg.Auth.JWTSecret)
}

func providePrioritySweepInterval(cfg *config.Config) PrioritySweepInterval {
	return PrioritySweepInterval(cfg.Tasks.PrioritySweepInterval)
}

func providePrioritySweepTask(
	log logger.Logger,
	service priority_sweep.Service,
	interval PrioritySweepInterval,
) *priority_sweep.PrioritySweep {
	return priority_sweep.NewPrioritySweep(log, service, time.Duration(interval))
}

func provideTaskList(
	prioritySweepTask *priority_sweep.PrioritySweep,
) []background.Task {
	return []background.Task{
		prioritySweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
