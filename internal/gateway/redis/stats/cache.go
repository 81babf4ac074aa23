package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"orderdesk/internal/entities"
)

const (
	keyPrefix     = "orderdesk:stats:"
	generationKey = keyPrefix + "generation"
)

// Cache хранит агрегаты под ключом с поколением. Invalidate увеличивает поколение,
// старые ключи перестают читаться и истекают по TTL.
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func New(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

// Get возвращает агрегаты и поколение, в котором их искали. Set нужно звать
// с этим же поколением: если между ними прошел Invalidate, запись уйдет
// в устаревшее поколение и читаться не будет.
func (c *Cache) Get(ctx context.Context, key string) (*entities.OrderStats, int64, error) {
	generation, err := c.generation(ctx)
	if err != nil {
		return nil, 0, err
	}

	data, err := c.client.Get(ctx, fullKey(generation, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, generation, nil
		}
		return nil, generation, fmt.Errorf("get stats: %w", err)
	}

	var dto statsDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, generation, fmt.Errorf("decode stats: %w", err)
	}

	return dto.toDomain(), generation, nil
}

func (c *Cache) Set(ctx context.Context, generation int64, key string, stats entities.OrderStats) error {
	payload, err := json.Marshal(fromDomain(stats))
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}

	if err := c.client.Set(ctx, fullKey(generation, key), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("set stats: %w", err)
	}
	return nil
}

func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("bump stats generation: %w", err)
	}
	return nil
}

func (c *Cache) generation(ctx context.Context) (int64, error) {
	generation, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("get stats generation: %w", err)
	}
	return generation, nil
}

func fullKey(generation int64, key string) string {
	return fmt.Sprintf("%s%d:%s", keyPrefix, generation, key)
}
