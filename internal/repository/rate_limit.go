package repository

import (
	"context"
	"time"

	"agent_connect/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "ratelimit:"

type RateLimitRepository interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}

type rateLimitRepository struct {
	redis *redis.Client
	log   logger.Logger
}

func NewRateLimitRepository(redis *redis.Client, log logger.Logger) RateLimitRepository {
	return &rateLimitRepository{redis: redis, log: log}
}

// Increment увеличивает счетчик и выставляет TTL окна в одной транзакции,
// чтобы ключ не остался без срока жизни. Возвращает значение после INCR,
// по нему и принимается решение. ExpireNX требует Redis 7+.
func (r *rateLimitRepository) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	var incr *redis.IntCmd
	_, err := r.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, rateLimitKeyPrefix+key)
		pipe.ExpireNX(ctx, rateLimitKeyPrefix+key, window)
		return nil
	})
	if err != nil {
		r.log.Error("Failed to increment rate limit", "error", err)
		return 0, err
	}

	return incr.Val(), nil
}
