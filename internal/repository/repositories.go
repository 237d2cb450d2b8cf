package repository

import (
	"agent_connect/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Repositories - оба хранилища необязательны, nil означает "не настроено"
type Repositories struct {
	Issuance  IssuanceRepository
	RateLimit RateLimitRepository
}

func NewRepositories(db *pgxpool.Pool, rdb *redis.Client, log logger.Logger) *Repositories {
	repos := &Repositories{}

	if db != nil {
		repos.Issuance = NewIssuanceRepository(db, log)
		log.Info("Issuance repository initialized")
	} else {
		log.Info("DATABASE_DSN is not set, issuance log disabled")
	}

	if rdb != nil {
		repos.RateLimit = NewRateLimitRepository(rdb, log)
		log.Info("Redis rate limit repository initialized")
	} else {
		log.Info("REDIS_ADDR is not set, using in-memory rate limiter")
	}

	return repos
}
