package service

import (
	"context"
	"sync"
	"time"

	"agent_connect/internal/config"
	"agent_connect/internal/repository"
	"agent_connect/pkg/logger"

	"golang.org/x/time/rate"
)

// RateLimitService решает, пропускать ли запрос с данным ключом (обычно IP)
type RateLimitService interface {
	Allow(ctx context.Context, key string) (allowed bool, remaining int, err error)
	Limit() int
}

type redisRateLimitService struct {
	rateLimitRepo repository.RateLimitRepository
	limit         int
	window        time.Duration
	log           logger.Logger
}

// NewRateLimitService - фиксированное окно в Redis, общее для всех реплик
func NewRateLimitService(rateLimitRepo repository.RateLimitRepository, cfg config.RateLimitConfig, log logger.Logger) RateLimitService {
	return &redisRateLimitService{
		rateLimitRepo: rateLimitRepo,
		limit:         cfg.Requests,
		window:        cfg.Window,
		log:           log,
	}
}

func (s *redisRateLimitService) Limit() int {
	return s.limit
}

// Allow сначала увеличивает счетчик, поэтому параллельные запросы
// не могут вместе проскочить лимит окна
func (s *redisRateLimitService) Allow(ctx context.Context, key string) (bool, int, error) {
	count, err := s.rateLimitRepo.Increment(ctx, key, s.window)
	if err != nil {
		s.log.Warn("Rate limit increment failed", "error", err, "key", key)
		return false, 0, err
	}

	if count > int64(s.limit) {
		return false, 0, nil
	}
	return true, s.limit - int(count), nil
}

type memoryRateLimitService struct {
	mu       sync.Mutex
	limiters map[string]*visitor
	rate     rate.Limit
	burst    int
	idleTTL  time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewMemoryRateLimitService - token bucket на процесс, используется без Redis.
// Неактивные ключи удаляются фоновой горутиной до отмены ctx.
func NewMemoryRateLimitService(ctx context.Context, cfg config.RateLimitConfig) RateLimitService {
	s := &memoryRateLimitService{
		limiters: make(map[string]*visitor),
		rate:     rate.Every(cfg.Window / time.Duration(cfg.Requests)),
		burst:    cfg.Requests,
		idleTTL:  cfg.Window,
	}
	go s.cleanup(ctx, cfg.Window)
	return s
}

func (s *memoryRateLimitService) Limit() int {
	return s.burst
}

func (s *memoryRateLimitService) Allow(_ context.Context, key string) (bool, int, error) {
	now := time.Now()

	s.mu.Lock()
	v, ok := s.limiters[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(s.rate, s.burst)}
		s.limiters[key] = v
	}
	v.lastSeen = now
	s.mu.Unlock()

	if !v.limiter.AllowN(now, 1) {
		return false, 0, nil
	}
	return true, int(v.limiter.TokensAt(now)), nil
}

func (s *memoryRateLimitService) cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.sweep(now)
		}
	}
}

func (s *memoryRateLimitService) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, v := range s.limiters {
		if now.Sub(v.lastSeen) > s.idleTTL {
			delete(s.limiters, key)
		}
	}
}
