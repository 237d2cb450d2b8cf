package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"agent_connect/internal/config"
	"agent_connect/internal/handler"
	"agent_connect/internal/metrics"
	"agent_connect/internal/middleware"
	"agent_connect/internal/repository"
	"agent_connect/internal/service"
	"agent_connect/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Log.Level, cfg.IsProduction())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// PostgreSQL нужен только для журнала выдачи
	var dbPool *pgxpool.Pool
	if cfg.Database.Enabled() {
		dbPool, err = connectDatabase(ctx, cfg.Database)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", "error", err)
		}
		defer dbPool.Close()
		appLogger.Info("Database connection established")
	}

	// Redis нужен только для общего rate limit между репликами
	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			appLogger.Fatal("Failed to connect to Redis", "error", err)
		}
		appLogger.Info("Redis connection established")
	}

	repos := repository.NewRepositories(dbPool, rdb, appLogger)
	if repos.Issuance != nil {
		if err := repos.Issuance.EnsureSchema(ctx); err != nil {
			appLogger.Fatal("Failed to prepare issuance log schema", "error", err)
		}
	}

	appMetrics := metrics.New()
	services := service.NewServices(ctx, repos, cfg, appMetrics, appLogger)

	rateLimitMiddleware := middleware.NewRateLimitMiddleware(services.RateLimit, appMetrics, appLogger)
	handlers := handler.NewHandlers(services, cfg, appLogger)
	router := handler.NewRouter(handlers, rateLimitMiddleware, appMetrics, cfg, appLogger)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Info("Starting server", "addr", srv.Addr, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
		return
	}

	appLogger.Info("Server exited")
}

func connectDatabase(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_DSN: %w", err)
	}
	if cfg.MaxConnections > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConnections)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}
