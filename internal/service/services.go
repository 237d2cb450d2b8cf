package service

import (
	"context"

	"agent_connect/internal/config"
	"agent_connect/internal/metrics"
	"agent_connect/internal/repository"
	"agent_connect/pkg/logger"
)

type Services struct {
	Connection     ConnectionService
	TokenInspector TokenInspector
	RateLimit      RateLimitService
	Audit          AuditService
}

func NewServices(ctx context.Context, repos *repository.Repositories, cfg *config.Config, m *metrics.Metrics, log logger.Logger) *Services {
	services := &Services{
		TokenInspector: NewTokenInspector(cfg.LiveKit),
	}

	if repos.Issuance != nil {
		services.Audit = NewAuditService(repos.Issuance, log)
	} else {
		services.Audit = NewNopAuditService()
	}

	if repos.RateLimit != nil {
		services.RateLimit = NewRateLimitService(repos.RateLimit, cfg.RateLimit, log)
	} else {
		services.RateLimit = NewMemoryRateLimitService(ctx, cfg.RateLimit)
	}

	services.Connection = NewConnectionService(
		NewLiveKitSigner(cfg.LiveKit),
		NewServerURLResolver(cfg.LiveKit, cfg.Token.RegionalRouting),
		services.Audit,
		m,
		cfg.Token,
		log,
	)

	log.Info("Services initialized",
		"derive_bot_name", cfg.Token.DeriveBotName,
		"regional_routing", cfg.Token.RegionalRouting,
		"regions", len(cfg.LiveKit.RegionalURLs),
	)

	return services
}
