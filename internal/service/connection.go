package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agent_connect/internal/config"
	"agent_connect/internal/domain"
	"agent_connect/internal/metrics"
	apperrors "agent_connect/pkg/errors"
	"agent_connect/pkg/logger"
)

type ConnectionService interface {
	IssueConnection(ctx context.Context, req domain.ConnectionRequest) (*domain.ConnectionDetails, error)
}

type connectionService struct {
	signer   Signer
	resolver ServerURLResolver
	audit    AuditService
	metrics  *metrics.Metrics
	cfg      config.TokenConfig
	log      logger.Logger
}

func NewConnectionService(
	signer Signer,
	resolver ServerURLResolver,
	audit AuditService,
	m *metrics.Metrics,
	cfg config.TokenConfig,
	log logger.Logger,
) ConnectionService {
	return &connectionService{
		signer:   signer,
		resolver: resolver,
		audit:    audit,
		metrics:  m,
		cfg:      cfg,
		log:      log,
	}
}

func (s *connectionService) IssueConnection(ctx context.Context, req domain.ConnectionRequest) (*domain.ConnectionDetails, error) {
	if err := validateConnectionRequest(req); err != nil {
		s.metrics.ObserveConnection(metrics.ResultBadRequest)
		return nil, err
	}

	metadata, repaired := NormalizeMetadata(req.Metadata, req.ParticipantName, s.cfg.DeriveBotName)
	if repaired {
		s.metrics.MetadataRepaired.Inc()
		s.log.Debug("Participant metadata replaced with default",
			"room", req.RoomName,
			"participant", req.ParticipantName,
			"received", req.Metadata,
			"metadata", metadata,
		)
	} else {
		s.log.Debug("Participant metadata accepted", "room", req.RoomName, "metadata", metadata)
	}

	identity := ParticipantIdentity(req.ParticipantName)

	started := time.Now()
	token, err := s.signer.Sign(ctx, SigningRequest{
		Room:        req.RoomName,
		Identity:    identity,
		DisplayName: req.ParticipantName,
		Metadata:    metadata,
		TTL:         config.TokenTTL,
		Grants:      domain.ParticipantGrants(),
	})
	s.metrics.ObserveSigning(started)
	if err != nil {
		s.metrics.ObserveConnection(metrics.ResultSignError)
		s.log.Error("Failed to generate LiveKit token", "error", err, "room", req.RoomName, "identity", identity)
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInternalServer, apperrors.ErrSigningFailed)
	}

	serverURL, err := s.resolver.Resolve(req.Region)
	if err != nil {
		s.metrics.ObserveConnection(metrics.ResultConfigError)
		s.log.Error("Failed to resolve server URL", "error", err, "region", req.Region)
		return nil, err
	}

	s.metrics.ObserveConnection(metrics.ResultIssued)
	s.log.Info("LiveKit token generated",
		"room", req.RoomName,
		"identity", identity,
		"region", req.Region,
		"url", serverURL,
	)

	s.recordIssuance(ctx, &domain.IssuanceLog{
		IssuedAt:         started,
		RoomName:         req.RoomName,
		Identity:         identity,
		Region:           req.Region,
		ServerURL:        serverURL,
		MetadataRepaired: repaired,
	})

	return &domain.ConnectionDetails{
		ServerURL:        serverURL,
		RoomName:         req.RoomName,
		ParticipantToken: token,
		ParticipantName:  req.ParticipantName,
	}, nil
}

// recordIssuance пишет журнал в фоне, ответ клиенту от него не зависит
func (s *connectionService) recordIssuance(ctx context.Context, entry *domain.IssuanceLog) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := s.audit.RecordIssuance(ctx, entry); err != nil {
			s.log.Warn("Failed to record issuance", "error", err, "identity", entry.Identity)
		}
	}()
}

func validateConnectionRequest(req domain.ConnectionRequest) error {
	if strings.TrimSpace(req.RoomName) == "" {
		return fmt.Errorf("%w: %w", apperrors.ErrBadRequest, apperrors.ErrMissingRoomName)
	}
	if strings.TrimSpace(req.ParticipantName) == "" {
		return fmt.Errorf("%w: %w", apperrors.ErrBadRequest, apperrors.ErrMissingParticipant)
	}
	return nil
}
