package service

import (
	"context"
	"time"

	"agent_connect/internal/domain"
	"agent_connect/internal/repository"
	"agent_connect/pkg/logger"

	"github.com/google/uuid"
)

type AuditService interface {
	RecordIssuance(ctx context.Context, entry *domain.IssuanceLog) error
}

type auditService struct {
	issuanceRepo repository.IssuanceRepository
	log          logger.Logger
}

func NewAuditService(issuanceRepo repository.IssuanceRepository, log logger.Logger) AuditService {
	return &auditService{
		issuanceRepo: issuanceRepo,
		log:          log,
	}
}

func (s *auditService) RecordIssuance(ctx context.Context, entry *domain.IssuanceLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.IssuedAt.IsZero() {
		entry.IssuedAt = time.Now()
	}
	return s.issuanceRepo.Create(ctx, entry)
}

type nopAuditService struct{}

// NewNopAuditService используется, когда база данных не настроена
func NewNopAuditService() AuditService {
	return nopAuditService{}
}

func (nopAuditService) RecordIssuance(context.Context, *domain.IssuanceLog) error {
	return nil
}
