package repository

import (
	"context"

	"agent_connect/internal/domain"
	"agent_connect/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

type IssuanceRepository interface {
	Create(ctx context.Context, entry *domain.IssuanceLog) error
	EnsureSchema(ctx context.Context) error
}

type issuanceRepository struct {
	db  *pgxpool.Pool
	log logger.Logger
}

func NewIssuanceRepository(db *pgxpool.Pool, log logger.Logger) IssuanceRepository {
	return &issuanceRepository{db: db, log: log}
}

var issuanceSchema = []string{
	`CREATE TABLE IF NOT EXISTS issuance_log (
		id                UUID PRIMARY KEY,
		issued_at         TIMESTAMPTZ NOT NULL,
		room_name         TEXT NOT NULL,
		identity          TEXT NOT NULL,
		region            TEXT NOT NULL DEFAULT '',
		server_url        TEXT NOT NULL,
		metadata_repaired BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE INDEX IF NOT EXISTS issuance_log_room_issued_at_idx ON issuance_log (room_name, issued_at)`,
}

func (r *issuanceRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range issuanceSchema {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			r.log.Error("Failed to create issuance_log schema", "error", err)
			return err
		}
	}
	return nil
}

func (r *issuanceRepository) Create(ctx context.Context, entry *domain.IssuanceLog) error {
	query := `
		INSERT INTO issuance_log (id, issued_at, room_name, identity, region, server_url, metadata_repaired)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		entry.ID, entry.IssuedAt, entry.RoomName, entry.Identity,
		entry.Region, entry.ServerURL, entry.MetadataRepaired,
	)
	if err != nil {
		r.log.Error("Failed to create issuance log", "error", err)
		return err
	}

	return nil
}
