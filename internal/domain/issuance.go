package domain

import (
	"time"

	"github.com/google/uuid"
)

// IssuanceLog - запись о выданном токене (пишется только при наличии БД)
type IssuanceLog struct {
	ID               uuid.UUID `json:"id"`
	IssuedAt         time.Time `json:"issued_at"`
	RoomName         string    `json:"room_name"`
	Identity         string    `json:"identity"`
	Region           string    `json:"region,omitempty"`
	ServerURL        string    `json:"server_url"`
	MetadataRepaired bool      `json:"metadata_repaired"`
}
