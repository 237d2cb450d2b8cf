package service

import (
	"context"
	"time"

	"agent_connect/internal/config"
	"agent_connect/internal/domain"

	"github.com/livekit/protocol/auth"
)

// SigningRequest - все, что нужно для подписи токена доступа
type SigningRequest struct {
	Room        string
	Identity    string
	DisplayName string
	Metadata    string
	TTL         time.Duration
	Grants      domain.Grants
}

// Signer выпускает подписанный токен доступа к комнате
type Signer interface {
	Sign(ctx context.Context, req SigningRequest) (string, error)
}

type livekitSigner struct {
	apiKey    string
	apiSecret string
}

func NewLiveKitSigner(cfg config.LiveKitConfig) Signer {
	return &livekitSigner{
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
	}
}

func (s *livekitSigner) Sign(ctx context.Context, req SigningRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	canPublish := req.Grants.CanPublish
	canPublishData := req.Grants.CanPublishData
	canSubscribe := req.Grants.CanSubscribe
	grant := &auth.VideoGrant{
		RoomJoin:       req.Grants.RoomJoin,
		Room:           req.Room,
		CanPublish:     &canPublish,
		CanPublishData: &canPublishData,
		CanSubscribe:   &canSubscribe,
	}

	at := auth.NewAccessToken(s.apiKey, s.apiSecret)
	at.AddGrant(grant).
		SetIdentity(req.Identity).
		SetName(req.DisplayName).
		SetMetadata(req.Metadata).
		SetValidFor(req.TTL)

	return at.ToJWT()
}
