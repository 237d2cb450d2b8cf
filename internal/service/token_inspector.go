package service

import (
	"context"
	"errors"
	"fmt"

	"agent_connect/internal/agent"
	"agent_connect/internal/config"
	"agent_connect/internal/domain"
	apperrors "agent_connect/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/livekit/protocol/auth"
)

// TokenInspector проверяет выданный токен и раскрывает его содержимое
type TokenInspector interface {
	Inspect(ctx context.Context, token string) (*domain.TokenInfo, error)
}

// livekitClaims повторяет JSON, который пишет auth.AccessToken.ToJWT
type livekitClaims struct {
	Name     string           `json:"name,omitempty"`
	Video    *auth.VideoGrant `json:"video,omitempty"`
	Metadata string           `json:"metadata,omitempty"`
	jwt.RegisteredClaims
}

type tokenInspector struct {
	apiKey    string
	apiSecret []byte
	parser    *jwt.Parser
}

func NewTokenInspector(cfg config.LiveKitConfig) TokenInspector {
	return &tokenInspector{
		apiKey:    cfg.APIKey,
		apiSecret: []byte(cfg.APISecret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(cfg.APIKey),
			jwt.WithExpirationRequired(),
		),
	}
}

func (i *tokenInspector) Inspect(ctx context.Context, token string) (*domain.TokenInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, fmt.Errorf("%w: token is empty", apperrors.ErrInvalidToken)
	}

	claims := &livekitClaims{}
	_, err := i.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return i.apiSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	info := &domain.TokenInfo{
		Identity: claims.Subject,
		Name:     claims.Name,
		Metadata: claims.Metadata,
		BotName:  agent.BotNameFromMetadata(claims.Metadata),
	}
	info.Greeting = agent.Greeting(info.BotName)
	if claims.Video != nil {
		info.Room = claims.Video.Room
		info.Grants = domain.Grants{
			RoomJoin:       claims.Video.RoomJoin,
			CanPublish:     boolValue(claims.Video.CanPublish),
			CanPublishData: boolValue(claims.Video.CanPublishData),
			CanSubscribe:   boolValue(claims.Video.CanSubscribe),
		}
	}
	if claims.NotBefore != nil {
		info.NotBefore = claims.NotBefore.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}

	return info, nil
}

func boolValue(p *bool) bool {
	return p != nil && *p
}
