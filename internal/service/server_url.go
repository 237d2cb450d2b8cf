package service

import (
	"fmt"
	"strings"

	"agent_connect/internal/config"
	apperrors "agent_connect/pkg/errors"
)

// ServerURLResolver выбирает адрес LiveKit сервера для клиента
type ServerURLResolver interface {
	Resolve(region string) (string, error)
}

type envServerURLResolver struct {
	defaultURL   string
	regionalURLs map[string]string
	routing      bool
}

// NewServerURLResolver - адрес берется из SERVER_URL или SERVER_URL_<REGION>.
// При выключенной региональной маршрутизации регион игнорируется.
func NewServerURLResolver(cfg config.LiveKitConfig, regionalRouting bool) ServerURLResolver {
	regional := make(map[string]string, len(cfg.RegionalURLs))
	for region, url := range cfg.RegionalURLs {
		regional[strings.ToUpper(region)] = url
	}
	return &envServerURLResolver{
		defaultURL:   cfg.ServerURL,
		regionalURLs: regional,
		routing:      regionalRouting,
	}
}

func (r *envServerURLResolver) Resolve(region string) (string, error) {
	region = strings.TrimSpace(region)
	if !r.routing || region == "" {
		if r.defaultURL == "" {
			return "", fmt.Errorf("%w: %s is not defined", apperrors.ErrConfig, config.RegionalURLKey(""))
		}
		return r.defaultURL, nil
	}

	url, ok := r.regionalURLs[strings.ToUpper(region)]
	if !ok || url == "" {
		return "", fmt.Errorf("%w: %s is not defined", apperrors.ErrConfig, config.RegionalURLKey(region))
	}
	return url, nil
}
