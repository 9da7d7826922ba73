package usecase

import (
	"net/url"
	"strings"

	"sso-anythingllm-srv/internal/apikey"
	"sso-anythingllm-srv/internal/sso"
	"sso-anythingllm-srv/internal/user"
	"sso-anythingllm-srv/pkg/anythingllm"
	"sso-anythingllm-srv/pkg/keycloak"
	"sso-anythingllm-srv/pkg/log"
)

type implUseCase struct {
	users    user.UseCase
	keys     apikey.UseCase
	client   anythingllm.Admin
	provider keycloak.IProvider
	public   *url.URL
	l        log.Logger
}

// New - Factory function. provider may be nil when the browser flow is disabled.
func New(
	users user.UseCase,
	keys apikey.UseCase,
	client anythingllm.Admin,
	provider keycloak.IProvider,
	cfg sso.Config,
	l log.Logger,
) (sso.UseCase, error) {
	public, err := url.Parse(strings.TrimRight(cfg.PublicURL, "/"))
	if err != nil || public.Scheme == "" || public.Host == "" {
		return nil, sso.ErrInvalidPublicURL
	}
	return &implUseCase{
		users:    users,
		keys:     keys,
		client:   client,
		provider: provider,
		public:   public,
		l:        l,
	}, nil
}
