package keycloak

import (
	"context"

	"sso-anythingllm-srv/internal/model"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// IVerifier verifies Keycloak issued JWTs and extracts the caller identity.
// Implementations are safe for concurrent use.
type IVerifier interface {
	Verify(ctx context.Context, rawToken string) (model.Scope, error)
}

// IProvider adds the authorization code flow on top of IVerifier.
type IProvider interface {
	IVerifier
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (model.Scope, error)
}

// New discovers the realm at cfg.IssuerURL and returns a provider for it.
func New(ctx context.Context, cfg Config) (IProvider, error) {
	if cfg.IssuerURL == "" {
		return nil, ErrIssuerRequired
	}
	p, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, err
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}

	return &providerImpl{
		verifierImpl: newVerifier(p.Verifier(oidcConfig(cfg)), cfg),
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     p.Endpoint(),
			Scopes:       scopes,
		},
	}, nil
}

// NewVerifier returns a verifier that checks signatures against keySet without discovery.
func NewVerifier(keySet oidc.KeySet, cfg Config) IVerifier {
	return newVerifier(oidc.NewVerifier(cfg.IssuerURL, keySet, oidcConfig(cfg)), cfg)
}
