package keycloak

import (
	"context"
	"fmt"

	"sso-anythingllm-srv/internal/model"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

func oidcConfig(cfg Config) *oidc.Config {
	return &oidc.Config{
		ClientID:          cfg.ClientID,
		SkipClientIDCheck: cfg.SkipClientIDCheck || cfg.ClientID == "",
	}
}

func newVerifier(v *oidc.IDTokenVerifier, cfg Config) *verifierImpl {
	names := claimNames{id: cfg.IDClaim, username: cfg.UsernameClaim, group: cfg.GroupClaim}
	if names.id == "" {
		names.id = DefaultIDClaim
	}
	if names.username == "" {
		names.username = DefaultUsernameClaim
	}
	if names.group == "" {
		names.group = DefaultGroupClaim
	}
	return &verifierImpl{verifier: v, claims: names}
}

// Verify checks the token signature, issuer and expiry and maps its claims onto a Scope.
func (v *verifierImpl) Verify(ctx context.Context, rawToken string) (model.Scope, error) {
	tok, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return model.Scope{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	var claims jwt.MapClaims
	if err := tok.Claims(&claims); err != nil {
		return model.Scope{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	sc, err := v.scope(claims)
	if err != nil {
		return model.Scope{}, err
	}
	sc.ExpiresAt = tok.Expiry
	return sc, nil
}

func (v *verifierImpl) scope(claims jwt.MapClaims) (model.Scope, error) {
	id := stringClaim(claims, v.claims.id)
	if id == "" {
		return model.Scope{}, fmt.Errorf("%w: %s", ErrMissingClaim, v.claims.id)
	}
	return model.Scope{
		Subject:  id,
		Username: stringClaim(claims, v.claims.username),
		Email:    stringClaim(claims, emailClaim),
		Groups:   groupsClaim(claims, v.claims.group),
	}, nil
}

func stringClaim(claims jwt.MapClaims, name string) string {
	s, _ := claims[name].(string)
	return s
}

func groupsClaim(claims jwt.MapClaims, name string) []string {
	switch raw := claims[name].(type) {
	case string:
		return []string{raw}
	case []any:
		groups := make([]string, 0, len(raw))
		for _, g := range raw {
			if s, ok := g.(string); ok && s != "" {
				groups = append(groups, s)
			}
		}
		return groups
	}
	return nil
}

// AuthCodeURL returns the Keycloak login URL carrying state.
func (p *providerImpl) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

// Exchange trades an authorization code for tokens and verifies the returned ID token.
func (p *providerImpl) Exchange(ctx context.Context, code string) (model.Scope, error) {
	if p.oauth.RedirectURL == "" {
		return model.Scope{}, ErrRedirectRequired
	}
	tok, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return model.Scope{}, fmt.Errorf("keycloak: code exchange: %w", err)
	}
	return p.verifyExchanged(ctx, tok)
}

func (p *providerImpl) verifyExchanged(ctx context.Context, tok *oauth2.Token) (model.Scope, error) {
	raw, ok := tok.Extra("id_token").(string)
	if !ok || raw == "" {
		return model.Scope{}, ErrMissingIDToken
	}
	return p.Verify(ctx, raw)
}
