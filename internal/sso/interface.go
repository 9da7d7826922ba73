package sso

import (
	"context"

	"sso-anythingllm-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// LoginURL provisions the caller and returns a one-time AnythingLLM login URL.
	LoginURL(ctx context.Context, sc model.Scope) (LoginOutput, error)
	// AuthCodeURL returns the Keycloak authorization URL for state.
	AuthCodeURL(state string) (string, error)
	// Callback exchanges a Keycloak authorization code and continues with LoginURL.
	Callback(ctx context.Context, code string) (LoginOutput, error)
}
