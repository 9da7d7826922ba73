package user

import (
	"context"

	"sso-anythingllm-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Provision makes sure the Keycloak identity has an AnythingLLM account with the role its groups grant.
	Provision(ctx context.Context, sc model.Scope) (ProvisionOutput, error)
	// Deprovision deletes the AnythingLLM account and the mapping of keycloakID.
	Deprovision(ctx context.Context, keycloakID string) error
	Get(ctx context.Context, keycloakID string) (model.User, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
}
