package user

import (
	"sso-anythingllm-srv/internal/model"
	"sso-anythingllm-srv/pkg/paginator"
)

// Config controls how identities are mapped onto AnythingLLM accounts.
type Config struct {
	// Correlations maps Keycloak groups to roles. The highest matching role wins.
	Correlations map[string]model.Role
	DefaultRole  model.Role
	// DefaultPassword is set on created accounts. Users sign in through SSO tokens, never with it.
	DefaultPassword string
}

type ProvisionOutput struct {
	User    model.User
	Created bool
	Updated bool
}

type ListInput struct {
	Paginator paginator.PaginateQuery
}

type ListOutput struct {
	Users     []model.User
	Paginator paginator.Paginator
}
