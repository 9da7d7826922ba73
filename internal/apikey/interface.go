package apikey

import (
	"context"

	"sso-anythingllm-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Current returns the API key used for AnythingLLM admin calls, generating one when none exists.
	Current(ctx context.Context) (model.APIKey, error)
	Generate(ctx context.Context) (model.APIKey, error)
	Rotate(ctx context.Context) (model.APIKey, error)
	List(ctx context.Context, input ListInput) ([]model.APIKey, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id int64) error
	// AdminToken returns a session token of the AnythingLLM admin account.
	AdminToken(ctx context.Context) (string, error)
}
