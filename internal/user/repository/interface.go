package repository

import (
	"context"

	"sso-anythingllm-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	GetByKeycloakID(ctx context.Context, keycloakID string) (model.User, error)
	GetByAnythingLLMID(ctx context.Context, id int) (model.User, error)
	Create(ctx context.Context, opt CreateOptions) (model.User, error)
	Update(ctx context.Context, opt UpdateOptions) (model.User, error)
	DeleteByKeycloakID(ctx context.Context, keycloakID string) error
	List(ctx context.Context, opt ListOptions) ([]model.User, error)
	Count(ctx context.Context) (int64, error)
}
