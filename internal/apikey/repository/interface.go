package repository

import (
	"context"

	"sso-anythingllm-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	Create(ctx context.Context, opt CreateOptions) (model.APIKey, error)
	GetLatest(ctx context.Context) (model.APIKey, error)
	List(ctx context.Context, opt ListOptions) ([]model.APIKey, error)
	Exists(ctx context.Context, value string) (bool, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id int64) error
}
