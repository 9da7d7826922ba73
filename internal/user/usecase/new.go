package usecase

import (
	"time"

	"sso-anythingllm-srv/internal/apikey"
	"sso-anythingllm-srv/internal/model"
	"sso-anythingllm-srv/internal/user"
	"sso-anythingllm-srv/internal/user/repository"
	"sso-anythingllm-srv/pkg/anythingllm"
	"sso-anythingllm-srv/pkg/kafka"
	"sso-anythingllm-srv/pkg/log"

	"golang.org/x/sync/singleflight"
)

type implUseCase struct {
	repo     repository.PostgresRepository
	client   anythingllm.Admin
	keys     apikey.UseCase
	producer kafka.IProducer
	cfg      user.Config
	l        log.Logger
	now      func() time.Time
	group    singleflight.Group
}

// New - Factory function
func New(
	repo repository.PostgresRepository,
	client anythingllm.Admin,
	keys apikey.UseCase,
	producer kafka.IProducer,
	cfg user.Config,
	l log.Logger,
) user.UseCase {
	if cfg.DefaultRole == "" {
		cfg.DefaultRole = model.RoleDefault
	}
	return &implUseCase{
		repo:     repo,
		client:   client,
		keys:     keys,
		producer: producer,
		cfg:      cfg,
		l:        l,
		now:      time.Now,
	}
}
