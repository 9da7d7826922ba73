package usecase

import (
	"sso-anythingllm-srv/internal/apikey"
	"sso-anythingllm-srv/internal/apikey/repository"
	"sso-anythingllm-srv/pkg/anythingllm"
	"sso-anythingllm-srv/pkg/encrypter"
	"sso-anythingllm-srv/pkg/log"
	"sso-anythingllm-srv/pkg/redis"

	"golang.org/x/sync/singleflight"
)

const (
	cacheKeyAPIKey     = "sso-anythingllm:api_key"
	cacheKeyAdminToken = "sso-anythingllm:admin_token"
	defaultListLimit   = 20
)

type implUseCase struct {
	repo   repository.PostgresRepository
	client anythingllm.Admin
	cache  redis.IRedis
	enc    encrypter.Encrypter
	cfg    apikey.Config
	l      log.Logger
	group  singleflight.Group
}

// New - Factory function
func New(
	repo repository.PostgresRepository,
	client anythingllm.Admin,
	cache redis.IRedis,
	enc encrypter.Encrypter,
	cfg apikey.Config,
	l log.Logger,
) apikey.UseCase {
	return &implUseCase{
		repo:   repo,
		client: client,
		cache:  cache,
		enc:    enc,
		cfg:    cfg,
		l:      l,
	}
}
