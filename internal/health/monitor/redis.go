package monitor

import (
	"context"

	"sso-anythingllm-srv/internal/health"
	pkgRedis "sso-anythingllm-srv/pkg/redis"
)

type redis struct {
	client pkgRedis.IRedis
}

func NewRedis(client pkgRedis.IRedis) health.Monitor {
	return &redis{client: client}
}

func (m *redis) Name() string {
	return "redis"
}

func (m *redis) Check(ctx context.Context) health.Status {
	if err := m.client.Ping(ctx); err != nil {
		return health.Down("Redis connection failed", err)
	}
	return health.Up("Redis connected")
}
