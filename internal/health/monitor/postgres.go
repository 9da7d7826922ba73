package monitor

import (
	"context"

	"sso-anythingllm-srv/internal/health"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type postgres struct {
	db Pinger
}

func NewPostgres(db Pinger) health.Monitor {
	return &postgres{db: db}
}

func (m *postgres) Name() string {
	return "postgres"
}

func (m *postgres) Check(ctx context.Context) health.Status {
	if err := m.db.PingContext(ctx); err != nil {
		return health.Down("Database connection failed", err)
	}
	return health.Up("Database connected")
}
