package usecase

import (
	"time"

	"sso-anythingllm-srv/internal/health"
	"sso-anythingllm-srv/pkg/log"
)

// DefaultTimeout bounds a single monitor.
const DefaultTimeout = 5 * time.Second

type implUseCase struct {
	monitors []health.Monitor
	timeout  time.Duration
	l        log.Logger
	now      func() time.Time
}

// New - Factory function
func New(l log.Logger, timeout time.Duration, monitors ...health.Monitor) health.UseCase {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &implUseCase{
		monitors: monitors,
		timeout:  timeout,
		l:        l,
		now:      time.Now,
	}
}
