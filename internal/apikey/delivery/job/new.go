package job

import (
	"context"
	"fmt"
	"time"

	"sso-anythingllm-srv/internal/apikey"
	"sso-anythingllm-srv/pkg/log"

	"github.com/robfig/cron/v3"
)

const rotateTimeout = 2 * time.Minute

// Scheduler - Interface cho API key scheduled jobs
type Scheduler interface {
	Start()
	// Stop halts the schedule. The returned context is done once a running job finishes.
	Stop() context.Context
}

type implScheduler struct {
	l  log.Logger
	uc apikey.UseCase
	c  *cron.Cron
}

// New - Factory function. rotationSpec is a standard 5-field cron expression.
func New(l log.Logger, uc apikey.UseCase, rotationSpec string) (Scheduler, error) {
	s := &implScheduler{
		l:  l,
		uc: uc,
		c:  cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}
	if _, err := s.c.AddFunc(rotationSpec, s.rotate); err != nil {
		return nil, fmt.Errorf("apikey job: invalid rotation schedule %q: %w", rotationSpec, err)
	}
	return s, nil
}

func (s *implScheduler) Start() {
	s.c.Start()
}

func (s *implScheduler) Stop() context.Context {
	return s.c.Stop()
}
