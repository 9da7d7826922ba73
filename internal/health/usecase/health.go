package usecase

import (
	"context"
	"time"

	"sso-anythingllm-srv/internal/health"

	"golang.org/x/sync/errgroup"
)

func (uc *implUseCase) Check(ctx context.Context) health.Report {
	results := make([]health.Status, len(uc.monitors))

	g, gctx := errgroup.WithContext(ctx)
	for i, m := range uc.monitors {
		g.Go(func() error {
			mctx, cancel := context.WithTimeout(gctx, uc.timeout)
			defer cancel()

			start := time.Now()
			st := m.Check(mctx)
			st.Latency = time.Since(start)
			if st.State != health.StateUp {
				uc.l.Warnf(ctx, "health.usecase.Check: %s is %s: %s", m.Name(), st.State, st.Error)
			}
			results[i] = st
			return nil
		})
	}
	_ = g.Wait()

	report := health.Report{
		State:      health.StateUp,
		Components: make(map[string]health.Status, len(uc.monitors)),
		CheckedAt:  uc.now(),
	}
	for i, m := range uc.monitors {
		report.Components[m.Name()] = results[i]
		if results[i].State != health.StateUp {
			report.State = health.StateDown
		}
	}
	return report
}
