package health

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Check runs every monitor concurrently and aggregates the result.
	Check(ctx context.Context) Report
}

// Monitor probes one dependency.
type Monitor interface {
	Name() string
	Check(ctx context.Context) Status
}
