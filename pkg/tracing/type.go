package tracing

import "context"

type Config struct {
	Enabled  bool
	Endpoint string
	Insecure bool
	// SampleRatio applies to root spans. Spans with a sampled parent are always kept.
	SampleRatio float64

	ServiceName    string
	ServiceVersion string
}

// Shutdown flushes pending spans and stops the exporter.
type Shutdown func(ctx context.Context) error
