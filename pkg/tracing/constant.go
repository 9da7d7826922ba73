package tracing

import "time"

const (
	exporterTimeout = 10 * time.Second
	batchTimeout    = 5 * time.Second
)
