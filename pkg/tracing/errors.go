package tracing

import "errors"

var ErrEndpointRequired = errors.New("tracing: endpoint is required when tracing is enabled")
