package kafka

import "errors"

var (
	ErrBrokersRequired = errors.New("kafka: at least one broker is required")
	ErrTopicRequired   = errors.New("kafka: topic is required")
	ErrNotInitialized  = errors.New("kafka: producer is not initialized")
)
