package redis

import "errors"

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: port must be between 1 and 65535")
	// ErrNotFound is returned by Get when the key does not exist.
	ErrNotFound = errors.New("redis: key not found")
)
