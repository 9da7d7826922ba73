package apikey

import "time"

// Config configures how keys are obtained and cached.
type Config struct {
	// StaticKey, when set, is always returned by Current and nothing is generated.
	StaticKey     string
	AdminUser     string
	AdminPassword string
	AdminTokenTTL time.Duration
	APIKeyTTL     time.Duration
}

type ListInput struct {
	Limit  int
	Offset int
}
