package anythingllm

import (
	"maps"
	"net/url"
	"strings"
)

// Validate checks cfg. Every failure is an *Error of KindConfiguration.
func (cfg ClientConfig) Validate() error {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return configError("base url is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return configError("malformed base url %q: %w", cfg.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return configError("base url %q must be an absolute http(s) url", cfg.BaseURL)
	}
	if cfg.Timeout <= 0 {
		return configError("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.MaxRetries < 0 {
		return configError("max retries must not be negative, got %d", cfg.MaxRetries)
	}
	if cfg.BaseDelay < 0 || cfg.MaxDelay < 0 {
		return configError("backoff delays must not be negative")
	}
	if cfg.BaseDelay > 0 && cfg.MaxDelay > 0 && cfg.BaseDelay > cfg.MaxDelay {
		return configError("base delay %s exceeds max delay %s", cfg.BaseDelay, cfg.MaxDelay)
	}
	if cfg.RateLimit < 0 || cfg.RateBurst < 0 {
		return configError("rate limit must not be negative")
	}
	for k := range cfg.Headers {
		if strings.TrimSpace(k) == "" {
			return configError("header names must not be empty")
		}
	}
	return nil
}

// normalized returns a deep copy of cfg with zero delays replaced by defaults.
func (cfg ClientConfig) normalized() ClientConfig {
	out := cfg
	out.Headers = maps.Clone(cfg.Headers)
	if out.BaseDelay == 0 {
		out.BaseDelay = DefaultBaseDelay
	}
	if out.MaxDelay == 0 {
		out.MaxDelay = max(DefaultMaxDelay, out.BaseDelay)
	}
	if out.CircuitBreaker != nil {
		bc := *out.CircuitBreaker
		out.CircuitBreaker = &bc
	}
	return out
}
