package anythingllm

import (
	"fmt"
	"sync"

	"sso-anythingllm-srv/config"
	"sso-anythingllm-srv/pkg/anythingllm"
	"sso-anythingllm-srv/pkg/log"

	"github.com/prometheus/client_golang/prometheus"
)

const breakerName = "anythingllm"

var (
	instance anythingllm.IClient
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// ClientConfig maps the service configuration onto the client configuration.
func ClientConfig(cfg config.AnythingLLMConfig, reg prometheus.Registerer) anythingllm.ClientConfig {
	out := anythingllm.ClientConfig{
		BaseURL:            cfg.URL,
		APIKey:             cfg.APIKey,
		Timeout:            cfg.Timeout,
		MaxRetries:         cfg.MaxRetries,
		BaseDelay:          cfg.RetryBaseDelay,
		MaxDelay:           cfg.RetryMaxDelay,
		RetryOnRateLimit:   cfg.RetryOnRateLimit,
		Headers:            cfg.Headers,
		InsecureSkipVerify: !cfg.VerifySSL,
		RateLimit:          cfg.RateLimit,
		RateBurst:          cfg.RateBurst,
		Registerer:         reg,
	}
	if cfg.CircuitBreaker {
		out.CircuitBreaker = &anythingllm.BreakerConfig{Name: breakerName}
	}
	return out
}

// Connect initializes the shared AnythingLLM client. A failed attempt can be retried.
func Connect(l log.Logger, cfg config.AnythingLLMConfig, reg prometheus.Registerer) (anythingllm.IClient, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		client, e := anythingllm.New(l, ClientConfig(cfg, reg))
		if e != nil {
			err = fmt.Errorf("failed to initialize AnythingLLM client: %w", e)
			initErr = err
			return
		}
		instance = client
	})

	return instance, err
}

// GetClient returns the shared client. Panics before Connect.
func GetClient() anythingllm.IClient {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("AnythingLLM client not initialized. Call Connect() first")
	}
	return instance
}

// Disconnect closes the shared client so Connect can run again.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	if err := instance.Close(); err != nil {
		return err
	}
	instance = nil
	once = sync.Once{}
	initErr = nil
	return nil
}
