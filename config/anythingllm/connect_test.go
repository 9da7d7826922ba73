package anythingllm

import (
	"testing"
	"time"

	"sso-anythingllm-srv/config"
	"sso-anythingllm-srv/pkg/anythingllm"
	"sso-anythingllm-srv/pkg/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientConfig(t *testing.T) {
	reg := prometheus.NewRegistry()
	cfg := config.AnythingLLMConfig{
		URL:            "https://llm.example.com/api",
		APIKey:         "key",
		Timeout:        10 * time.Second,
		MaxRetries:     2,
		RetryBaseDelay: time.Second,
		RetryMaxDelay:  8 * time.Second,
		VerifySSL:      false,
		CircuitBreaker: true,
		Headers:        map[string]string{"X-Tenant": "acme"},
	}

	out := ClientConfig(cfg, reg)
	assert.Equal(t, "https://llm.example.com/api", out.BaseURL)
	assert.Equal(t, 2, out.MaxRetries)
	assert.Equal(t, 8*time.Second, out.MaxDelay)
	assert.True(t, out.InsecureSkipVerify)
	require.NotNil(t, out.CircuitBreaker)
	assert.Equal(t, "anythingllm", out.CircuitBreaker.Name)
	assert.Same(t, reg, out.Registerer)
	assert.NoError(t, out.Validate())

	cfg.CircuitBreaker, cfg.VerifySSL = false, true
	out = ClientConfig(cfg, nil)
	assert.Nil(t, out.CircuitBreaker)
	assert.False(t, out.InsecureSkipVerify)
}

func TestConnectLifecycle(t *testing.T) {
	t.Cleanup(func() { _ = Disconnect() })
	assert.Panics(t, func() { GetClient() })

	_, err := Connect(log.NewNop(), config.AnythingLLMConfig{URL: "", Timeout: time.Second}, nil)
	require.ErrorIs(t, err, anythingllm.ErrConfiguration)

	cfg := config.AnythingLLMConfig{URL: "http://localhost:3001/api", Timeout: time.Second}
	first, err := Connect(log.NewNop(), cfg, nil)
	require.NoError(t, err)
	second, err := Connect(log.NewNop(), cfg, nil)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Same(t, first, GetClient())

	require.NoError(t, Disconnect())
	require.NoError(t, Disconnect())
}
