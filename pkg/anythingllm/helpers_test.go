package anythingllm

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"sso-anythingllm-srv/pkg/log"

	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func jsonResponse(r *http.Request, status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{HeaderContentType: []string{contentTypeJSON}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    r,
	}
}

// sleepRecorder replaces the backoff sleep and records requested delays.
type sleepRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (s *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.delays = append(s.delays, d)
	s.mu.Unlock()
	return ctx.Err()
}

func testConfig() ClientConfig {
	cfg := DefaultConfig()
	cfg.BaseURL = "http://anythingllm.test/api"
	cfg.APIKey = "instance-key"
	cfg.Timeout = time.Second
	return cfg
}

// newTestClient builds a client whose transport is rt and whose backoff sleeps are recorded.
func newTestClient(t *testing.T, cfg ClientConfig, rt http.RoundTripper) (*clientImpl, *sleepRecorder) {
	t.Helper()
	c, err := newClient(log.NewNop(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	rec := &sleepRecorder{}
	c.sleep = rec.sleep
	if rt != nil {
		c.httpClient.Transport = rt
	}
	return c, rec
}
