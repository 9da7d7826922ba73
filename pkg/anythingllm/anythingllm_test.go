package anythingllm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"sso-anythingllm-srv/pkg/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	c, _ := newTestClient(t, testConfig(), nil)

	tests := []struct {
		name    string
		path    string
		query   url.Values
		want    string
		escapes bool
	}{
		{name: "simple", path: "/v1/workspaces", want: "http://anythingllm.test/api/v1/workspaces"},
		{name: "no leading slash", path: "v1/workspaces", want: "http://anythingllm.test/api/v1/workspaces"},
		{name: "inner dot dot stays inside", path: "/v1/a/../b", want: "http://anythingllm.test/api/v1/b"},
		{name: "query", path: "/v1/documents", query: url.Values{"q": {"a b"}}, want: "http://anythingllm.test/api/v1/documents?q=a+b"},
		{name: "escaped segment", path: "/v1/workspace/" + url.PathEscape("a/b"), want: "http://anythingllm.test/api/v1/workspace/a%2Fb"},
		{name: "climbs above root", path: "/v1/../../admin", escapes: true},
		{name: "relative climb", path: "../secret", escapes: true},
		{name: "sibling prefix", path: "/../apix/v1", escapes: true},
		{name: "encoded dot dot", path: "/v1/%2E%2E/%2E%2E/x", escapes: true},
		{name: "encoded slash dot dot", path: "/v1%2F..%2F..%2Fx", escapes: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.resolve(tt.path, tt.query)
			if tt.escapes {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrPathEscapesBase)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecute_PathEscapeSendsNothing(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, testConfig(), roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls.Add(1)
		return jsonResponse(r, http.StatusOK, `{}`), nil
	}))

	_, err := c.Get(context.Background(), "/../../etc/passwd")
	assert.ErrorIs(t, err, ErrPathEscapesBase)
	assert.Zero(t, calls.Load())
}

func TestBackoff(t *testing.T) {
	base, maxDelay := 100*time.Millisecond, time.Second
	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond, 800 * time.Millisecond, time.Second, time.Second}
	for i, w := range want {
		assert.Equal(t, w, Backoff(base, maxDelay, i), "retry %d", i)
	}
	assert.Equal(t, maxDelay, Backoff(base, maxDelay, 200))
	assert.Zero(t, Backoff(0, maxDelay, 3))
}

func TestExecute_RetriesTransientNetworkErrors(t *testing.T) {
	for _, failures := range []int{0, 1, 3} {
		t.Run(fmt.Sprintf("%d failures", failures), func(t *testing.T) {
			cfg := testConfig()
			cfg.MaxRetries = 3
			cfg.BaseDelay = 100 * time.Millisecond
			cfg.MaxDelay = 250 * time.Millisecond

			var calls atomic.Int32
			c, rec := newTestClient(t, cfg, roundTripFunc(func(r *http.Request) (*http.Response, error) {
				if int(calls.Add(1)) <= failures {
					return nil, errors.New("connection refused")
				}
				return jsonResponse(r, http.StatusOK, `{"ok":true}`), nil
			}))

			resp, err := c.Get(context.Background(), "/v1/workspaces")
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
			assert.Equal(t, int32(failures+1), calls.Load())

			schedule := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 250 * time.Millisecond}
			require.Len(t, rec.delays, failures)
			for i, d := range rec.delays {
				assert.Equal(t, schedule[i], d, "retry %d", i)
			}
		})
	}
}

func TestExecute_AuthenticationIsNotRetried(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			cfg := testConfig()
			cfg.MaxRetries = 5
			var calls atomic.Int32
			c, rec := newTestClient(t, cfg, roundTripFunc(func(r *http.Request) (*http.Response, error) {
				calls.Add(1)
				return jsonResponse(r, status, `{"error":"No valid api key found."}`), nil
			}))

			_, err := c.Get(context.Background(), "/v1/workspaces")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrAuthentication)
			assert.Equal(t, int32(1), calls.Load())
			assert.Empty(t, rec.delays)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, status, apiErr.StatusCode)
			assert.Equal(t, `{"error":"No valid api key found."}`, apiErr.Body)
			assert.Equal(t, 1, apiErr.Attempts)
		})
	}
}

func TestExecute_ServerErrorExhaustsRetries(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRetries = 2
	cfg.BaseDelay = 10 * time.Millisecond
	var calls atomic.Int32
	c, rec := newTestClient(t, cfg, roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls.Add(1)
		return jsonResponse(r, http.StatusInternalServerError, `{"error":"boom"}`), nil
	}))

	_, err := c.Post(context.Background(), "/v1/workspace/new", NewWorkspace{Name: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServer)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, rec.delays)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, `{"error":"boom"}`, apiErr.Body)
	assert.Equal(t, 3, apiErr.Attempts)
	assert.Equal(t, http.MethodPost, apiErr.Method)
}

func TestExecute_ClientErrorsAreNotRetried(t *testing.T) {
	tests := []struct {
		status   int
		sentinel error
	}{
		{http.StatusBadRequest, ErrAPI},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrAPI},
		{http.StatusTooManyRequests, ErrRateLimited},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			cfg := testConfig()
			cfg.MaxRetries = 3
			var calls atomic.Int32
			c, _ := newTestClient(t, cfg, roundTripFunc(func(r *http.Request) (*http.Response, error) {
				calls.Add(1)
				return jsonResponse(r, tt.status, `{"message":"nope"}`), nil
			}))

			_, err := c.Get(context.Background(), "/v1/workspace/missing")
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, KindAPI, KindOf(err))
			assert.Equal(t, tt.status, StatusCode(err))
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestExecute_RateLimitRetryOptIn(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRetries = 2
	cfg.BaseDelay = 10 * time.Millisecond
	cfg.MaxDelay = 3 * time.Second
	cfg.RetryOnRateLimit = true

	var calls atomic.Int32
	c, rec := newTestClient(t, cfg, roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if calls.Add(1) == 1 {
			resp := jsonResponse(r, http.StatusTooManyRequests, `{}`)
			resp.Header.Set(HeaderRetryAfter, "2")
			return resp, nil
		}
		return jsonResponse(r, http.StatusOK, `{"ok":true}`), nil
	}))

	_, err := c.Get(context.Background(), "/v1/workspaces")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, []time.Duration{2 * time.Second}, rec.delays)
}

func TestExecute_RetryAfterIsCapped(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRetries = 1
	cfg.BaseDelay = 10 * time.Millisecond
	cfg.MaxDelay = 50 * time.Millisecond
	cfg.RetryOnRateLimit = true

	c, rec := newTestClient(t, cfg, roundTripFunc(func(r *http.Request) (*http.Response, error) {
		resp := jsonResponse(r, http.StatusTooManyRequests, `{}`)
		resp.Header.Set(HeaderRetryAfter, "120")
		return resp, nil
	}))

	_, err := c.Get(context.Background(), "/v1/workspaces")
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, []time.Duration{50 * time.Millisecond}, rec.delays)
}

func TestExecute_CancelDuringBackoff(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRetries = 5
	cfg.BaseDelay = time.Hour
	cfg.MaxDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	c, _ := newTestClient(t, cfg, roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls.Add(1)
		return jsonResponse(r, http.StatusBadGateway, `{}`), nil
	}))
	c.sleep = func(ctx context.Context, d time.Duration) error {
		cancel()
		return sleepContext(ctx, d)
	}

	_, err := c.Get(ctx, "/v1/workspaces")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, KindUnknown, KindOf(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestExecute_CancelDuringRequest(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRetries = 3

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	c, rec := newTestClient(t, cfg, roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls.Add(1)
		cancel()
		<-r.Context().Done()
		return nil, r.Context().Err()
	}))

	_, err := c.Get(ctx, "/v1/workspaces")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(1), calls.Load())
	assert.Empty(t, rec.delays)
}

func TestExecute_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	c, _ := newTestClient(t, testConfig(), roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls.Add(1)
		return jsonResponse(r, http.StatusOK, `{}`), nil
	}))

	_, err := c.Get(ctx, "/v1/workspaces")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls.Load())
}

func TestExecute_AttemptTimeoutIsNetworkError(t *testing.T) {
	cfg := testConfig()
	cfg.Timeout = 20 * time.Millisecond
	cfg.MaxRetries = 1

	var calls atomic.Int32
	c, rec := newTestClient(t, cfg, roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls.Add(1)
		<-r.Context().Done()
		return nil, r.Context().Err()
	}))

	_, err := c.Get(context.Background(), "/v1/workspaces")
	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int32(2), calls.Load())
	assert.Len(t, rec.delays, 1)
}

func TestExecute_SuccessPayloads(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		want        string
		invalid     bool
	}{
		{name: "json", status: http.StatusOK, contentType: contentTypeJSON, body: `{"a":1}`, want: `{"a":1}`},
		{name: "json charset", status: http.StatusOK, contentType: "application/json; charset=utf-8", body: `[1,2]`, want: `[1,2]`},
		{name: "empty ok", status: http.StatusOK, contentType: contentTypeJSON, want: `{}`},
		{name: "empty created", status: http.StatusCreated, want: `{"status":"created"}`},
		{name: "no content", status: http.StatusNoContent, want: `{"status":"no_content"}`},
		{name: "plain text", status: http.StatusOK, contentType: "text/plain; charset=utf-8", body: "OK", want: `{"message":"OK"}`},
		{name: "broken json", status: http.StatusOK, contentType: contentTypeJSON, body: `{"a":`, invalid: true},
		{name: "html page", status: http.StatusOK, contentType: "text/html; charset=utf-8", body: "<html>proxy login</html>", invalid: true},
		{name: "xml", status: http.StatusOK, contentType: "application/xml", body: "<ok/>", invalid: true},
		{name: "undeclared garbage", status: http.StatusOK, body: `<html>`, invalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.MaxRetries = 3
			var calls atomic.Int32
			c, _ := newTestClient(t, cfg, roundTripFunc(func(r *http.Request) (*http.Response, error) {
				calls.Add(1)
				h := http.Header{}
				if tt.contentType != "" {
					h.Set(HeaderContentType, tt.contentType)
				}
				return &http.Response{StatusCode: tt.status, Header: h, Body: io.NopCloser(strings.NewReader(tt.body)), Request: r}, nil
			}))

			resp, err := c.Get(context.Background(), "/v1/x")
			if tt.invalid {
				assert.ErrorIs(t, err, ErrValidation)
				assert.Equal(t, tt.status, StatusCode(err))
				assert.Equal(t, int32(1), calls.Load())
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(resp.Body))
		})
	}
}

func TestExecute_RedirectsAreNotFollowed(t *testing.T) {
	var outside atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/workspaces", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/outside", http.StatusFound)
	})
	mux.HandleFunc("/outside", func(w http.ResponseWriter, r *http.Request) {
		outside.Add(1)
		w.Header().Set(HeaderContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{"escaped":true}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := testConfig()
	cfg.BaseURL = srv.URL + "/api"
	cfg.MaxRetries = 2
	c, rec := newTestClient(t, cfg, nil)

	resp, err := c.Get(context.Background(), "/v1/workspaces")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrAPI)
	assert.Equal(t, http.StatusFound, StatusCode(err))
	assert.Zero(t, outside.Load())
	assert.Empty(t, rec.delays)
}

func TestExecute_CloseStopsRetries(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRetries = 3

	var calls atomic.Int32
	c, _ := newTestClient(t, cfg, roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls.Add(1)
		return jsonResponse(r, http.StatusInternalServerError, `{}`), nil
	}))
	c.sleep = func(ctx context.Context, d time.Duration) error {
		_ = c.Close()
		return nil
	}

	_, err := c.Get(context.Background(), "/v1/x")
	assert.ErrorIs(t, err, ErrClientClosed)
	assert.Equal(t, int32(1), calls.Load())
}

func TestExecute_SendsRequest(t *testing.T) {
	var got *http.Request
	var gotBody string
	c, _ := newTestClient(t, testConfig(), roundTripFunc(func(r *http.Request) (*http.Response, error) {
		got = r
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		return jsonResponse(r, http.StatusOK, `{}`), nil
	}))

	ctx := log.WithRequestID(context.Background(), "req-123")
	_, err := c.Put(ctx, "/v1/x", map[string]int{"n": 1},
		WithQuery(url.Values{"a": {"1"}}),
		WithHeader("X-Trace", "t"),
		WithAuthToken("override"),
	)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, got.Method)
	assert.Equal(t, "/api/v1/x", got.URL.Path)
	assert.Equal(t, "a=1", got.URL.RawQuery)
	assert.Equal(t, "Bearer override", got.Header.Get(HeaderAuthorization))
	assert.Equal(t, "t", got.Header.Get("X-Trace"))
	assert.Equal(t, "req-123", got.Header.Get(HeaderRequestID))
	assert.JSONEq(t, `{"n":1}`, gotBody)
}

func TestExecute_UnencodableBody(t *testing.T) {
	c, _ := newTestClient(t, testConfig(), roundTripFunc(func(r *http.Request) (*http.Response, error) {
		t.Fatal("request must not be sent")
		return nil, nil
	}))
	_, err := c.Post(context.Background(), "/v1/x", map[string]any{"ch": make(chan int)})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExecute_CircuitBreakerOpens(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRetries = 0
	cfg.CircuitBreaker = &BreakerConfig{ConsecutiveFailures: 2, Timeout: time.Hour}

	var calls atomic.Int32
	c, _ := newTestClient(t, cfg, roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls.Add(1)
		return jsonResponse(r, http.StatusServiceUnavailable, `{}`), nil
	}))

	for i := 0; i < 2; i++ {
		_, err := c.Get(context.Background(), "/v1/x")
		assert.ErrorIs(t, err, ErrServer)
	}
	_, err := c.Get(context.Background(), "/v1/x")
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, int32(2), calls.Load())
}

func TestExecute_BreakerIgnoresClientErrors(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRetries = 0
	cfg.CircuitBreaker = &BreakerConfig{ConsecutiveFailures: 1, Timeout: time.Hour}

	var calls atomic.Int32
	c, _ := newTestClient(t, cfg, roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls.Add(1)
		return jsonResponse(r, http.StatusNotFound, `{}`), nil
	}))

	for i := 0; i < 3; i++ {
		_, err := c.Get(context.Background(), "/v1/x")
		assert.ErrorIs(t, err, ErrNotFound)
	}
	assert.Equal(t, int32(3), calls.Load())
}

func TestExecute_BreakerIgnoresCancellation(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRetries = 0
	cfg.CircuitBreaker = &BreakerConfig{ConsecutiveFailures: 1, Timeout: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	c, _ := newTestClient(t, cfg, roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if calls.Add(1) == 1 {
			cancel()
			<-r.Context().Done()
			return nil, r.Context().Err()
		}
		return jsonResponse(r, http.StatusOK, `{}`), nil
	}))

	_, err := c.Get(ctx, "/v1/x")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = c.Get(context.Background(), "/v1/x")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestExecute_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	cfg := testConfig()
	cfg.MaxRetries = 1
	cfg.Registerer = reg

	var calls atomic.Int32
	c, _ := newTestClient(t, cfg, roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if calls.Add(1) == 1 {
			return jsonResponse(r, http.StatusBadGateway, `{}`), nil
		}
		return jsonResponse(r, http.StatusOK, `{}`), nil
	}))
	_, err := c.Get(context.Background(), "/v1/x")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.requests.WithLabelValues(http.MethodGet, "server", "502")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.requests.WithLabelValues(http.MethodGet, "success", "")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.retries.WithLabelValues(http.MethodGet)))

	// A second client on the same registry reuses the collectors.
	other, _ := newTestClient(t, cfg, nil)
	assert.Same(t, c.metrics.requests, other.metrics.requests)
}

func TestClose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{"workspaces":[]}`))
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.BaseURL = srv.URL + "/api"

	first, err := New(log.NewNop(), cfg)
	require.NoError(t, err)
	second, err := New(log.NewNop(), cfg)
	require.NoError(t, err)
	defer second.Close()

	_, err = first.ListWorkspaces(context.Background())
	require.NoError(t, err)

	assert.NoError(t, first.Close())
	assert.NoError(t, first.Close())

	_, err = first.ListWorkspaces(context.Background())
	assert.ErrorIs(t, err, ErrClientClosed)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = second.ListWorkspaces(context.Background())
	assert.NoError(t, err)
}

func TestWith_ClosesOnEveryPath(t *testing.T) {
	cfg := testConfig()

	t.Run("error", func(t *testing.T) {
		var captured IClient
		sentinel := errors.New("boom")
		err := With(log.NewNop(), cfg, func(c IClient) error {
			captured = c
			return sentinel
		})
		assert.ErrorIs(t, err, sentinel)
		_, err = captured.Get(context.Background(), "/v1/x")
		assert.ErrorIs(t, err, ErrClientClosed)
	})

	t.Run("panic", func(t *testing.T) {
		var captured IClient
		func() {
			defer func() { _ = recover() }()
			_ = With(log.NewNop(), cfg, func(c IClient) error {
				captured = c
				panic("boom")
			})
		}()
		require.NotNil(t, captured)
		_, err := captured.Get(context.Background(), "/v1/x")
		assert.ErrorIs(t, err, ErrClientClosed)
	})

	t.Run("invalid config", func(t *testing.T) {
		bad := cfg
		bad.Timeout = 0
		err := With(log.NewNop(), bad, func(IClient) error {
			t.Fatal("fn must not run")
			return nil
		})
		assert.ErrorIs(t, err, ErrConfiguration)
	})
}

func TestExecute_Concurrent(t *testing.T) {
	var inFlight, peak atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		w.Header().Set(HeaderContentType, contentTypeJSON)
		_, _ = fmt.Fprintf(w, `{"path":%q}`, r.URL.Path)
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.BaseURL = srv.URL + "/api"
	c, _ := newTestClient(t, cfg, nil)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := c.Get(context.Background(), fmt.Sprintf("/v1/item/%d", i))
			if err != nil {
				errs <- err
				return
			}
			var out struct{ Path string }
			if err := resp.Decode(&out); err != nil {
				errs <- err
				return
			}
			if out.Path != fmt.Sprintf("/api/v1/item/%d", i) {
				errs <- fmt.Errorf("unexpected path %s", out.Path)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
	assert.Greater(t, peak.Load(), int32(1))
}
