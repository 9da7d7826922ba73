package anythingllm

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"sso-anythingllm-srv/pkg/log"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

func newClient(l log.Logger, cfg ClientConfig) (*clientImpl, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	if l == nil {
		l = log.NewNop()
	}

	base, _ := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = DefaultMaxIdleConnsPerHost
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true, MinVersion: tls.VersionTLS12}
	}

	m, err := newMetrics(cfg.Registerer)
	if err != nil {
		return nil, configError("register metrics: %w", err)
	}

	c := &clientImpl{
		cfg:        cfg,
		base:       base,
		headers:    defaultHeaders(cfg),
		transport:  transport,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(transport),
			// A redirect may leave the API root, so 3xx is classified instead.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		metrics:    m,
		l:          l,
		sleep:      sleepContext,
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.RateBurst, 1))
	}
	if cfg.CircuitBreaker != nil {
		c.breaker = newBreaker(l, *cfg.CircuitBreaker)
	}
	return c, nil
}

func defaultHeaders(cfg ClientConfig) http.Header {
	h := http.Header{}
	h.Set(HeaderContentType, contentTypeJSON)
	h.Set(HeaderAccept, contentTypeJSON)
	if cfg.APIKey != "" {
		h.Set(HeaderAuthorization, "Bearer "+cfg.APIKey)
	}
	for k, v := range cfg.Headers {
		h.Set(k, v)
	}
	return h
}

func newBreaker(l log.Logger, bc BreakerConfig) *gobreaker.CircuitBreaker {
	name := bc.Name
	if name == "" {
		name = "anythingllm"
	}
	threshold := bc.ConsecutiveFailures
	if threshold == 0 {
		threshold = 5
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: bc.MaxRequests,
		Interval:    bc.Interval,
		Timeout:     bc.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			l.Warnf(context.Background(), "anythingllm.breaker: %s changed from %s to %s", name, from, to)
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !isTransient(err)
		},
	})
}

// Execute sends req, retrying network and server failures with exponential backoff.
// Cancellation of ctx is returned as ctx.Err() and never retried.
func (c *clientImpl) Execute(ctx context.Context, req Request) (*Response, error) {
	if c.closed.Load() {
		return nil, &Error{Kind: KindConfiguration, Method: req.Method, Err: ErrClientClosed}
	}
	if req.Method == "" {
		req.Method = http.MethodGet
	}

	target, err := c.resolve(req.Path, req.Query)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Method = req.Method
		}
		return nil, err
	}

	var payload []byte
	if req.Body != nil {
		payload, err = json.Marshal(req.Body)
		if err != nil {
			return nil, &Error{Kind: KindValidation, Method: req.Method, URL: target, Err: fmt.Errorf("encode request body: %w", err)}
		}
	}
	headers := c.mergeHeaders(req.Headers)

	var last *Error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.backoff(attempt-1, last)
			c.l.Warnf(ctx, "anythingllm.Execute: %s %s failed (%s), retry %d/%d in %s",
				req.Method, target, last.Kind, attempt, c.cfg.MaxRetries, delay)
			c.metrics.retried(req.Method)
			if err := c.sleep(ctx, delay); err != nil {
				return nil, err
			}
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if c.closed.Load() {
			return nil, &Error{Kind: KindConfiguration, Method: req.Method, URL: target, Attempts: attempt, Err: ErrClientClosed}
		}

		start := time.Now()
		resp, aerr := c.attempt(ctx, req.Method, target, payload, headers)
		c.metrics.observe(req.Method, aerr, time.Since(start))
		if aerr == nil {
			return resp, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		aerr.Attempts = attempt + 1
		last = aerr
		if !c.retryable(aerr) {
			break
		}
	}

	c.l.Errorf(ctx, "anythingllm.Execute: %v", last)
	return nil, last
}

func (c *clientImpl) attempt(ctx context.Context, method, target string, payload []byte, headers http.Header) (*Response, *Error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &Error{Kind: KindNetwork, Method: method, URL: target, Err: fmt.Errorf("rate limiter: %w", err)}
		}
	}
	if c.breaker == nil {
		return c.roundTrip(ctx, method, target, payload, headers)
	}

	var resp *Response
	var failed *Error
	_, err := c.breaker.Execute(func() (any, error) {
		r, aerr := c.roundTrip(ctx, method, target, payload, headers)
		if aerr != nil {
			failed = aerr
			// The caller gave up; that says nothing about the upstream.
			if cerr := ctx.Err(); cerr != nil {
				return nil, cerr
			}
			return nil, aerr
		}
		resp = r
		return nil, nil
	})
	if err == nil {
		return resp, nil
	}
	if failed != nil {
		return nil, failed
	}
	// gobreaker.ErrOpenState or ErrTooManyRequests: nothing was sent.
	return nil, &Error{Kind: KindNetwork, Method: method, URL: target, Err: err}
}

func (c *clientImpl) roundTrip(ctx context.Context, method, target string, payload []byte, headers http.Header) (*Response, *Error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, &Error{Kind: KindConfiguration, Method: method, URL: target, Err: err}
	}
	httpReq.Header = headers.Clone()
	if httpReq.Header.Get(HeaderRequestID) == "" {
		id := log.RequestID(ctx)
		if id == "" {
			id = uuid.NewString()
		}
		httpReq.Header.Set(HeaderRequestID, id)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Method: method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Method: method, URL: target, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response body: %w", err)}
	}
	return classify(method, target, resp, raw)
}

// classify turns a received response into a Response or a typed *Error.
func classify(method, target string, resp *http.Response, raw []byte) (*Response, *Error) {
	status := resp.StatusCode
	if status >= 200 && status < 300 {
		body, err := successBody(status, resp.Header.Get(HeaderContentType), raw)
		if err != nil {
			return nil, &Error{Kind: KindValidation, Method: method, URL: target, StatusCode: status, Body: string(raw), Err: err}
		}
		return &Response{StatusCode: status, Header: resp.Header, Body: body}, nil
	}

	e := &Error{Method: method, URL: target, StatusCode: status, Body: string(raw)}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		e.Kind = KindAuthentication
	case status >= 500:
		e.Kind = KindServer
	default:
		e.Kind = KindAPI
	}
	if status == http.StatusTooManyRequests {
		e.retryAfter = parseRetryAfter(resp.Header.Get(HeaderRetryAfter))
	}
	return nil, e
}

// successBody returns the JSON payload of a 2xx response. Empty bodies are
// replaced by a small status object and text/plain bodies (the "OK" of some
// AnythingLLM endpoints) are wrapped as a message. Any other non-JSON media
// type is a decode failure.
func successBody(status int, contentType string, raw []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		switch status {
		case http.StatusCreated:
			return json.RawMessage(`{"status":"created"}`), nil
		case http.StatusNoContent:
			return json.RawMessage(`{"status":"no_content"}`), nil
		default:
			return json.RawMessage(`{}`), nil
		}
	}
	if contentType != "" && !isJSONContentType(contentType) {
		if mediaType(contentType) != contentTypeText {
			return nil, fmt.Errorf("unexpected content type %q", contentType)
		}
		b, err := json.Marshal(map[string]string{"message": string(trimmed)})
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	if !json.Valid(trimmed) {
		return nil, errors.New("response body is not valid JSON")
	}
	return json.RawMessage(trimmed), nil
}

func mediaType(ct string) string {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	return mt
}

func isJSONContentType(ct string) bool {
	mt := mediaType(ct)
	return mt == contentTypeJSON || strings.HasSuffix(mt, "+json")
}

func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

func isTransient(err error) bool {
	k := KindOf(err)
	return k == KindNetwork || k == KindServer
}

func (c *clientImpl) retryable(e *Error) bool {
	switch e.Kind {
	case KindNetwork, KindServer:
		return true
	case KindAPI:
		return c.cfg.RetryOnRateLimit && e.StatusCode == http.StatusTooManyRequests
	}
	return false
}

func (c *clientImpl) backoff(retry int, last *Error) time.Duration {
	d := Backoff(c.cfg.BaseDelay, c.cfg.MaxDelay, retry)
	if last != nil && last.retryAfter > d {
		d = min(last.retryAfter, c.cfg.MaxDelay)
	}
	return d
}

// Backoff returns min(base*2^retry, maxDelay) without jitter.
func Backoff(base, maxDelay time.Duration, retry int) time.Duration {
	if base <= 0 {
		return 0
	}
	d := base
	for i := 0; i < retry; i++ {
		if d > maxDelay/2 {
			return maxDelay
		}
		d *= 2
	}
	return min(d, maxDelay)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// resolve joins p under the base path. The cleaned result must stay inside
// the base path in both its escaped and unescaped forms.
func (c *clientImpl) resolve(p string, query url.Values) (string, error) {
	root := strings.TrimSuffix(c.base.Path, "/")
	escapedRoot := strings.TrimSuffix(c.base.EscapedPath(), "/")

	escaped := path.Join("/", escapedRoot, p)
	unescaped, err := url.PathUnescape(escaped)
	if err != nil {
		return "", &Error{Kind: KindValidation, URL: p, Err: fmt.Errorf("invalid path: %w", err)}
	}
	if !within(escaped, escapedRoot) || !within(path.Clean(unescaped), root) {
		return "", &Error{Kind: KindValidation, URL: p, Err: ErrPathEscapesBase}
	}

	u := *c.base
	u.Path = unescaped
	u.RawPath = escaped
	u.RawQuery = query.Encode()
	u.Fragment = ""
	return u.String(), nil
}

func within(p, root string) bool {
	return root == "" || root == "/" || p == root || strings.HasPrefix(p, root+"/")
}

func (c *clientImpl) mergeHeaders(call map[string]string) http.Header {
	h := c.headers.Clone()
	for k, v := range call {
		h.Set(k, v)
	}
	return h
}

// Close releases idle connections of this client's own pool.
func (c *clientImpl) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		c.transport.CloseIdleConnections()
	})
	return nil
}
