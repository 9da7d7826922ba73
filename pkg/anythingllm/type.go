package anythingllm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"sso-anythingllm-srv/pkg/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// ClientConfig configures a client. It is validated by New and copied, so
// later changes by the caller have no effect on a running client.
type ClientConfig struct {
	// BaseURL is the API root, e.g. https://llm.example.com/api.
	BaseURL string
	APIKey  string

	// Timeout bounds each attempt, not the whole call.
	Timeout    time.Duration
	MaxRetries int
	// BaseDelay and MaxDelay shape the backoff: retry i waits min(BaseDelay*2^i, MaxDelay).
	// Zero selects DefaultBaseDelay / DefaultMaxDelay.
	BaseDelay time.Duration
	MaxDelay  time.Duration
	// RetryOnRateLimit makes 429 responses retryable, honoring Retry-After up to MaxDelay.
	RetryOnRateLimit bool

	Headers            map[string]string
	InsecureSkipVerify bool

	// RateLimit is a client-side limit in requests per second. Zero disables it.
	RateLimit float64
	RateBurst int

	CircuitBreaker *BreakerConfig
	Registerer     prometheus.Registerer
}

// BreakerConfig enables a circuit breaker in front of the transport.
// Only network and server failures count against it.
type BreakerConfig struct {
	Name                string
	ConsecutiveFailures uint32
	MaxRequests         uint32
	Interval            time.Duration
	Timeout             time.Duration
}

// Request describes one call. It lives for the call and its retries.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    any
	Headers map[string]string
}

// CallOption adjusts a Request built by a verb or convenience method.
type CallOption func(*Request)

// Response is a decoded 2xx outcome. Body always holds valid JSON.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       json.RawMessage
}

// Workspace is an AnythingLLM workspace.
type Workspace struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	LastUpdatedAt string   `json:"lastUpdatedAt,omitempty"`
	OpenAITemp    *float64 `json:"openAiTemp,omitempty"`
	OpenAIPrompt  *string  `json:"openAiPrompt,omitempty"`
	Documents     []Doc    `json:"documents,omitempty"`
	Threads       []Thread `json:"threads,omitempty"`
}

// NewWorkspace is the body of a workspace creation.
type NewWorkspace struct {
	Name             string   `json:"name"`
	SimilarityThresh *float64 `json:"similarityThreshold,omitempty"`
	OpenAITemp       *float64 `json:"openAiTemp,omitempty"`
	OpenAIHistory    *int     `json:"openAiHistory,omitempty"`
	OpenAIPrompt     string   `json:"openAiPrompt,omitempty"`
	ChatMode         string   `json:"chatMode,omitempty"`
}

// Doc is a document embedded in a workspace.
type Doc struct {
	ID       int    `json:"id"`
	DocID    string `json:"docId"`
	Filename string `json:"filename"`
	DocPath  string `json:"docpath"`
}

// Thread is a workspace chat thread.
type Thread struct {
	UserID *int   `json:"user_id"`
	Slug   string `json:"slug"`
	Name   string `json:"name"`
}

// Document is a node of the document storage tree.
type Document struct {
	Name  string     `json:"name"`
	Type  string     `json:"type"`
	ID    string     `json:"id,omitempty"`
	Title string     `json:"title,omitempty"`
	URL   string     `json:"url,omitempty"`
	Items []Document `json:"items,omitempty"`
}

// EmbeddingsUpdate adds and removes documents, by storage path, from a workspace.
type EmbeddingsUpdate struct {
	Adds    []string `json:"adds"`
	Deletes []string `json:"deletes"`
}

// Credentials authenticate against /request-token.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is an AnythingLLM user account.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Suspended int    `json:"suspended"`
}

// NewUser is the body of an admin user creation.
type NewUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserUpdate is the body of an admin user update. Nil fields are left untouched.
type UserUpdate struct {
	Username  *string `json:"username,omitempty"`
	Password  *string `json:"password,omitempty"`
	Role      *string `json:"role,omitempty"`
	Suspended *int    `json:"suspended,omitempty"`
}

// AuthToken is a one-time SSO token issued for a user.
type AuthToken struct {
	Token     string `json:"token"`
	LoginPath string `json:"loginPath"`
}

// clientImpl implements IClient.
type clientImpl struct {
	cfg        ClientConfig
	base       *url.URL
	headers    http.Header
	transport  *http.Transport
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	metrics    *metrics
	l          log.Logger
	sleep      func(ctx context.Context, d time.Duration) error

	closeOnce sync.Once
	closed    atomic.Bool
}
