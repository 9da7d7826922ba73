package anythingllm

import "time"

const (
	// DefaultTimeout bounds a single attempt.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxRetries is the number of retries after the first attempt.
	DefaultMaxRetries = 3
	// DefaultBaseDelay is the backoff before the first retry.
	DefaultBaseDelay = 1 * time.Second
	// DefaultMaxDelay caps the backoff between two attempts.
	DefaultMaxDelay = 30 * time.Second
	// DefaultMaxIdleConnsPerHost sizes the per-client connection pool.
	DefaultMaxIdleConnsPerHost = 16

	// maxResponseBody limits how much of a response body is buffered.
	maxResponseBody = 10 << 20
	// maxErrorBody limits how much of a body is rendered by Error().
	maxErrorBody = 512
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"
	HeaderRequestID     = "X-Request-ID"
	HeaderRetryAfter    = "Retry-After"

	contentTypeJSON = "application/json"
	contentTypeText = "text/plain"
)

// API paths, relative to a base URL ending in /api.
const (
	PathWorkspaces      = "/v1/workspaces"
	PathWorkspace       = "/v1/workspace/%s"
	PathWorkspaceNew    = "/v1/workspace/new"
	PathWorkspaceEmbed  = "/v1/workspace/%s/update-embeddings"
	PathDocuments       = "/v1/documents"
	PathAuth            = "/v1/auth"
	PathRequestToken    = "/request-token"
	PathGenerateAPIKey  = "/admin/generate-api-key"
	PathAdminUsers      = "/v1/admin/users"
	PathAdminUserNew    = "/v1/admin/users/new"
	PathAdminUser       = "/v1/admin/users/%d"
	PathIssueAuthToken  = "/v1/users/%d/issue-auth-token"
	DefaultSSOLoginPath = "/sso/simple?token="
)

// DefaultConfig returns a ClientConfig with every tunable set. BaseURL still has to be filled in.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:    DefaultTimeout,
		MaxRetries: DefaultMaxRetries,
		BaseDelay:  DefaultBaseDelay,
		MaxDelay:   DefaultMaxDelay,
	}
}
