package anythingllm

import (
	"context"

	"sso-anythingllm-srv/pkg/log"
)

// Transport issues requests against the API root with retry and typed errors.
type Transport interface {
	Execute(ctx context.Context, req Request) (*Response, error)
	Get(ctx context.Context, path string, opts ...CallOption) (*Response, error)
	Post(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error)
	Put(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error)
	Patch(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error)
	Delete(ctx context.Context, path string, opts ...CallOption) (*Response, error)
}

// Workspaces covers workspace and document endpoints.
type Workspaces interface {
	ListWorkspaces(ctx context.Context, opts ...CallOption) ([]Workspace, error)
	GetWorkspace(ctx context.Context, slug string, opts ...CallOption) (*Workspace, error)
	CreateWorkspace(ctx context.Context, in NewWorkspace, opts ...CallOption) (*Workspace, error)
	DeleteWorkspace(ctx context.Context, slug string, opts ...CallOption) error
	UpdateEmbeddings(ctx context.Context, slug string, in EmbeddingsUpdate, opts ...CallOption) (*Workspace, error)
	ListDocuments(ctx context.Context, opts ...CallOption) (*Document, error)
}

// Admin covers authentication, API key and user administration endpoints.
type Admin interface {
	CheckAuth(ctx context.Context, opts ...CallOption) error
	RequestToken(ctx context.Context, creds Credentials, opts ...CallOption) (string, error)
	GenerateAPIKey(ctx context.Context, opts ...CallOption) (string, error)
	ListUsers(ctx context.Context, opts ...CallOption) ([]User, error)
	CreateUser(ctx context.Context, in NewUser, opts ...CallOption) (*User, error)
	UpdateUser(ctx context.Context, id int, in UserUpdate, opts ...CallOption) error
	DeleteUser(ctx context.Context, id int, opts ...CallOption) error
	IssueAuthToken(ctx context.Context, userID int, opts ...CallOption) (*AuthToken, error)
}

// IClient is the AnythingLLM API client.
// Implementations are safe for concurrent use.
type IClient interface {
	Transport
	Workspaces
	Admin
	// Close releases the connection pool. Calling it more than once is a no-op.
	Close() error
}

// New validates cfg and returns a client owning its own connection pool.
func New(l log.Logger, cfg ClientConfig) (IClient, error) {
	return newClient(l, cfg)
}

// With runs fn with a fresh client and closes it on every exit path, panics included.
func With(l log.Logger, cfg ClientConfig, fn func(IClient) error) error {
	c, err := newClient(l, cfg)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(c)
}
