package scope

import (
	"context"

	"sso-anythingllm-srv/internal/model"
)

type scopeCtxKey struct{}

// SetScopeToContext returns a copy of ctx carrying sc.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the scope set by the auth middleware.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(model.Scope)
	return sc, ok && sc.Subject != ""
}
