package middleware

import (
	"crypto/subtle"
	"strings"

	"sso-anythingllm-srv/pkg/log"
	"sso-anythingllm-srv/pkg/response"
	"sso-anythingllm-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth verifies the Keycloak token from the Authorization header, falling back to the auth cookie,
// and stores the caller scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader(headerAuthorization))
		if tokenString == "" {
			tokenString, _ = c.Cookie(m.cookieConfig.Name)
		}
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		sc, err := m.verifier.Verify(ctx, tokenString)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: Verify failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx = scope.SetScopeToContext(ctx, sc)
		ctx = log.WithSubject(ctx, sc.Subject)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// InternalAuth checks the shared internal key sent in X-Internal-Key or as a bearer token.
// With no key configured every request is rejected.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(headerInternalKey)
		if key == "" {
			key = bearerToken(c.GetHeader(headerAuthorization))
		}
		if m.internalKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// bearerToken accepts both "Bearer <token>" and a raw token.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}
	return header
}
