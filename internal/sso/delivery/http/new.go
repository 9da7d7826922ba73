package http

import (
	"sso-anythingllm-srv/config"
	"sso-anythingllm-srv/internal/middleware"
	"sso-anythingllm-srv/internal/sso"
	"sso-anythingllm-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho SSO HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l            log.Logger
	uc           sso.UseCase
	cookieConfig config.CookieConfig
}

// New - Factory
func New(l log.Logger, uc sso.UseCase, cookieConfig config.CookieConfig) Handler {
	return &handler{l: l, uc: uc, cookieConfig: cookieConfig}
}
