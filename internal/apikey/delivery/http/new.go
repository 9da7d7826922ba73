package http

import (
	"sso-anythingllm-srv/internal/apikey"
	"sso-anythingllm-srv/internal/middleware"
	"sso-anythingllm-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho api key HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc apikey.UseCase
}

// New - Factory
func New(l log.Logger, uc apikey.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
