package http

import (
	"sso-anythingllm-srv/internal/health"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "SSO bridge between Keycloak and AnythingLLM"
	HealthVersion = "1.0.0"
	ServiceName   = "sso-anythingllm-srv"
)

// Handler - Interface cho health HTTP handler
type Handler interface {
	RegisterRoutes(r gin.IRoutes)
}

type handler struct {
	uc health.UseCase
}

// New - Factory
func New(uc health.UseCase) Handler {
	return &handler{uc: uc}
}

func (h *handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
	r.GET("/live", h.Live)
}
