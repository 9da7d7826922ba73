package http

import (
	"sso-anythingllm-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	users := r.Group("/api/v1/users")
	users.Use(mw.Auth())
	{
		users.GET("/me", h.Me)
	}

	internal := r.Group("/internal/users")
	internal.Use(mw.InternalAuth())
	{
		internal.GET("", h.List)
		internal.DELETE("/:keycloak_id", h.Delete)
	}
}
