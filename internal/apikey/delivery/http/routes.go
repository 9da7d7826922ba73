package http

import (
	"sso-anythingllm-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	internal := r.Group("/internal/api-keys")
	internal.Use(mw.InternalAuth())
	{
		internal.GET("", h.List)
		internal.POST("/rotate", h.Rotate)
		internal.DELETE("/:id", h.Delete)
	}
}
