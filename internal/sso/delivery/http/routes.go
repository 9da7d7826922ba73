package http

import (
	"sso-anythingllm-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	g := r.Group("/api/v1/sso")
	{
		g.GET("/url", mw.Auth(), h.URL)
		g.GET("/redirect", mw.Auth(), h.Redirect)
		g.GET("/login", h.Login)
		g.GET("/callback", h.Callback)
	}
}
