package httpserver

import (
	"context"

	"sso-anythingllm-srv/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.verifier, srv.config.Cookie, srv.config.InternalConfig.InternalKey)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	r := srv.gin.Group("")

	// apikey first: user and sso authenticate their AnythingLLM calls with its keys.
	if err := srv.setupAPIKeyDomain(ctx, r, mw); err != nil {
		return err
	}
	if err := srv.setupUserDomain(ctx, r, mw); err != nil {
		return err
	}
	if err := srv.setupSSODomain(ctx, r, mw); err != nil {
		return err
	}
	srv.setupHealthDomain(ctx)

	if srv.config.InternalConfig.InternalKey == "" {
		srv.l.Warnf(ctx, "Internal key is empty, /internal routes reject every request")
	}
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.RequestID())
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(middleware.Metrics(srv.registry))
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.registry, promhttp.HandlerOpts{})))

	// Swagger UI and docs
	if srv.environment != "production" {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"), // Use relative path
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}
