package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"sso-anythingllm-srv/internal/apikey"
	apikeyHTTP "sso-anythingllm-srv/internal/apikey/delivery/http"
	apikeyJob "sso-anythingllm-srv/internal/apikey/delivery/job"
	apikeyPostgre "sso-anythingllm-srv/internal/apikey/repository/postgre"
	apikeyUsecase "sso-anythingllm-srv/internal/apikey/usecase"
	"sso-anythingllm-srv/internal/middleware"
)

func (srv *HTTPServer) setupAPIKeyDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := apikeyPostgre.New(srv.postgresDB, srv.encrypter, srv.l)

	llmCfg := srv.config.AnythingLLM
	srv.apiKeyUC = apikeyUsecase.New(repo, srv.llm, srv.redisClient, srv.encrypter, apikey.Config{
		StaticKey:     llmCfg.APIKey,
		AdminUser:     llmCfg.AdminUser,
		AdminPassword: llmCfg.AdminPassword,
		AdminTokenTTL: srv.config.Cache.AdminTokenTTL,
		APIKeyTTL:     srv.config.Cache.APIKeyTTL,
	}, srv.l)

	handler := apikeyHTTP.New(srv.l, srv.apiKeyUC)
	handler.RegisterRoutes(r, mw)

	if spec := srv.config.Jobs.APIKeyRotation; spec != "" {
		scheduler, err := apikeyJob.New(srv.l, srv.apiKeyUC, spec)
		if err != nil {
			return err
		}
		srv.scheduler = scheduler
		srv.l.Infof(ctx, "API key rotation scheduled at %q", spec)
	}

	srv.l.Infof(ctx, "API key domain registered")
	return nil
}
