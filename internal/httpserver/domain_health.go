package httpserver

import (
	"context"

	healthHTTP "sso-anythingllm-srv/internal/health/delivery/http"
	"sso-anythingllm-srv/internal/health/monitor"
	healthUsecase "sso-anythingllm-srv/internal/health/usecase"
	"sso-anythingllm-srv/pkg/anythingllm"
)

func (srv *HTTPServer) setupHealthDomain(ctx context.Context) {
	llmCfg := srv.config.AnythingLLM

	var creds *anythingllm.Credentials
	if llmCfg.AdminUser != "" && llmCfg.AdminPassword != "" {
		creds = &anythingllm.Credentials{Username: llmCfg.AdminUser, Password: llmCfg.AdminPassword}
	}

	uc := healthUsecase.New(srv.l, healthUsecase.DefaultTimeout,
		monitor.NewAnythingLLM(srv.llm, srv.apiKeyUC, creds, llmCfg.URL),
		monitor.NewPostgres(srv.postgresDB),
		monitor.NewRedis(srv.redisClient),
	)

	healthHTTP.New(uc).RegisterRoutes(srv.gin)

	srv.l.Infof(ctx, "Health domain registered")
}
