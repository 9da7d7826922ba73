package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"sso-anythingllm-srv/internal/middleware"
	"sso-anythingllm-srv/internal/sso"
	ssoHTTP "sso-anythingllm-srv/internal/sso/delivery/http"
	ssoUsecase "sso-anythingllm-srv/internal/sso/usecase"
)

func (srv *HTTPServer) setupSSODomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc, err := ssoUsecase.New(srv.userUC, srv.apiKeyUC, srv.llm, srv.provider, sso.Config{
		PublicURL: srv.config.AnythingLLM.PublicURL,
	}, srv.l)
	if err != nil {
		return err
	}

	handler := ssoHTTP.New(srv.l, uc, srv.config.Cookie)
	handler.RegisterRoutes(r, mw)

	if srv.provider == nil {
		srv.l.Infof(ctx, "SSO domain registered (Keycloak browser login disabled)")
		return nil
	}
	srv.l.Infof(ctx, "SSO domain registered")
	return nil
}
