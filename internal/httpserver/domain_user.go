package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"sso-anythingllm-srv/internal/middleware"
	"sso-anythingllm-srv/internal/model"
	"sso-anythingllm-srv/internal/user"
	userHTTP "sso-anythingllm-srv/internal/user/delivery/http"
	userPostgre "sso-anythingllm-srv/internal/user/repository/postgre"
	userUsecase "sso-anythingllm-srv/internal/user/usecase"
	"sso-anythingllm-srv/pkg/keycloak"
)

func (srv *HTTPServer) setupUserDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	correlations, err := keycloak.ParseGroupCorrelations(srv.config.Keycloak.GroupCorrelations)
	if err != nil {
		return err
	}

	repo := userPostgre.New(srv.postgresDB, srv.l)

	srv.userUC = userUsecase.New(repo, srv.llm, srv.apiKeyUC, srv.producer, user.Config{
		Correlations:    correlations,
		DefaultRole:     model.Role(srv.config.Keycloak.DefaultRole),
		DefaultPassword: srv.config.AnythingLLM.DefaultUserPassword,
	}, srv.l)

	handler := userHTTP.New(srv.l, srv.userUC)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "User domain registered with %d group correlations", len(correlations))
	return nil
}
