package http

import (
	"errors"
	"strings"

	pkgErrors "sso-anythingllm-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func (h *handler) processListRequest(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return req, errInvalidQuery
		}
		collector := pkgErrors.NewValidationErrorCollector()
		for _, fe := range verrs {
			collector.Add(strings.ToLower(fe.Field()), "failed on "+fe.Tag())
		}
		return req, collector
	}
	return req, nil
}

func (h *handler) processDeleteRequest(c *gin.Context) (deleteReq, error) {
	id := strings.TrimSpace(c.Param("keycloak_id"))
	if id == "" {
		return deleteReq{}, errInvalidKeycloakID
	}
	return deleteReq{KeycloakID: id}, nil
}
