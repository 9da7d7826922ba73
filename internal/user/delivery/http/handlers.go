package http

import (
	"sso-anythingllm-srv/pkg/response"
	"sso-anythingllm-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Current user mapping
// @Description Provision the caller in AnythingLLM if needed and return the mapping
// @Tags Users
// @Produce json
// @Param Authorization header string true "Bearer Keycloak token"
// @Success 200 {object} meResp
// @Failure 401 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/users/me [get]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.Provision(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Me: usecase Provision failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMeResp(out))
}

// @Summary List user mappings
// @Tags Users
// @Produce json
// @Param X-Internal-Key header string true "Internal key"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} listResp
// @Failure 401 {object} response.Resp
// @Router /internal/users [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "user.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// @Summary Deprovision a user
// @Description Delete the AnythingLLM account and the mapping of a Keycloak identity
// @Tags Users
// @Produce json
// @Param X-Internal-Key header string true "Internal key"
// @Param keycloak_id path string true "Keycloak subject"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /internal/users/{keycloak_id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDeleteRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "user.delivery.http.Delete: processDeleteRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.Deprovision(ctx, req.KeycloakID); err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Delete: usecase Deprovision failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
