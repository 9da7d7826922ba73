package http

import (
	"net/http"

	"sso-anythingllm-srv/pkg/response"
	"sso-anythingllm-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Get an AnythingLLM login URL
// @Description Provision the caller and return a one-time AnythingLLM SSO login URL
// @Tags SSO
// @Produce json
// @Param Authorization header string true "Bearer Keycloak token"
// @Success 200 {object} urlResp
// @Failure 401 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/sso/url [get]
func (h *handler) URL(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.LoginURL(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "sso.delivery.http.URL: usecase LoginURL failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newURLResp(out))
}

// @Summary Redirect to AnythingLLM
// @Description Provision the caller and redirect the browser to AnythingLLM
// @Tags SSO
// @Param Authorization header string false "Bearer Keycloak token, or the auth cookie"
// @Success 302
// @Failure 401 {object} response.Resp
// @Router /api/v1/sso/redirect [get]
func (h *handler) Redirect(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.LoginURL(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "sso.delivery.http.Redirect: usecase LoginURL failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Redirect(http.StatusFound, out.URL)
}

// @Summary Start the Keycloak login
// @Description Set the state cookie and redirect the browser to Keycloak
// @Tags SSO
// @Success 302
// @Failure 501 {object} response.Resp
// @Router /api/v1/sso/login [get]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	state := uuid.NewString()
	target, err := h.uc.AuthCodeURL(state)
	if err != nil {
		h.l.Warnf(ctx, "sso.delivery.http.Login: usecase AuthCodeURL failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setStateCookie(c, state, h.cookieConfig.MaxAge)
	c.Redirect(http.StatusFound, target)
}

// @Summary Keycloak login callback
// @Description Exchange the authorization code and redirect the browser to AnythingLLM
// @Tags SSO
// @Param code query string true "Authorization code"
// @Param state query string true "Login state"
// @Success 302
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/sso/callback [get]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCallbackRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "sso.delivery.http.Callback: processCallbackRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	out, err := h.uc.Callback(ctx, req.Code)
	if err != nil {
		h.l.Errorf(ctx, "sso.delivery.http.Callback: usecase Callback failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Redirect(http.StatusFound, out.URL)
}
