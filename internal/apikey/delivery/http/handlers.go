package http

import (
	"sso-anythingllm-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List stored AnythingLLM API keys
// @Description Return masked keys, newest first
// @Tags API Keys
// @Produce json
// @Param X-Internal-Key header string true "Internal key"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} listResp
// @Failure 401 {object} response.Resp
// @Router /internal/api-keys [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "apikey.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	keys, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "apikey.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	total, err := h.uc.Count(ctx)
	if err != nil {
		h.l.Errorf(ctx, "apikey.delivery.http.List: usecase Count failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(total, keys))
}

// @Summary Rotate the AnythingLLM API key
// @Description Generate a new key with the admin account and make it current
// @Tags API Keys
// @Produce json
// @Param X-Internal-Key header string true "Internal key"
// @Success 200 {object} apiKeyResp
// @Failure 409 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /internal/api-keys/rotate [post]
func (h *handler) Rotate(c *gin.Context) {
	ctx := c.Request.Context()

	k, err := h.uc.Rotate(ctx)
	if err != nil {
		h.l.Errorf(ctx, "apikey.delivery.http.Rotate: usecase Rotate failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAPIKeyResp(k))
}

// @Summary Delete a stored API key
// @Tags API Keys
// @Produce json
// @Param X-Internal-Key header string true "Internal key"
// @Param id path int true "Key ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /internal/api-keys/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDeleteRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "apikey.delivery.http.Delete: processDeleteRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, req.ID); err != nil {
		h.l.Errorf(ctx, "apikey.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
