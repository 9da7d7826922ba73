package http

import (
	"net/http"

	"sso-anythingllm-srv/internal/health"
	"sso-anythingllm-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (h *handler) Health(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// Ready runs every dependency monitor (AnythingLLM, Postgres, Redis).
// @Summary Readiness Check
// @Description Check AnythingLLM, Postgres and Redis. Responds 503 when one of them is DOWN
// @Tags Health
// @Produce json
// @Success 200 {object} readyResp
// @Failure 503 {object} readyResp
// @Router /ready [get]
func (h *handler) Ready(c *gin.Context) {
	report := h.uc.Check(c.Request.Context())

	status := http.StatusOK
	if report.State != health.StateUp {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, h.newReadyResp(report))
}

// Live handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (h *handler) Live(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
