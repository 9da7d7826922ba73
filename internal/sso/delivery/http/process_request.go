package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// processCallbackRequest checks the state parameter against the state cookie and clears the cookie.
func (h *handler) processCallbackRequest(c *gin.Context) (callbackReq, error) {
	var req callbackReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidCode
	}

	state, err := c.Cookie(h.cookieConfig.StateName)
	h.setStateCookie(c, "", -1)
	if err != nil || state == "" || subtle.ConstantTimeCompare([]byte(state), []byte(req.State)) != 1 {
		return req, errInvalidState
	}
	return req, nil
}

func (h *handler) setStateCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieConfig.StateName, value, maxAge, "/", h.cookieConfig.Domain, h.cookieConfig.Secure, true)
}
