package http

import (
	"errors"
	"net/http"

	"sso-anythingllm-srv/internal/apikey"
	"sso-anythingllm-srv/internal/sso"
	"sso-anythingllm-srv/internal/user"
	pkgErrors "sso-anythingllm-srv/pkg/errors"
)

var (
	errInvalidState      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid login state")
	errInvalidCode       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Missing authorization code")
	errInvalidIdentity   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Token carries no subject")
	errCodeExchange      = pkgErrors.NewUnauthorizedHTTPError()
	errBrowserFlowOff    = pkgErrors.NewHTTPError(http.StatusNotImplemented, "Keycloak login is not configured")
	errProvisionFailed   = pkgErrors.NewHTTPError(http.StatusBadGateway, "AnythingLLM user provisioning failed")
	errIssueTokenFailed  = pkgErrors.NewHTTPError(http.StatusBadGateway, "AnythingLLM login token could not be issued")
	errAPIKeyUnavailable = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "AnythingLLM API key is unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, sso.ErrInvalidCode):
		return errInvalidCode
	case errors.Is(err, sso.ErrCodeExchange):
		return errCodeExchange
	case errors.Is(err, sso.ErrBrowserFlowOff):
		return errBrowserFlowOff
	case errors.Is(err, sso.ErrIssueTokenFailed):
		return errIssueTokenFailed
	case errors.Is(err, user.ErrInvalidIdentity):
		return errInvalidIdentity
	case errors.Is(err, user.ErrProvisionFailed):
		return errProvisionFailed
	case errors.Is(err, apikey.ErrAdminCredentials),
		errors.Is(err, apikey.ErrAdminTokenFailed),
		errors.Is(err, apikey.ErrGenerateFailed):
		return errAPIKeyUnavailable
	default:
		panic(err)
	}
}
