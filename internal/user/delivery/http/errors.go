package http

import (
	"errors"
	"net/http"

	"sso-anythingllm-srv/internal/apikey"
	"sso-anythingllm-srv/internal/user"
	pkgErrors "sso-anythingllm-srv/pkg/errors"
)

var (
	errInvalidKeycloakID = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid keycloak id")
	errInvalidQuery      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid pagination parameters")
	errUserNotFound      = pkgErrors.NewHTTPError(http.StatusNotFound, "User not found")
	errProvisionFailed   = pkgErrors.NewHTTPError(http.StatusBadGateway, "AnythingLLM user provisioning failed")
	errDeprovisionFailed = pkgErrors.NewHTTPError(http.StatusBadGateway, "AnythingLLM user deletion failed")
	errAPIKeyUnavailable = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "AnythingLLM API key is unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return errUserNotFound
	case errors.Is(err, user.ErrProvisionFailed):
		return errProvisionFailed
	case errors.Is(err, user.ErrDeprovisionFailed):
		return errDeprovisionFailed
	case errors.Is(err, apikey.ErrAdminCredentials),
		errors.Is(err, apikey.ErrAdminTokenFailed),
		errors.Is(err, apikey.ErrGenerateFailed):
		return errAPIKeyUnavailable
	default:
		panic(err)
	}
}
