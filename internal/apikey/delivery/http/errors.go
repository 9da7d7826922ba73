package http

import (
	"errors"
	"net/http"

	"sso-anythingllm-srv/internal/apikey"
	pkgErrors "sso-anythingllm-srv/pkg/errors"
)

var (
	errInvalidID         = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid api key id")
	errInvalidQuery      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid pagination parameters")
	errKeyNotFound       = pkgErrors.NewHTTPError(http.StatusNotFound, "API key not found")
	errStaticKey         = pkgErrors.NewHTTPError(http.StatusConflict, "A static API key is configured")
	errAdminCredentials  = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "AnythingLLM admin credentials are not configured")
	errAdminTokenFailed  = pkgErrors.NewHTTPError(http.StatusBadGateway, "AnythingLLM admin login failed")
	errGenerateKeyFailed = pkgErrors.NewHTTPError(http.StatusBadGateway, "AnythingLLM API key generation failed")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, apikey.ErrKeyNotFound):
		return errKeyNotFound
	case errors.Is(err, apikey.ErrStaticKey):
		return errStaticKey
	case errors.Is(err, apikey.ErrAdminCredentials):
		return errAdminCredentials
	case errors.Is(err, apikey.ErrAdminTokenFailed):
		return errAdminTokenFailed
	case errors.Is(err, apikey.ErrGenerateFailed):
		return errGenerateKeyFailed
	default:
		panic(err)
	}
}
