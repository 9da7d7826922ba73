package sso

import "errors"

var (
	ErrIssueTokenFailed = errors.New("sso: issuing AnythingLLM auth token failed")
	ErrBrowserFlowOff   = errors.New("sso: keycloak browser flow is not configured")
	ErrInvalidCode      = errors.New("sso: authorization code is missing")
	ErrCodeExchange     = errors.New("sso: authorization code exchange failed")
	ErrInvalidPublicURL = errors.New("sso: invalid AnythingLLM public url")
)
