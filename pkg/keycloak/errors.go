package keycloak

import "errors"

var (
	ErrInvalidToken       = errors.New("keycloak: invalid token")
	ErrMissingClaim       = errors.New("keycloak: required claim missing")
	ErrMissingIDToken     = errors.New("keycloak: token response has no id_token")
	ErrInvalidCorrelation = errors.New("keycloak: invalid group correlation")
	ErrIssuerRequired     = errors.New("keycloak: issuer url is required")
	ErrRedirectRequired   = errors.New("keycloak: redirect url is required for the code flow")
)
