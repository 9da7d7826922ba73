package middleware

import (
	"sso-anythingllm-srv/config"
	"sso-anythingllm-srv/pkg/keycloak"
	"sso-anythingllm-srv/pkg/log"
)

type Middleware struct {
	l            log.Logger
	verifier     keycloak.IVerifier
	cookieConfig config.CookieConfig
	internalKey  string
}

func New(l log.Logger, verifier keycloak.IVerifier, cookieConfig config.CookieConfig, internalKey string) Middleware {
	return Middleware{
		l:            l,
		verifier:     verifier,
		cookieConfig: cookieConfig,
		internalKey:  internalKey,
	}
}
