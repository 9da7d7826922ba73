package keycloak

import (
	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// Config describes the realm and the claims read from its tokens.
type Config struct {
	IssuerURL         string
	ClientID          string
	ClientSecret      string
	RedirectURL       string
	Scopes            []string
	SkipClientIDCheck bool

	IDClaim       string
	UsernameClaim string
	GroupClaim    string
}

type verifierImpl struct {
	verifier *oidc.IDTokenVerifier
	claims   claimNames
}

type providerImpl struct {
	*verifierImpl
	oauth *oauth2.Config
}

type claimNames struct {
	id       string
	username string
	group    string
}
