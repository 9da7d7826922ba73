package keycloak

const (
	DefaultIDClaim       = "sub"
	DefaultUsernameClaim = "preferred_username"
	DefaultGroupClaim    = "groups"
	emailClaim           = "email"

	correlationSeparator = ";"
	pairSeparator        = ","
)

// DefaultScopes are requested during the authorization code flow.
var DefaultScopes = []string{"openid", "profile", "email"}
