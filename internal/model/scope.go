package model

import "time"

// Scope is the identity extracted from a verified Keycloak token.
type Scope struct {
	Subject  string   `json:"sub"`
	Username string   `json:"username"`
	Email    string   `json:"email,omitempty"`
	Groups   []string `json:"groups,omitempty"`
	// ExpiresAt is the token expiry.
	ExpiresAt time.Time `json:"-"`
}
