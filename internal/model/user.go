package model

import "time"

// User maps a Keycloak identity to its AnythingLLM account.
type User struct {
	KeycloakID    string    `json:"keycloak_id"`
	AnythingLLMID int       `json:"anythingllm_id"`
	Username      string    `json:"username"`
	Role          Role      `json:"role"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
