package model

import "time"

// UserEventType names a user lifecycle transition.
type UserEventType string

const (
	UserEventCreated UserEventType = "user.created"
	UserEventUpdated UserEventType = "user.updated"
	UserEventDeleted UserEventType = "user.deleted"
)

// UserEvent is published whenever a mapping changes.
type UserEvent struct {
	Type          UserEventType `json:"type"`
	KeycloakID    string        `json:"keycloak_id"`
	AnythingLLMID int           `json:"anythingllm_id"`
	Role          Role          `json:"role,omitempty"`
	OccurredAt    time.Time     `json:"occurred_at"`
}
