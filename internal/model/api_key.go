package model

import "time"

// APIKey is an AnythingLLM instance API key. Value is the plaintext secret.
type APIKey struct {
	ID        int64     `json:"id"`
	Value     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Masked returns the key with all but its last four characters hidden.
func (k APIKey) Masked() string {
	if len(k.Value) <= 4 {
		return "****"
	}
	return "****" + k.Value[len(k.Value)-4:]
}
