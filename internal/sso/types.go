package sso

import "sso-anythingllm-srv/internal/model"

// Config holds the browser facing AnythingLLM address.
type Config struct {
	PublicURL string
}

type LoginOutput struct {
	URL  string
	User model.User
}
