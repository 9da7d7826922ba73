package repository

import "sso-anythingllm-srv/internal/model"

type CreateOptions struct {
	KeycloakID    string
	AnythingLLMID int
	Username      string
	Role          model.Role
}

type UpdateOptions struct {
	KeycloakID    string
	AnythingLLMID int
	Username      string
	Role          model.Role
}

type ListOptions struct {
	Limit  int
	Offset int
}
