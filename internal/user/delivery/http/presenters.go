package http

import (
	"sso-anythingllm-srv/internal/model"
	"sso-anythingllm-srv/internal/user"
	"sso-anythingllm-srv/pkg/paginator"
	"sso-anythingllm-srv/pkg/response"
)

type listReq struct {
	paginator.PaginateQuery
}

func (r listReq) toInput() user.ListInput {
	return user.ListInput{Paginator: r.PaginateQuery}
}

type deleteReq struct {
	KeycloakID string
}

type userResp struct {
	KeycloakID    string            `json:"keycloak_id"`
	AnythingLLMID int               `json:"anythingllm_id"`
	Username      string            `json:"username"`
	Role          string            `json:"role"`
	CreatedAt     response.DateTime `json:"created_at"`
	UpdatedAt     response.DateTime `json:"updated_at"`
}

type meResp struct {
	User    userResp `json:"user"`
	Created bool     `json:"created"`
	Updated bool     `json:"updated"`
}

type listResp struct {
	Users     []userResp                  `json:"users"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newUserResp(u model.User) userResp {
	return userResp{
		KeycloakID:    u.KeycloakID,
		AnythingLLMID: u.AnythingLLMID,
		Username:      u.Username,
		Role:          u.Role.String(),
		CreatedAt:     response.DateTime(u.CreatedAt),
		UpdatedAt:     response.DateTime(u.UpdatedAt),
	}
}

func (h *handler) newMeResp(o user.ProvisionOutput) meResp {
	return meResp{User: h.newUserResp(o.User), Created: o.Created, Updated: o.Updated}
}

func (h *handler) newListResp(o user.ListOutput) listResp {
	resp := listResp{
		Users:     make([]userResp, 0, len(o.Users)),
		Paginator: o.Paginator.ToResponse(),
	}
	for _, u := range o.Users {
		resp.Users = append(resp.Users, h.newUserResp(u))
	}
	return resp
}
