package http

import (
	"sso-anythingllm-srv/internal/apikey"
	"sso-anythingllm-srv/internal/model"
	"sso-anythingllm-srv/pkg/response"
)

type listReq struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

func (r listReq) toInput() apikey.ListInput {
	return apikey.ListInput{Limit: r.Limit, Offset: r.Offset}
}

type deleteReq struct {
	ID int64
}

type apiKeyResp struct {
	ID        int64             `json:"id"`
	Key       string            `json:"key"`
	CreatedAt response.DateTime `json:"created_at"`
}

type listResp struct {
	Total int          `json:"total"`
	Keys  []apiKeyResp `json:"keys"`
}

func (h *handler) newAPIKeyResp(k model.APIKey) apiKeyResp {
	return apiKeyResp{
		ID:        k.ID,
		Key:       k.Masked(),
		CreatedAt: response.DateTime(k.CreatedAt),
	}
}

func (h *handler) newListResp(total int, keys []model.APIKey) listResp {
	resp := listResp{Total: total, Keys: make([]apiKeyResp, 0, len(keys))}
	for _, k := range keys {
		resp.Keys = append(resp.Keys, h.newAPIKeyResp(k))
	}
	return resp
}
