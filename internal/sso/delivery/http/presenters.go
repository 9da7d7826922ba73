package http

import "sso-anythingllm-srv/internal/sso"

type callbackReq struct {
	Code  string `form:"code"`
	State string `form:"state"`
}

type urlResp struct {
	URL           string `json:"url"`
	AnythingLLMID int    `json:"anythingllm_id"`
}

func (h *handler) newURLResp(o sso.LoginOutput) urlResp {
	return urlResp{URL: o.URL, AnythingLLMID: o.User.AnythingLLMID}
}
