package http

import (
	"sso-anythingllm-srv/internal/health"
	"sso-anythingllm-srv/pkg/response"
)

type componentResp struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	URL       string `json:"url,omitempty"`
	Error     string `json:"error,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}

type readyResp struct {
	Status     string                   `json:"status"`
	Service    string                   `json:"service"`
	Version    string                   `json:"version"`
	CheckedAt  response.DateTime        `json:"checked_at"`
	Components map[string]componentResp `json:"components"`
}

func (h *handler) newReadyResp(r health.Report) readyResp {
	resp := readyResp{
		Status:     string(r.State),
		Service:    ServiceName,
		Version:    HealthVersion,
		CheckedAt:  response.DateTime(r.CheckedAt),
		Components: make(map[string]componentResp, len(r.Components)),
	}
	for name, st := range r.Components {
		resp.Components[name] = componentResp{
			Status:    string(st.State),
			Message:   st.Message,
			URL:       st.URL,
			Error:     st.Error,
			LatencyMS: st.Latency.Milliseconds(),
		}
	}
	return resp
}
