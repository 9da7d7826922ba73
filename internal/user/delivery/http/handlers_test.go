package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sso-anythingllm-srv/config"
	"sso-anythingllm-srv/internal/apikey"
	"sso-anythingllm-srv/internal/middleware"
	"sso-anythingllm-srv/internal/model"
	"sso-anythingllm-srv/internal/user"
	"sso-anythingllm-srv/pkg/log"
	"sso-anythingllm-srv/pkg/paginator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct{}

func (fakeVerifier) Verify(_ context.Context, raw string) (model.Scope, error) {
	if raw != "good" {
		return model.Scope{}, errors.New("bad token")
	}
	return model.Scope{Subject: "kc-1", Username: "jdoe", Groups: []string{"admins"}}, nil
}

type fakeUseCase struct {
	user.UseCase
	provisionErr error
	provisioned  []model.Scope
	listed       []user.ListInput
	deleted      []string
}

func (f *fakeUseCase) Provision(_ context.Context, sc model.Scope) (user.ProvisionOutput, error) {
	f.provisioned = append(f.provisioned, sc)
	if f.provisionErr != nil {
		return user.ProvisionOutput{}, f.provisionErr
	}
	return user.ProvisionOutput{
		User:    model.User{KeycloakID: sc.Subject, AnythingLLMID: 7, Username: sc.Username, Role: model.RoleAdmin},
		Created: true,
	}, nil
}

func (f *fakeUseCase) List(_ context.Context, in user.ListInput) (user.ListOutput, error) {
	f.listed = append(f.listed, in)
	return user.ListOutput{
		Users:     []model.User{{KeycloakID: "kc-1", AnythingLLMID: 7, Role: model.RoleDefault}},
		Paginator: paginator.Paginator{Total: 11, Count: 1, PerPage: 10, CurrentPage: 2},
	}, nil
}

func (f *fakeUseCase) Deprovision(_ context.Context, id string) error {
	switch id {
	case "missing":
		return user.ErrUserNotFound
	case "broken":
		return user.ErrDeprovisionFailed
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func newTestRouter(uc user.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery(log.NewNop()))
	mw := middleware.New(log.NewNop(), fakeVerifier{}, config.CookieConfig{Name: "sso_access_token"}, "k")
	New(log.NewNop(), uc).RegisterRoutes(r.Group(""), mw)
	return r
}

func do(r *gin.Engine, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMe(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := do(r, http.MethodGet, "/api/v1/users/me", map[string]string{"Authorization": "Bearer good"})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			User struct {
				KeycloakID    string `json:"keycloak_id"`
				AnythingLLMID int    `json:"anythingllm_id"`
				Role          string `json:"role"`
			} `json:"user"`
			Created bool `json:"created"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "kc-1", body.Data.User.KeycloakID)
	assert.Equal(t, 7, body.Data.User.AnythingLLMID)
	assert.Equal(t, "admin", body.Data.User.Role)
	assert.True(t, body.Data.Created)
	require.Len(t, uc.provisioned, 1)
	assert.Equal(t, []string{"admins"}, uc.provisioned[0].Groups)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/v1/users/me", nil).Code)

	uc.provisionErr = user.ErrProvisionFailed
	assert.Equal(t, http.StatusBadGateway, do(r, http.MethodGet, "/api/v1/users/me", map[string]string{"Authorization": "Bearer good"}).Code)

	uc.provisionErr = apikey.ErrAdminCredentials
	assert.Equal(t, http.StatusServiceUnavailable, do(r, http.MethodGet, "/api/v1/users/me", map[string]string{"Authorization": "Bearer good"}).Code)
}

func TestInternalUsers(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)
	internal := map[string]string{"X-Internal-Key": "k"}

	w := do(r, http.MethodGet, "/internal/users?page=2&limit=10", internal)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"keycloak_id":"kc-1"`)
	assert.Contains(t, w.Body.String(), `"total_pages":2`)
	assert.Equal(t, paginator.PaginateQuery{Page: 2, Limit: 10}, uc.listed[0].Paginator)
	w = do(r, http.MethodGet, "/internal/users?limit=-1", internal)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"limit"`)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/internal/users?limit=abc", internal).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/internal/users?limit=500", internal).Code)

	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/internal/users/kc-2", internal).Code)
	assert.Equal(t, []string{"kc-2"}, uc.deleted)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/internal/users/missing", internal).Code)
	assert.Equal(t, http.StatusBadGateway, do(r, http.MethodDelete, "/internal/users/broken", internal).Code)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodDelete, "/internal/users/kc-2", nil).Code)
}
