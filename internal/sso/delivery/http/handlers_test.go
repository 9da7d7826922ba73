package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"sso-anythingllm-srv/config"
	"sso-anythingllm-srv/internal/middleware"
	"sso-anythingllm-srv/internal/model"
	"sso-anythingllm-srv/internal/sso"
	"sso-anythingllm-srv/internal/user"
	"sso-anythingllm-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct{}

func (fakeVerifier) Verify(_ context.Context, raw string) (model.Scope, error) {
	if raw != "good" {
		return model.Scope{}, errors.New("bad token")
	}
	return model.Scope{Subject: "kc-1"}, nil
}

type fakeUseCase struct {
	loginErr    error
	flowErr     error
	callbackErr error
	code        string
}

func (f *fakeUseCase) LoginURL(_ context.Context, sc model.Scope) (sso.LoginOutput, error) {
	if f.loginErr != nil {
		return sso.LoginOutput{}, f.loginErr
	}
	return sso.LoginOutput{URL: "https://llm.example.com/sso/simple?token=t-" + sc.Subject, User: model.User{AnythingLLMID: 3}}, nil
}

func (f *fakeUseCase) AuthCodeURL(state string) (string, error) {
	if f.flowErr != nil {
		return "", f.flowErr
	}
	return "https://kc.example.com/auth?state=" + state, nil
}

func (f *fakeUseCase) Callback(_ context.Context, code string) (sso.LoginOutput, error) {
	f.code = code
	if f.callbackErr != nil {
		return sso.LoginOutput{}, f.callbackErr
	}
	return sso.LoginOutput{URL: "https://llm.example.com/sso/simple?token=cb"}, nil
}

var cookieCfg = config.CookieConfig{Name: "sso_access_token", StateName: "sso_oauth_state", MaxAge: 300}

func newTestRouter(uc sso.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery(log.NewNop()))
	mw := middleware.New(log.NewNop(), fakeVerifier{}, cookieCfg, "")
	New(log.NewNop(), uc, cookieCfg).RegisterRoutes(r.Group(""), mw)
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authed(path string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer good")
	return req
}

func TestURL(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := serve(r, authed("/api/v1/sso/url"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"url":"https://llm.example.com/sso/simple?token=t-kc-1"`)
	assert.Contains(t, w.Body.String(), `"anythingllm_id":3`)

	assert.Equal(t, http.StatusUnauthorized, serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/sso/url", nil)).Code)

	uc.loginErr = sso.ErrIssueTokenFailed
	assert.Equal(t, http.StatusBadGateway, serve(r, authed("/api/v1/sso/url")).Code)

	uc.loginErr = user.ErrProvisionFailed
	assert.Equal(t, http.StatusBadGateway, serve(r, authed("/api/v1/sso/url")).Code)

	uc.loginErr = errors.New("unexpected")
	assert.Equal(t, http.StatusInternalServerError, serve(r, authed("/api/v1/sso/url")).Code)
}

func TestRedirect(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sso/redirect", nil)
	req.AddCookie(&http.Cookie{Name: "sso_access_token", Value: "good"})
	w := serve(r, req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://llm.example.com/sso/simple?token=t-kc-1", w.Header().Get("Location"))
}

func TestLoginAndCallback(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/sso/login", nil))
	require.Equal(t, http.StatusFound, w.Code)

	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	state := loc.Query().Get("state")
	require.NotEmpty(t, state)

	var stateCookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "sso_oauth_state" {
			stateCookie = ck
		}
	}
	require.NotNil(t, stateCookie)
	assert.Equal(t, state, stateCookie.Value)
	assert.True(t, stateCookie.HttpOnly)

	t.Run("valid state", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sso/callback?code=abc&state="+state, nil)
		req.AddCookie(&http.Cookie{Name: "sso_oauth_state", Value: state})
		w := serve(r, req)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://llm.example.com/sso/simple?token=cb", w.Header().Get("Location"))
		assert.Equal(t, "abc", uc.code)
	})

	t.Run("state mismatch", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sso/callback?code=abc&state=other", nil)
		req.AddCookie(&http.Cookie{Name: "sso_oauth_state", Value: state})
		assert.Equal(t, http.StatusBadRequest, serve(r, req).Code)
	})

	t.Run("missing cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sso/callback?code=abc&state="+state, nil)
		assert.Equal(t, http.StatusBadRequest, serve(r, req).Code)
	})

	t.Run("exchange failure", func(t *testing.T) {
		uc.callbackErr = sso.ErrCodeExchange
		defer func() { uc.callbackErr = nil }()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sso/callback?code=abc&state="+state, nil)
		req.AddCookie(&http.Cookie{Name: "sso_oauth_state", Value: state})
		assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)
	})
}

func TestLoginDisabled(t *testing.T) {
	r := newTestRouter(&fakeUseCase{flowErr: sso.ErrBrowserFlowOff})
	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/sso/login", nil))
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}
