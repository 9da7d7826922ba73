package keycloak

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sso-anythingllm-srv/internal/model"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const testIssuer = "https://keycloak.test/realms/acme"

func newKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func sign(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return raw
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"iss":                testIssuer,
		"aud":                "sso-anythingllm",
		"sub":                "kc-123",
		"preferred_username": "jdoe",
		"email":              "jdoe@example.com",
		"groups":             []string{"/staff/llm-admins", "users"},
		"exp":                time.Now().Add(time.Hour).Unix(),
		"iat":                time.Now().Unix(),
	}
}

func testVerifier(key *rsa.PrivateKey, cfg Config) IVerifier {
	if cfg.IssuerURL == "" {
		cfg.IssuerURL = testIssuer
	}
	return NewVerifier(&oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&key.PublicKey}}, cfg)
}

func TestVerify(t *testing.T) {
	key := newKey(t)
	ctx := context.Background()

	t.Run("maps default claims", func(t *testing.T) {
		v := testVerifier(key, Config{ClientID: "sso-anythingllm"})
		sc, err := v.Verify(ctx, sign(t, key, validClaims()))
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), sc.ExpiresAt, time.Minute)
		sc.ExpiresAt = time.Time{}
		assert.Equal(t, model.Scope{
			Subject:  "kc-123",
			Username: "jdoe",
			Email:    "jdoe@example.com",
			Groups:   []string{"/staff/llm-admins", "users"},
		}, sc)
	})

	t.Run("custom claim names", func(t *testing.T) {
		claims := validClaims()
		claims["uid"] = "custom-id"
		claims["name"] = "John"
		claims["roles"] = "single"
		v := testVerifier(key, Config{ClientID: "sso-anythingllm", IDClaim: "uid", UsernameClaim: "name", GroupClaim: "roles"})
		sc, err := v.Verify(ctx, sign(t, key, claims))
		require.NoError(t, err)
		assert.Equal(t, "custom-id", sc.Subject)
		assert.Equal(t, "John", sc.Username)
		assert.Equal(t, []string{"single"}, sc.Groups)
	})

	t.Run("missing id claim", func(t *testing.T) {
		v := testVerifier(key, Config{SkipClientIDCheck: true, IDClaim: "uid"})
		_, err := v.Verify(ctx, sign(t, key, validClaims()))
		assert.ErrorIs(t, err, ErrMissingClaim)
	})

	t.Run("expired", func(t *testing.T) {
		claims := validClaims()
		claims["exp"] = time.Now().Add(-time.Minute).Unix()
		v := testVerifier(key, Config{SkipClientIDCheck: true})
		_, err := v.Verify(ctx, sign(t, key, claims))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		claims := validClaims()
		claims["iss"] = "https://evil.test"
		v := testVerifier(key, Config{SkipClientIDCheck: true})
		_, err := v.Verify(ctx, sign(t, key, claims))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong audience", func(t *testing.T) {
		v := testVerifier(key, Config{ClientID: "other-client"})
		_, err := v.Verify(ctx, sign(t, key, validClaims()))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("foreign signing key", func(t *testing.T) {
		v := testVerifier(key, Config{SkipClientIDCheck: true})
		_, err := v.Verify(ctx, sign(t, newKey(t), validClaims()))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		v := testVerifier(key, Config{SkipClientIDCheck: true})
		_, err := v.Verify(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestExchange(t *testing.T) {
	key := newKey(t)
	idToken := sign(t, key, validClaims())

	var withIDToken bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		body := map[string]any{"access_token": "at", "token_type": "Bearer", "expires_in": 300}
		if withIDToken {
			body["id_token"] = idToken
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	cfg := Config{IssuerURL: testIssuer, ClientID: "sso-anythingllm", RedirectURL: "http://sso/callback"}
	p := &providerImpl{
		verifierImpl: testVerifier(key, cfg).(*verifierImpl),
		oauth: &oauth2.Config{
			ClientID:    cfg.ClientID,
			RedirectURL: cfg.RedirectURL,
			Endpoint:    oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token"},
			Scopes:      DefaultScopes,
		},
	}

	t.Run("auth code url carries state", func(t *testing.T) {
		u := p.AuthCodeURL("st4te")
		assert.Contains(t, u, srv.URL+"/auth?")
		assert.Contains(t, u, "state=st4te")
		assert.Contains(t, u, "scope=openid+profile+email")
	})

	t.Run("verifies id token", func(t *testing.T) {
		withIDToken = true
		sc, err := p.Exchange(context.Background(), "the-code")
		require.NoError(t, err)
		assert.Equal(t, "kc-123", sc.Subject)
	})

	t.Run("missing id token", func(t *testing.T) {
		withIDToken = false
		_, err := p.Exchange(context.Background(), "the-code")
		assert.True(t, errors.Is(err, ErrMissingIDToken))
	})
}

func TestNewRequiresIssuer(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.ErrorIs(t, err, ErrIssuerRequired)
}
