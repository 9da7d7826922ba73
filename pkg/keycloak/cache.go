package keycloak

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"sso-anythingllm-srv/internal/model"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

type cachedVerifier struct {
	next  IVerifier
	cache *lru.LRU[string, model.Scope]
	now   func() time.Time
}

// NewCachedVerifier remembers successful verifications for up to ttl and never past the token
// expiry. Failures are not cached. A non-positive size or ttl returns next unchanged.
func NewCachedVerifier(next IVerifier, size int, ttl time.Duration) IVerifier {
	if size <= 0 || ttl <= 0 {
		return next
	}
	return &cachedVerifier{
		next:  next,
		cache: lru.NewLRU[string, model.Scope](size, nil, ttl),
		now:   time.Now,
	}
}

func (v *cachedVerifier) Verify(ctx context.Context, rawToken string) (model.Scope, error) {
	key := tokenKey(rawToken)
	if sc, ok := v.cache.Get(key); ok {
		if v.now().Before(sc.ExpiresAt) {
			return sc, nil
		}
		v.cache.Remove(key)
	}

	sc, err := v.next.Verify(ctx, rawToken)
	if err != nil {
		return model.Scope{}, err
	}
	if !sc.ExpiresAt.IsZero() {
		v.cache.Add(key, sc)
	}
	return sc, nil
}

// tokenKey keeps raw bearer tokens out of the cache.
func tokenKey(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(sum[:])
}
