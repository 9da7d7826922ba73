package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sso-anythingllm-srv/internal/apikey"
	"sso-anythingllm-srv/internal/model"
	"sso-anythingllm-srv/pkg/anythingllm"
	"sso-anythingllm-srv/pkg/redis"
)

type cachedAPIKey struct {
	ID        int64     `json:"id"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminToken returns the cached admin session token or requests a new one.
func (uc *implUseCase) AdminToken(ctx context.Context) (string, error) {
	if token, ok := uc.readSecret(ctx, cacheKeyAdminToken); ok {
		return token, nil
	}
	if uc.cfg.AdminUser == "" || uc.cfg.AdminPassword == "" {
		return "", apikey.ErrAdminCredentials
	}

	token, err := uc.client.RequestToken(ctx, anythingllm.Credentials{
		Username: uc.cfg.AdminUser,
		Password: uc.cfg.AdminPassword,
	})
	if err != nil {
		uc.l.Errorf(ctx, "apikey.usecase.AdminToken: RequestToken failed: %v", err)
		return "", fmt.Errorf("%w: %w", apikey.ErrAdminTokenFailed, err)
	}
	uc.writeSecret(ctx, cacheKeyAdminToken, token, uc.cfg.AdminTokenTTL)
	return token, nil
}

func (uc *implUseCase) dropAdminToken(ctx context.Context) {
	if err := uc.cache.Delete(ctx, cacheKeyAdminToken); err != nil {
		uc.l.Warnf(ctx, "apikey.usecase: admin token cache delete failed: %v", err)
	}
}

func (uc *implUseCase) cachedKey(ctx context.Context) (model.APIKey, bool) {
	raw, ok := uc.readSecret(ctx, cacheKeyAPIKey)
	if !ok {
		return model.APIKey{}, false
	}
	var c cachedAPIKey
	if err := json.Unmarshal([]byte(raw), &c); err != nil || c.Value == "" {
		uc.l.Warnf(ctx, "apikey.usecase: discarding malformed cached key")
		return model.APIKey{}, false
	}
	return model.APIKey{ID: c.ID, Value: c.Value, CreatedAt: c.CreatedAt}, true
}

func (uc *implUseCase) cacheKey(ctx context.Context, key model.APIKey) {
	raw, err := json.Marshal(cachedAPIKey{ID: key.ID, Value: key.Value, CreatedAt: key.CreatedAt})
	if err != nil {
		return
	}
	uc.writeSecret(ctx, cacheKeyAPIKey, string(raw), uc.cfg.APIKeyTTL)
}

// Cache failures only cost a round trip to the source, so they are logged and ignored.
func (uc *implUseCase) readSecret(ctx context.Context, key string) (string, bool) {
	sealed, err := uc.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.ErrNotFound) {
			uc.l.Warnf(ctx, "apikey.usecase: cache get %s failed: %v", key, err)
		}
		return "", false
	}
	plain, err := uc.enc.Decrypt(sealed)
	if err != nil {
		uc.l.Warnf(ctx, "apikey.usecase: cache entry %s unreadable: %v", key, err)
		return "", false
	}
	return plain, true
}

func (uc *implUseCase) writeSecret(ctx context.Context, key, value string, ttl time.Duration) {
	sealed, err := uc.enc.Encrypt(value)
	if err != nil {
		uc.l.Warnf(ctx, "apikey.usecase: cache encrypt %s failed: %v", key, err)
		return
	}
	if err := uc.cache.Set(ctx, key, sealed, ttl); err != nil {
		uc.l.Warnf(ctx, "apikey.usecase: cache set %s failed: %v", key, err)
	}
}
