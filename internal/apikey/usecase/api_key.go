package usecase

import (
	"context"
	"errors"
	"fmt"

	"sso-anythingllm-srv/internal/apikey"
	"sso-anythingllm-srv/internal/apikey/repository"
	"sso-anythingllm-srv/internal/model"
	"sso-anythingllm-srv/pkg/anythingllm"
)

// Current returns the cached key, else the latest stored key, else a freshly generated one.
// Concurrent callers share one lookup so a cold start generates a single key.
func (uc *implUseCase) Current(ctx context.Context) (model.APIKey, error) {
	if uc.cfg.StaticKey != "" {
		return model.APIKey{Value: uc.cfg.StaticKey}, nil
	}

	v, err, _ := uc.group.Do(cacheKeyAPIKey, func() (any, error) {
		if key, ok := uc.cachedKey(ctx); ok {
			return key, nil
		}

		key, err := uc.repo.GetLatest(ctx)
		if err == nil {
			uc.cacheKey(ctx, key)
			return key, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			uc.l.Errorf(ctx, "apikey.usecase.Current: GetLatest failed: %v", err)
			return model.APIKey{}, err
		}

		uc.l.Infof(ctx, "apikey.usecase.Current: no stored key, generating one")
		return uc.generate(ctx)
	})
	if err != nil {
		return model.APIKey{}, err
	}
	return v.(model.APIKey), nil
}

// Generate creates a new AnythingLLM API key with the admin account and stores it.
func (uc *implUseCase) Generate(ctx context.Context) (model.APIKey, error) {
	if uc.cfg.StaticKey != "" {
		return model.APIKey{}, apikey.ErrStaticKey
	}
	return uc.generate(ctx)
}

// Rotate generates a key and makes it the cached current key.
func (uc *implUseCase) Rotate(ctx context.Context) (model.APIKey, error) {
	if uc.cfg.StaticKey != "" {
		return model.APIKey{}, apikey.ErrStaticKey
	}
	if err := uc.cache.Delete(ctx, cacheKeyAPIKey); err != nil {
		uc.l.Warnf(ctx, "apikey.usecase.Rotate: cache delete failed: %v", err)
	}
	key, err := uc.generate(ctx)
	if err != nil {
		return model.APIKey{}, err
	}
	uc.l.Infof(ctx, "apikey.usecase.Rotate: rotated to key %d", key.ID)
	return key, nil
}

func (uc *implUseCase) List(ctx context.Context, input apikey.ListInput) ([]model.APIKey, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	return uc.repo.List(ctx, repository.ListOptions{Limit: limit, Offset: input.Offset})
}

func (uc *implUseCase) Count(ctx context.Context) (int, error) {
	return uc.repo.Count(ctx)
}

// Delete removes a stored key and drops the cached current key.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apikey.ErrKeyNotFound
		}
		return err
	}
	if err := uc.cache.Delete(ctx, cacheKeyAPIKey); err != nil {
		uc.l.Warnf(ctx, "apikey.usecase.Delete: cache delete failed: %v", err)
	}
	return nil
}

func (uc *implUseCase) generate(ctx context.Context) (model.APIKey, error) {
	token, err := uc.AdminToken(ctx)
	if err != nil {
		return model.APIKey{}, err
	}

	value, err := uc.client.GenerateAPIKey(ctx, anythingllm.WithAuthToken(token))
	if anythingllm.KindOf(err) == anythingllm.KindAuthentication {
		// The cached session may have expired before its TTL.
		uc.dropAdminToken(ctx)
		if token, err = uc.AdminToken(ctx); err != nil {
			return model.APIKey{}, err
		}
		value, err = uc.client.GenerateAPIKey(ctx, anythingllm.WithAuthToken(token))
	}
	if err != nil {
		uc.l.Errorf(ctx, "apikey.usecase.generate: GenerateAPIKey failed: %v", err)
		return model.APIKey{}, fmt.Errorf("%w: %w", apikey.ErrGenerateFailed, err)
	}

	key, err := uc.repo.Create(ctx, repository.CreateOptions{Value: value})
	if err != nil {
		uc.l.Errorf(ctx, "apikey.usecase.generate: Create failed: %v", err)
		return model.APIKey{}, err
	}
	uc.cacheKey(ctx, key)
	return key, nil
}
