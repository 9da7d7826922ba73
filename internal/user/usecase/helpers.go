package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"sso-anythingllm-srv/internal/model"
	"sso-anythingllm-srv/pkg/anythingllm"
)

const maxUsernameLen = 100

// auth returns the call option carrying the current AnythingLLM API key.
func (uc *implUseCase) auth(ctx context.Context) (anythingllm.CallOption, error) {
	key, err := uc.keys.Current(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.auth: Current api key failed: %v", err)
		return nil, err
	}
	return anythingllm.WithAuthToken(key.Value), nil
}

// normalizeUsername lowercases s and replaces characters AnythingLLM rejects in usernames.
func normalizeUsername(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
		if b.Len() >= maxUsernameLen {
			break
		}
	}
	return strings.Trim(b.String(), "_")
}

// publish is best effort; the mapping is already committed.
func (uc *implUseCase) publish(ctx context.Context, typ model.UserEventType, u model.User) {
	ev := model.UserEvent{
		Type:          typ,
		KeycloakID:    u.KeycloakID,
		AnythingLLMID: u.AnythingLLMID,
		Role:          u.Role,
		OccurredAt:    uc.now(),
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	if err := uc.producer.Publish([]byte(u.KeycloakID), payload); err != nil {
		uc.l.Warnf(ctx, "user.usecase.publish: %s for %s failed: %v", typ, u.KeycloakID, err)
	}
}
