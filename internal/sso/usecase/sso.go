package usecase

import (
	"context"
	"fmt"
	"strings"

	"sso-anythingllm-srv/internal/model"
	"sso-anythingllm-srv/internal/sso"
	"sso-anythingllm-srv/pkg/anythingllm"
)

func (uc *implUseCase) LoginURL(ctx context.Context, sc model.Scope) (sso.LoginOutput, error) {
	out, err := uc.users.Provision(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "sso.usecase.LoginURL: Provision failed: %v", err)
		return sso.LoginOutput{}, err
	}

	key, err := uc.keys.Current(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "sso.usecase.LoginURL: Current api key failed: %v", err)
		return sso.LoginOutput{}, err
	}

	tok, err := uc.client.IssueAuthToken(ctx, out.User.AnythingLLMID, anythingllm.WithAuthToken(key.Value))
	if err != nil {
		uc.l.Errorf(ctx, "sso.usecase.LoginURL: IssueAuthToken for user %d failed: %v", out.User.AnythingLLMID, err)
		return sso.LoginOutput{}, fmt.Errorf("%w: %w", sso.ErrIssueTokenFailed, err)
	}

	return sso.LoginOutput{URL: uc.loginURL(tok.LoginPath), User: out.User}, nil
}

func (uc *implUseCase) AuthCodeURL(state string) (string, error) {
	if uc.provider == nil {
		return "", sso.ErrBrowserFlowOff
	}
	return uc.provider.AuthCodeURL(state), nil
}

func (uc *implUseCase) Callback(ctx context.Context, code string) (sso.LoginOutput, error) {
	if uc.provider == nil {
		return sso.LoginOutput{}, sso.ErrBrowserFlowOff
	}
	if code == "" {
		return sso.LoginOutput{}, sso.ErrInvalidCode
	}

	sc, err := uc.provider.Exchange(ctx, code)
	if err != nil {
		uc.l.Warnf(ctx, "sso.usecase.Callback: Exchange failed: %v", err)
		return sso.LoginOutput{}, fmt.Errorf("%w: %w", sso.ErrCodeExchange, err)
	}
	return uc.LoginURL(ctx, sc)
}

// loginURL resolves the login path AnythingLLM returned against the public address.
// The path keeps its own query, which carries the token.
func (uc *implUseCase) loginURL(loginPath string) string {
	path, query, _ := strings.Cut(loginPath, "?")
	u := *uc.public
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	u.RawQuery = query
	return u.String()
}
