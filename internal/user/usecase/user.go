package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"sso-anythingllm-srv/internal/model"
	"sso-anythingllm-srv/internal/user"
	"sso-anythingllm-srv/internal/user/repository"
	"sso-anythingllm-srv/pkg/anythingllm"
	"sso-anythingllm-srv/pkg/keycloak"
	"sso-anythingllm-srv/pkg/paginator"
)

// Provision creates the AnythingLLM account on first sight of an identity and keeps its role
// in sync with the Keycloak groups afterwards.
// Concurrent calls for one subject share a single run.
func (uc *implUseCase) Provision(ctx context.Context, sc model.Scope) (user.ProvisionOutput, error) {
	if sc.Subject == "" {
		return user.ProvisionOutput{}, user.ErrInvalidIdentity
	}
	v, err, _ := uc.group.Do(sc.Subject, func() (any, error) {
		return uc.provision(ctx, sc)
	})
	if err != nil {
		return user.ProvisionOutput{}, err
	}
	return v.(user.ProvisionOutput), nil
}

func (uc *implUseCase) provision(ctx context.Context, sc model.Scope) (user.ProvisionOutput, error) {
	role := keycloak.ResolveRole(sc.Groups, uc.cfg.Correlations, uc.cfg.DefaultRole)

	existing, err := uc.repo.GetByKeycloakID(ctx, sc.Subject)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		u, created, err := uc.create(ctx, sc, role)
		if err != nil {
			return user.ProvisionOutput{}, err
		}
		if !created {
			return user.ProvisionOutput{User: u}, nil
		}
		uc.publish(ctx, model.UserEventCreated, u)
		return user.ProvisionOutput{User: u, Created: true}, nil
	case err != nil:
		uc.l.Errorf(ctx, "user.usecase.Provision: GetByKeycloakID failed: %v", err)
		return user.ProvisionOutput{}, err
	}

	if existing.Role == role {
		return user.ProvisionOutput{User: existing}, nil
	}

	u, err := uc.changeRole(ctx, existing, role)
	if err != nil {
		return user.ProvisionOutput{}, err
	}
	uc.publish(ctx, model.UserEventUpdated, u)
	return user.ProvisionOutput{User: u, Updated: true}, nil
}

// create reports false when another instance stored the mapping first. The
// AnythingLLM account created here is then removed and the stored mapping returned.
func (uc *implUseCase) create(ctx context.Context, sc model.Scope, role model.Role) (model.User, bool, error) {
	auth, err := uc.auth(ctx)
	if err != nil {
		return model.User{}, false, err
	}

	username := normalizeUsername(sc.Username)
	if username == "" {
		username = normalizeUsername(sc.Subject)
	}

	in := anythingllm.NewUser{Username: username, Password: uc.cfg.DefaultPassword, Role: role.String()}
	created, err := uc.client.CreateUser(ctx, in, auth)
	if isUsernameConflict(err) && username != normalizeUsername(sc.Subject) {
		// Another identity already owns the display name; the subject is unique.
		uc.l.Warnf(ctx, "user.usecase.create: username %q taken, retrying with subject", username)
		in.Username = normalizeUsername(sc.Subject)
		created, err = uc.client.CreateUser(ctx, in, auth)
	}
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.create: CreateUser failed: %v", err)
		return model.User{}, false, fmt.Errorf("%w: %w", user.ErrProvisionFailed, err)
	}

	u, err := uc.repo.Create(ctx, repository.CreateOptions{
		KeycloakID:    sc.Subject,
		AnythingLLMID: created.ID,
		Username:      created.Username,
		Role:          role,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		uc.l.Warnf(ctx, "user.usecase.create: %s was provisioned concurrently, removing AnythingLLM user %d", sc.Subject, created.ID)
		if derr := uc.client.DeleteUser(ctx, created.ID, auth); derr != nil && !errors.Is(derr, anythingllm.ErrNotFound) {
			uc.l.Errorf(ctx, "user.usecase.create: DeleteUser %d failed: %v", created.ID, derr)
		}
		existing, gerr := uc.repo.GetByKeycloakID(ctx, sc.Subject)
		if gerr != nil {
			uc.l.Errorf(ctx, "user.usecase.create: GetByKeycloakID after duplicate failed: %v", gerr)
			return model.User{}, false, gerr
		}
		return existing, false, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.create: repo Create failed: %v", err)
		return model.User{}, false, err
	}
	uc.l.Infof(ctx, "user.usecase.create: provisioned %s as AnythingLLM user %d with role %s", sc.Subject, u.AnythingLLMID, role)
	return u, true, nil
}

func (uc *implUseCase) changeRole(ctx context.Context, existing model.User, role model.Role) (model.User, error) {
	auth, err := uc.auth(ctx)
	if err != nil {
		return model.User{}, err
	}

	r, suspended := role.String(), 0
	if err := uc.client.UpdateUser(ctx, existing.AnythingLLMID, anythingllm.UserUpdate{Role: &r, Suspended: &suspended}, auth); err != nil {
		uc.l.Errorf(ctx, "user.usecase.changeRole: UpdateUser failed: %v", err)
		return model.User{}, fmt.Errorf("%w: %w", user.ErrProvisionFailed, err)
	}

	u, err := uc.repo.Update(ctx, repository.UpdateOptions{
		KeycloakID:    existing.KeycloakID,
		AnythingLLMID: existing.AnythingLLMID,
		Username:      existing.Username,
		Role:          role,
	})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.changeRole: repo Update failed: %v", err)
		return model.User{}, err
	}
	uc.l.Infof(ctx, "user.usecase.changeRole: %s role %s -> %s", existing.KeycloakID, existing.Role, role)
	return u, nil
}

// Deprovision tolerates an account already missing in AnythingLLM.
func (uc *implUseCase) Deprovision(ctx context.Context, keycloakID string) error {
	existing, err := uc.Get(ctx, keycloakID)
	if err != nil {
		return err
	}

	auth, err := uc.auth(ctx)
	if err != nil {
		return err
	}
	if err := uc.client.DeleteUser(ctx, existing.AnythingLLMID, auth); err != nil && !errors.Is(err, anythingllm.ErrNotFound) {
		uc.l.Errorf(ctx, "user.usecase.Deprovision: DeleteUser failed: %v", err)
		return fmt.Errorf("%w: %w", user.ErrDeprovisionFailed, err)
	}

	if err := uc.repo.DeleteByKeycloakID(ctx, keycloakID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		uc.l.Errorf(ctx, "user.usecase.Deprovision: DeleteByKeycloakID failed: %v", err)
		return err
	}
	uc.publish(ctx, model.UserEventDeleted, existing)
	return nil
}

func (uc *implUseCase) Get(ctx context.Context, keycloakID string) (model.User, error) {
	u, err := uc.repo.GetByKeycloakID(ctx, keycloakID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.User{}, user.ErrUserNotFound
	}
	return u, err
}

func (uc *implUseCase) List(ctx context.Context, input user.ListInput) (user.ListOutput, error) {
	q := input.Paginator
	q.Adjust()

	users, err := uc.repo.List(ctx, repository.ListOptions{Limit: int(q.Limit), Offset: int(q.Offset())})
	if err != nil {
		return user.ListOutput{}, fmt.Errorf("List: %w", err)
	}
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return user.ListOutput{}, fmt.Errorf("List count: %w", err)
	}

	return user.ListOutput{
		Users:     users,
		Paginator: paginator.New(q, total, int64(len(users))),
	}, nil
}

func isUsernameConflict(err error) bool {
	return anythingllm.KindOf(err) == anythingllm.KindAPI && anythingllm.StatusCode(err) == http.StatusBadRequest
}
