package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sso-anythingllm-srv/internal/model"
	"sso-anythingllm-srv/internal/user/repository"

	"github.com/lib/pq"
)

const (
	userColumns      = "keycloak_id, anythingllm_id, username, role, created_at, updated_at"
	uniqueViolation  = "23505"
	defaultListLimit = 50
)

func (r *implRepository) GetByKeycloakID(ctx context.Context, keycloakID string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM anythingllm_user WHERE keycloak_id = $1`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, keycloakID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, repository.ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("GetByKeycloakID: %w", err)
	}
	return u, nil
}

func (r *implRepository) GetByAnythingLLMID(ctx context.Context, id int) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM anythingllm_user WHERE anythingllm_id = $1`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, repository.ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("GetByAnythingLLMID: %w", err)
	}
	return u, nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.User, error) {
	query := `
		INSERT INTO anythingllm_user (keycloak_id, anythingllm_id, username, role)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query,
		opt.KeycloakID, opt.AnythingLLMID, opt.Username, string(opt.Role),
	))
	if isUniqueViolation(err) {
		return model.User{}, repository.ErrDuplicate
	}
	if err != nil {
		return model.User{}, fmt.Errorf("Create: %w", err)
	}
	return u, nil
}

func (r *implRepository) Update(ctx context.Context, opt repository.UpdateOptions) (model.User, error) {
	query := `
		UPDATE anythingllm_user
		SET anythingllm_id = $2, username = $3, role = $4, updated_at = NOW()
		WHERE keycloak_id = $1
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query,
		opt.KeycloakID, opt.AnythingLLMID, opt.Username, string(opt.Role),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, repository.ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("Update: %w", err)
	}
	return u, nil
}

func (r *implRepository) DeleteByKeycloakID(ctx context.Context, keycloakID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM anythingllm_user WHERE keycloak_id = $1`, keycloakID)
	if err != nil {
		return fmt.Errorf("DeleteByKeycloakID: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteByKeycloakID: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.User, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	query := `SELECT ` + userColumns + ` FROM anythingllm_user ORDER BY created_at DESC, keycloak_id LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, opt.Offset)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("List scan: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *implRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM anythingllm_user`).Scan(&n); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (model.User, error) {
	var u model.User
	var role string
	if err := s.Scan(&u.KeycloakID, &u.AnythingLLMID, &u.Username, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return model.User{}, err
	}
	u.Role = model.Role(role)
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
