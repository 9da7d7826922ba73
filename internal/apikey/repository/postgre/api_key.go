package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sso-anythingllm-srv/internal/apikey/repository"
	"sso-anythingllm-srv/internal/model"
)

// Create stores opt.Value encrypted, with a bcrypt hash for Exists.
func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.APIKey, error) {
	exists, err := r.Exists(ctx, opt.Value)
	if err != nil {
		return model.APIKey{}, err
	}
	if exists {
		return model.APIKey{}, repository.ErrDuplicate
	}

	sealed, err := r.enc.Encrypt(opt.Value)
	if err != nil {
		return model.APIKey{}, fmt.Errorf("Create: encrypt: %w", err)
	}
	hash, err := r.enc.Hash(opt.Value)
	if err != nil {
		return model.APIKey{}, fmt.Errorf("Create: hash: %w", err)
	}

	query := `
		INSERT INTO api_key (value_encrypted, value_hash)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	key := model.APIKey{Value: opt.Value}
	if err := r.db.QueryRowContext(ctx, query, sealed, hash).Scan(&key.ID, &key.CreatedAt); err != nil {
		return model.APIKey{}, fmt.Errorf("Create: %w", err)
	}
	return key, nil
}

// GetLatest returns the most recently stored key.
func (r *implRepository) GetLatest(ctx context.Context) (model.APIKey, error) {
	query := `
		SELECT id, value_encrypted, created_at
		FROM api_key
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	key, err := r.scanKey(r.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return model.APIKey{}, repository.ErrNotFound
	}
	if err != nil {
		return model.APIKey{}, fmt.Errorf("GetLatest: %w", err)
	}
	return key, nil
}

// List returns keys newest first.
func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.APIKey, error) {
	query := `
		SELECT id, value_encrypted, created_at
		FROM api_key
		ORDER BY created_at DESC, id DESC
	`
	args := []any{}
	argIdx := 1

	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, opt.Limit)
		argIdx++
	}
	if opt.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer rows.Close()

	var keys []model.APIKey
	for rows.Next() {
		key, err := r.scanKey(rows)
		if err != nil {
			return nil, fmt.Errorf("List scan: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Exists compares value against every stored hash.
func (r *implRepository) Exists(ctx context.Context, value string) (bool, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT value_hash FROM api_key`)
	if err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var hash string
		if err := rows.Scan(&hash); err != nil {
			return false, fmt.Errorf("Exists scan: %w", err)
		}
		if r.enc.CompareHash(value, hash) {
			return true, nil
		}
	}
	return false, rows.Err()
}

func (r *implRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM api_key`).Scan(&n); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}

func (r *implRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM api_key WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanKey(s scanner) (model.APIKey, error) {
	var key model.APIKey
	var sealed string
	if err := s.Scan(&key.ID, &sealed, &key.CreatedAt); err != nil {
		return model.APIKey{}, err
	}
	value, err := r.enc.Decrypt(sealed)
	if err != nil {
		return model.APIKey{}, fmt.Errorf("decrypt key %d: %w", key.ID, err)
	}
	key.Value = value
	return key, nil
}
