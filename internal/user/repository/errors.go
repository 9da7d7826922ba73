package repository

import "errors"

var (
	ErrNotFound  = errors.New("user mapping not found")
	ErrDuplicate = errors.New("user mapping already exists")
)
