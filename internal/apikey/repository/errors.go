package repository

import "errors"

var (
	ErrNotFound  = errors.New("api key not found")
	ErrDuplicate = errors.New("api key already stored")
)
