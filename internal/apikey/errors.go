package apikey

import "errors"

var (
	ErrKeyNotFound          = errors.New("apikey: key not found")
	ErrAdminCredentials     = errors.New("apikey: admin credentials are not configured")
	ErrStaticKey            = errors.New("apikey: a static key is configured")
	ErrGenerateFailed       = errors.New("apikey: failed to generate key")
	ErrAdminTokenFailed     = errors.New("apikey: failed to obtain admin token")
	ErrCurrentKeyNotDeleted = errors.New("apikey: the current key cannot be deleted")
)
