package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user: not found")
	ErrInvalidIdentity   = errors.New("user: identity has no subject")
	ErrProvisionFailed   = errors.New("user: provisioning in AnythingLLM failed")
	ErrDeprovisionFailed = errors.New("user: deprovisioning in AnythingLLM failed")
)
