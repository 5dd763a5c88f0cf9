package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto HTTP
// statuses; conflict errors carry a human-readable reason via wrapping.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("operation not permitted")
	ErrDuplicateSKU   = errors.New("sku already exists")
	ErrDuplicateSlug  = errors.New("slug already exists")
	ErrEmailExists    = errors.New("email already exists")
	ErrInvalidInput   = errors.New("invalid input")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrSessionTimeout     = errors.New("session expired due to inactivity")
)
