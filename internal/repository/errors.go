package repository

import "errors"

// Sentinel errors surfaced to handlers. Handlers map these to HTTP
// statuses; anything else is treated as an internal database error.
var (
	ErrEmailExists  = errors.New("email already exists")
	ErrUserNotFound = errors.New("user not found")
)
