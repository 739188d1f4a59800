package auth

import "errors"

// Domain-specific errors for the auth package.
var (
	ErrInvalidCredentials = errors.New("no active account found with the given credentials")
	ErrInvalidToken       = errors.New("token is invalid or expired")
)
