package service

import "errors"

// Common service errors
var (
	// ErrNotOwner is returned when a mutation targets a place created by
	// a different user. The store is left untouched.
	ErrNotOwner = errors.New("place does not belong to the requesting user")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. The two cases are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
