package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when a signup collides with an
	// existing account. Uniqueness is enforced by the store; the losing
	// writer observes this error, never a silent overwrite.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases are deliberately indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized means the request carried no valid session token.
	ErrUnauthorized = errors.New("unauthorized")

	ErrInvalidInput = errors.New("invalid input")
)
