// Package apperr defines the error kinds surfaced by taskman services.
//
// Ownership misses deliberately surface as ErrNotFound: a row that exists
// but belongs to another account is indistinguishable from a row that does
// not exist, so existence never leaks across accounts. Role-gated admin
// actions fail loudly with ErrUnauthorized instead.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both missing rows and rows owned by another account.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized means a role check failed.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials means the email or password did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountLocked means the account is locked out, regardless of
	// whether the supplied password was correct.
	ErrAccountLocked = errors.New("account locked")

	// ErrInvalidOperation means the request itself is malformed or
	// forbidden (e.g. an admin deleting their own account).
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrStorageFailure wraps an underlying persistence error. It is
	// surfaced to the caller as-is; operations are never retried.
	ErrStorageFailure = errors.New("storage failure")
)

// Storage wraps a persistence error so that errors.Is reports
// ErrStorageFailure while the original cause stays inspectable.
func Storage(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(ErrStorageFailure, err))
}
