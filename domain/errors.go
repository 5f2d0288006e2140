package domain

import "errors"

// Error taxonomy for the authentication and profile layers.
//
// Callers distinguish "no such record" (ErrNotFound, ErrProfileNotFound) from
// "could not check" (ErrStoreUnavailable): the former is terminal for the
// attempt, the latter is safe to retry for idempotent reads.
var (
	// ErrInvalidEmail is returned when the login email is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrUserNotFound is returned when no identity exists for the email.
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongPassword is returned when the password does not match.
	ErrWrongPassword = errors.New("incorrect password")

	// ErrProfileNotFound is returned when authentication succeeded but no
	// profile document exists in any collection. The user should contact
	// an administrator; it never authorizes a default role.
	ErrProfileNotFound = errors.New("user profile not found in database")

	// ErrStoreUnavailable wraps I/O failures while probing or mutating the
	// profile store.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNotFound is the generic missing-record error for feature collections.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized is returned by policy checks before any write is attempted.
	ErrUnauthorized = errors.New("operation not permitted for role")
)
