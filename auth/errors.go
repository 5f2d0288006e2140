package auth

import (
	"errors"

	"github.com/Tarakreddy011/School-Management-App/domain"
)

// ErrNoSession is returned by Resume when there is no token to reattach.
var ErrNoSession = errors.New("no session to resume")

// Kind buckets a login failure so callers can show the right message
// without string-matching error text.
type Kind string

const (
	KindInvalidEmail    Kind = "invalid_email"
	KindUserNotFound    Kind = "user_not_found"
	KindWrongPassword   Kind = "wrong_password"
	KindProfileNotFound Kind = "profile_not_found"
	KindUnavailable     Kind = "store_unavailable"
	KindUnknown         Kind = "unknown"
)

// KindOf maps an error from Login or Resume to its Kind.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrInvalidEmail):
		return KindInvalidEmail
	case errors.Is(err, domain.ErrUserNotFound):
		return KindUserNotFound
	case errors.Is(err, domain.ErrWrongPassword):
		return KindWrongPassword
	case errors.Is(err, domain.ErrProfileNotFound):
		return KindProfileNotFound
	case errors.Is(err, domain.ErrStoreUnavailable):
		return KindUnavailable
	default:
		return KindUnknown
	}
}

// Message returns a user-facing description for a login failure.
func Message(err error) string {
	switch KindOf(err) {
	case KindInvalidEmail:
		return "Please enter a valid email address"
	case KindUserNotFound:
		return "No account found for this email"
	case KindWrongPassword:
		return "Incorrect password"
	case KindProfileNotFound:
		return "No profile is linked to this account"
	case KindUnavailable:
		return "Service is temporarily unavailable, try again"
	default:
		return "Login failed"
	}
}
