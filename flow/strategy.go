// Package flow implements the authentication flows: credential registration,
// login with pluggable strategies, and login rate limiting.
package flow

import (
	"context"

	"github.com/Tarakreddy011/School-Management-App/identity"
)

// LoginStrategy authenticates an identifier/secret pair and returns the
// matching identity.
type LoginStrategy interface {
	ID() string
	Authenticate(ctx context.Context, identifier, secret string) (*identity.Identity, error)
}

// Hook runs before or after authentication. Returning an error aborts the flow.
type Hook func(ctx context.Context, ident *identity.Identity) error
