// Package auth holds the signed-in session state: the single piece of
// mutable shared state in the application core.
//
// A Session is an explicit, injectable object (never an ambient singleton)
// holding at most one resolved Profile. It moves between exactly two states:
//
//	SignedOut -> (Login success)  -> SignedIn
//	SignedIn  -> (Logout)         -> SignedOut
//	SignedOut -> (Login failure)  -> SignedOut (with the error recorded)
//
// There is no "signed in but profile missing" state: a login that
// authenticates but fails to resolve a profile is an overall failure and
// leaves the session untouched.
package auth

import (
	"context"
	"sync"

	"github.com/Tarakreddy011/School-Management-App/identity"
	"github.com/Tarakreddy011/School-Management-App/profile"
)

// Authenticator checks a credential pair and returns the matching identity.
// flow.LoginManager satisfies this.
type Authenticator interface {
	Authenticate(ctx context.Context, method, identifier, secret string) (*identity.Identity, error)
}

// Resolver maps an identity handle to its Profile. profile.Resolver
// satisfies this.
type Resolver interface {
	Resolve(ctx context.Context, handle string) (*profile.Profile, error)
}

// TokenManager issues and revokes session tokens. session.Manager satisfies
// this; it may be nil when no token surface is needed.
type TokenManager interface {
	Create(ctx context.Context, identityID string) (*identity.Session, error)
	Validate(ctx context.Context, token string) (*identity.Session, error)
	Delete(ctx context.Context, token string) error
}

// Session is the session state container.
type Session struct {
	login    Authenticator
	resolver Resolver
	tokens   TokenManager

	mu      sync.Mutex
	prof    *profile.Profile
	token   string
	loading bool
	lastErr error
}

func NewSession(login Authenticator, resolver Resolver, tokens TokenManager) *Session {
	return &Session{login: login, resolver: resolver, tokens: tokens}
}

// Login authenticates the credential pair, resolves the profile, and on
// success moves the session to SignedIn. Any failure records a categorized
// error and leaves the held profile unchanged.
func (s *Session) Login(ctx context.Context, email, password string) (*profile.Profile, error) {
	s.mu.Lock()
	s.loading = true
	s.lastErr = nil
	s.mu.Unlock()

	ident, err := s.login.Authenticate(ctx, "password", email, password)
	if err != nil {
		return nil, s.fail(err)
	}

	prof, err := s.resolver.Resolve(ctx, ident.ID)
	if err != nil {
		return nil, s.fail(err)
	}

	token := ""
	if s.tokens != nil {
		sess, err := s.tokens.Create(ctx, ident.ID)
		if err != nil {
			return nil, s.fail(err)
		}
		token = sess.ID
	}

	s.mu.Lock()
	s.prof = prof
	s.token = token
	s.loading = false
	s.lastErr = nil
	s.mu.Unlock()

	return prof.Clone(), nil
}

// Resume reattaches an existing token session, as on app restart. On
// success the session is SignedIn; on failure it is left unchanged.
func (s *Session) Resume(ctx context.Context, token string) (*profile.Profile, error) {
	if s.tokens == nil || token == "" {
		return nil, s.fail(ErrNoSession)
	}

	sess, err := s.tokens.Validate(ctx, token)
	if err != nil {
		return nil, s.fail(err)
	}

	prof, err := s.resolver.Resolve(ctx, sess.IdentityID)
	if err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	s.prof = prof
	s.token = token
	s.loading = false
	s.lastErr = nil
	s.mu.Unlock()

	return prof.Clone(), nil
}

// Logout clears the profile and error and revokes the token session. It is
// idempotent: logging out of a signed-out session is a no-op.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	s.prof = nil
	s.token = ""
	s.lastErr = nil
	s.loading = false
	s.mu.Unlock()

	if s.tokens != nil && token != "" {
		// Revocation failure does not keep the user signed in locally.
		_ = s.tokens.Delete(ctx, token)
	}
}

// CurrentProfile returns a snapshot of the resolved profile, or nil when
// signed out.
func (s *Session) CurrentProfile() *profile.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prof.Clone()
}

// Token returns the issued session token, or "" when signed out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Loading reports whether a login attempt is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the error recorded by the most recent failed attempt,
// or nil.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// ClearError discards the recorded error.
func (s *Session) ClearError() {
	s.mu.Lock()
	s.lastErr = nil
	s.mu.Unlock()
}

func (s *Session) fail(err error) error {
	s.mu.Lock()
	s.lastErr = err
	s.loading = false
	s.mu.Unlock()
	return err
}
