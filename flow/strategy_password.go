package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Tarakreddy011/School-Management-App/domain"
	"github.com/Tarakreddy011/School-Management-App/identity"
	"github.com/google/uuid"
)

// PasswordStrategy authenticates email/password pairs against stored
// credentials. It also creates accounts: student and staff onboarding both
// register an identity+credential pair through it.
type PasswordStrategy struct {
	repo   domain.IdentityStorage
	hasher domain.Hasher
	ids    domain.IDGenerator
}

func NewPasswordStrategy(repo domain.IdentityStorage, hasher domain.Hasher) *PasswordStrategy {
	return &PasswordStrategy{
		repo:   repo,
		hasher: hasher,
		ids:    func() string { return uuid.New().String() },
	}
}

// SetIDGenerator overrides the default UUID generator.
func (s *PasswordStrategy) SetIDGenerator(gen domain.IDGenerator) { s.ids = gen }

func (s *PasswordStrategy) ID() string { return "password" }

// Register creates a new identity with a password credential and returns it.
// The identity ID is the handle that profile documents must be keyed by.
func (s *PasswordStrategy) Register(ctx context.Context, email, password string) (*identity.Identity, error) {
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return nil, domain.ErrInvalidEmail
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ident := &identity.Identity{
		ID:        s.ids(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	ident.Credentials = append(ident.Credentials, identity.Credential{
		ID:         s.ids(),
		IdentityID: ident.ID,
		Type:       "password",
		Identifier: email,
		Secret:     hashed,
		CreatedAt:  now,
		UpdatedAt:  now,
	})

	if err := s.repo.CreateIdentity(ctx, ident); err != nil {
		return nil, fmt.Errorf("create identity: %w", err)
	}

	return ident, nil
}

// Authenticate checks the email/password pair and returns the identity on
// success. Failures map onto the login error taxonomy: ErrInvalidEmail,
// ErrUserNotFound, ErrWrongPassword, or a wrapped ErrStoreUnavailable.
func (s *PasswordStrategy) Authenticate(ctx context.Context, identifier, secret string) (*identity.Identity, error) {
	identifier = strings.TrimSpace(identifier)
	if !validEmail(identifier) {
		return nil, domain.ErrInvalidEmail
	}

	cred, err := s.repo.GetCredentialByIdentifier(ctx, identifier, "password")
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, domain.ErrUserNotFound
	case err != nil:
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	if !s.hasher.Compare(strings.TrimSpace(secret), cred.Secret) {
		return nil, domain.ErrWrongPassword
	}

	return &identity.Identity{ID: cred.IdentityID}, nil
}

func validEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	return !strings.ContainsAny(s, " \t")
}
