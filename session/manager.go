package session

import (
	"context"

	"github.com/Tarakreddy011/School-Management-App/identity"
	"github.com/google/uuid"
)

// Manager handles session lifecycle operations.
// It delegates to a configured Strategy for the actual session storage and
// validation.
type Manager struct {
	strategy Strategy
}

// NewManager creates a new session Manager with the given strategy.
func NewManager(strategy Strategy) *Manager {
	return &Manager{strategy: strategy}
}

// Create issues a new session token for the identity.
func (m *Manager) Create(ctx context.Context, identityID string) (*identity.Session, error) {
	return m.strategy.Create(ctx, uuid.New().String(), identityID)
}

// Validate checks a presented token and returns the session it names.
func (m *Manager) Validate(ctx context.Context, token string) (*identity.Session, error) {
	return m.strategy.Validate(ctx, token)
}

// Refresh rotates a session using its refresh token.
func (m *Manager) Refresh(ctx context.Context, refreshToken string) (*identity.Session, error) {
	return m.strategy.Refresh(ctx, refreshToken)
}

// Delete revokes a session. Deleting an unknown or already-deleted session
// is not an error.
func (m *Manager) Delete(ctx context.Context, token string) error {
	return m.strategy.Delete(ctx, token)
}
