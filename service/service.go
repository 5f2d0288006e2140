// Package service implements the feature managers behind each screen of the
// application: student and staff administration, marks, leaves, discipline,
// complaints, announcements and syllabus tracking.
//
// Every mutating method takes the caller's resolved Profile and checks the
// authorization policy before touching the store; list methods apply the
// caller's scoping filter after the read. Managers hold no state beyond
// their dependencies.
package service

import (
	"context"

	"github.com/Tarakreddy011/School-Management-App/domain"
	"github.com/Tarakreddy011/School-Management-App/identity"
	"github.com/google/uuid"
)

// Registrar creates login accounts. flow.PasswordStrategy satisfies this;
// student and staff onboarding register credentials through it.
type Registrar interface {
	Register(ctx context.Context, email, password string) (*identity.Identity, error)
}

func defaultIDs() domain.IDGenerator {
	return func() string { return uuid.New().String() }
}
