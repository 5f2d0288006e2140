// Package schoolapp provides convenience constructors for embedding the
// application core directly, without the HTTP surface: a mobile or desktop
// frontend can log in, resolve a profile and call the feature managers
// against any GORM-supported database.
package schoolapp

import (
	"time"

	"github.com/Tarakreddy011/School-Management-App/auth"
	"github.com/Tarakreddy011/School-Management-App/flow"
	"github.com/Tarakreddy011/School-Management-App/persistence"
	"github.com/Tarakreddy011/School-Management-App/profile"
	"github.com/Tarakreddy011/School-Management-App/session"
	"gorm.io/gorm"
)

// NewDefaultLoginManager creates a LoginManager with a bcrypt password
// strategy over the given database.
func NewDefaultLoginManager(db *gorm.DB) *flow.LoginManager {
	repo := persistence.NewRepository(db)
	lm := flow.NewLoginManager()
	lm.RegisterStrategy(flow.NewPasswordStrategy(repo, flow.NewBcryptHasher(14)))
	return lm
}

// NewDefaultSessionManager creates a session Manager backed by revocable
// database sessions.
func NewDefaultSessionManager(db *gorm.DB, ttl time.Duration) *session.Manager {
	repo := persistence.NewRepository(db)
	return session.NewManager(session.NewDatabaseStrategy(repo, ttl))
}

// NewDefaultResolver creates a profile Resolver over the given database.
func NewDefaultResolver(db *gorm.DB) *profile.Resolver {
	return profile.NewResolver(persistence.NewRepository(db))
}

// NewDefaultSession wires login, profile resolution and token sessions into
// the session state container an embedding frontend holds.
func NewDefaultSession(db *gorm.DB, ttl time.Duration) *auth.Session {
	return auth.NewSession(
		NewDefaultLoginManager(db),
		NewDefaultResolver(db),
		NewDefaultSessionManager(db, ttl),
	)
}
