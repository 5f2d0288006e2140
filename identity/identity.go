// Package identity provides the account-side records for the school
// management service.
//
// An Identity is the stable opaque handle issued when an account is created;
// it is the join key into the profile collections (users, students and the
// legacy teachers collection). Credentials carry hashed login secrets, and
// Sessions are the issued authentication tokens.
package identity

import (
	"time"
)

// Identity represents an authenticated account.
type Identity struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Credentials []Credential `gorm:"foreignKey:IdentityID" json:"-"`
}

func (Identity) TableName() string { return "identities" }

// Credential represents an authentication credential.
type Credential struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	IdentityID string    `gorm:"index" json:"identity_id"`
	Type       string    `gorm:"index" json:"type"`
	Identifier string    `gorm:"index" json:"identifier"`
	Secret     string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Credential) TableName() string { return "credentials" }

// Session represents an authenticated session.
type Session struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	IdentityID       string    `gorm:"index" json:"identity_id"`
	RefreshToken     string    `gorm:"index" json:"refresh_token,omitempty"`
	ExpiresAt        time.Time `json:"expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at,omitempty"`
	IssuedAt         time.Time `json:"issued_at"`
	Active           bool      `json:"active"`
}

func (Session) TableName() string { return "sessions" }
