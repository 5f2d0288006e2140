// Package session provides token session management for the school
// management service.
//
// Two strategies are supported:
//
//   - Database: sessions stored through domain.SessionStorage, fully revocable
//   - JWT (HS256): stateless signed tokens, no server storage needed
//
// The manager hands out a Session whose ID is the token presented by the
// client on subsequent requests.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/Tarakreddy011/School-Management-App/domain"
	"github.com/Tarakreddy011/School-Management-App/identity"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Session = identity.Session

// Strategy defines the interface for session management strategies.
type Strategy interface {
	Create(ctx context.Context, sessionID, identityID string) (*identity.Session, error)
	Validate(ctx context.Context, sessionID string) (*identity.Session, error)
	Refresh(ctx context.Context, refreshToken string) (*identity.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// DatabaseStrategy implements the session strategy using a database.
type DatabaseStrategy struct {
	repo domain.SessionStorage
	ttl  time.Duration
}

func NewDatabaseStrategy(repo domain.SessionStorage, ttl time.Duration) *DatabaseStrategy {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &DatabaseStrategy{repo: repo, ttl: ttl}
}

func (s *DatabaseStrategy) Create(ctx context.Context, sessionID, identityID string) (*identity.Session, error) {
	now := time.Now()
	sess := &identity.Session{
		ID:               sessionID,
		IdentityID:       identityID,
		RefreshToken:     uuid.New().String(),
		ExpiresAt:        now.Add(s.ttl),
		RefreshExpiresAt: now.Add(7 * 24 * time.Hour),
		IssuedAt:         now,
		Active:           true,
	}
	if err := s.repo.CreateSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DatabaseStrategy) Validate(ctx context.Context, sessionID string) (*identity.Session, error) {
	sess, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !sess.Active || sess.ExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("session expired or inactive")
	}

	return sess, nil
}

func (s *DatabaseStrategy) Refresh(ctx context.Context, refreshToken string) (*identity.Session, error) {
	sess, err := s.repo.GetSessionByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	if !sess.Active || sess.RefreshExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("refresh token expired or inactive")
	}

	// Rotate: issue a new session ID and refresh token so the old pair
	// cannot be replayed.
	oldID := sess.ID
	now := time.Now()
	sess.ID = uuid.New().String()
	sess.RefreshToken = uuid.New().String()
	sess.IssuedAt = now
	sess.ExpiresAt = now.Add(s.ttl)
	sess.RefreshExpiresAt = now.Add(7 * 24 * time.Hour)

	if err := s.repo.CreateSession(ctx, sess); err != nil {
		return nil, err
	}

	_ = s.repo.DeleteSession(ctx, oldID)

	return sess, nil
}

func (s *DatabaseStrategy) Delete(ctx context.Context, sessionID string) error {
	return s.repo.DeleteSession(ctx, sessionID)
}

// JWTClaims represents the data stored in the JWT.
type JWTClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// JWTStrategy implements the session strategy using JSON Web Tokens signed
// with HS256. Tokens are stateless; Delete is a no-op server side.
type JWTStrategy struct {
	secret        []byte
	expiry        time.Duration
	refreshExpiry time.Duration
}

// NewHS256Strategy creates a JWT strategy with the given HMAC secret.
func NewHS256Strategy(secret string, expiry time.Duration) *JWTStrategy {
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &JWTStrategy{
		secret:        []byte(secret),
		expiry:        expiry,
		refreshExpiry: 7 * 24 * time.Hour,
	}
}

func (s *JWTStrategy) sign(sessionID, identityID string, expiresAt, now time.Time) (string, error) {
	claims := JWTClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identityID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *JWTStrategy) Create(_ context.Context, sessionID, identityID string) (*identity.Session, error) {
	now := time.Now()

	atExpiresAt := now.Add(s.expiry)
	atString, err := s.sign(sessionID, identityID, atExpiresAt, now)
	if err != nil {
		return nil, err
	}

	rtExpiresAt := now.Add(s.refreshExpiry)
	rtString, err := s.sign(sessionID, identityID, rtExpiresAt, now)
	if err != nil {
		return nil, err
	}

	return &identity.Session{
		ID:               atString,
		IdentityID:       identityID,
		RefreshToken:     rtString,
		ExpiresAt:        atExpiresAt,
		RefreshExpiresAt: rtExpiresAt,
		IssuedAt:         now,
		Active:           true,
	}, nil
}

func (s *JWTStrategy) parse(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func (s *JWTStrategy) Validate(_ context.Context, sessionID string) (*identity.Session, error) {
	claims, err := s.parse(sessionID)
	if err != nil {
		return nil, err
	}
	return &identity.Session{
		ID:         sessionID,
		IdentityID: claims.Subject,
		ExpiresAt:  claims.ExpiresAt.Time,
		IssuedAt:   claims.IssuedAt.Time,
		Active:     true,
	}, nil
}

func (s *JWTStrategy) Refresh(ctx context.Context, refreshToken string) (*identity.Session, error) {
	claims, err := s.parse(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token")
	}
	return s.Create(ctx, uuid.New().String(), claims.Subject)
}

func (s *JWTStrategy) Delete(context.Context, string) error {
	// Stateless, nothing to delete on server side.
	return nil
}
