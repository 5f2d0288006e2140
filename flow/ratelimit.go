package flow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Tarakreddy011/School-Management-App/identity"
)

// RateLimiter defines the interface for rate limiting implementations.
type RateLimiter interface {
	// Allow checks if the request should be allowed based on the key and
	// rate limit. remaining indicates how many requests are left in the
	// current window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, remaining int, err error)

	// Reset clears the rate limit counter for the given key.
	Reset(ctx context.Context, key string) error
}

// RateLimitConfig holds configuration for the rate limiter decorator.
type RateLimitConfig struct {
	// Limit is the maximum number of attempts allowed in the window.
	Limit int

	// Window is the time window for the rate limit.
	Window time.Duration

	// FailOpen determines behavior when the rate limiter itself errors.
	// If true, attempts are allowed when the limiter fails.
	FailOpen bool
}

// RateLimitStrategy is a decorator that adds rate limiting to any LoginStrategy.
type RateLimitStrategy struct {
	next    LoginStrategy
	limiter RateLimiter
	config  RateLimitConfig
}

// NewRateLimitStrategy creates a new rate limiting decorator.
func NewRateLimitStrategy(next LoginStrategy, limiter RateLimiter, config RateLimitConfig) *RateLimitStrategy {
	return &RateLimitStrategy{
		next:    next,
		limiter: limiter,
		config:  config,
	}
}

func (s *RateLimitStrategy) ID() string { return s.next.ID() }

func (s *RateLimitStrategy) Authenticate(ctx context.Context, identifier, secret string) (*identity.Identity, error) {
	allowed, remaining, err := s.limiter.Allow(ctx, identifier, s.config.Limit, s.config.Window)
	if err != nil {
		if s.config.FailOpen {
			return s.next.Authenticate(ctx, identifier, secret)
		}
		return nil, fmt.Errorf("rate limit check failed: %w", err)
	}
	if !allowed {
		return nil, &RateLimitError{RetryAfter: s.config.Window, Remaining: remaining}
	}
	return s.next.Authenticate(ctx, identifier, secret)
}

// RateLimitError is returned when a login attempt is rate limited.
type RateLimitError struct {
	RetryAfter time.Duration
	Remaining  int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %v", e.RetryAfter)
}

// IsRateLimitError checks if an error is a rate limit error.
func IsRateLimitError(err error) bool {
	_, ok := err.(*RateLimitError)
	return ok
}

// ---- Fixed Window Rate Limiter (Memory) ----

type fixedWindowEntry struct {
	count     int
	expiresAt time.Time
}

// MemoryRateLimiter implements rate limiting using fixed time windows held
// in memory. For multi-instance deployments, use the Redis implementation.
type MemoryRateLimiter struct {
	mu      sync.Mutex
	entries map[string]*fixedWindowEntry
}

// NewMemoryRateLimiter creates a new memory-based rate limiter.
func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{
		entries: make(map[string]*fixedWindowEntry),
	}
}

func (r *MemoryRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	entry, exists := r.entries[key]

	// Check if window expired or doesn't exist
	if !exists || now.After(entry.expiresAt) {
		r.entries[key] = &fixedWindowEntry{
			count:     1,
			expiresAt: now.Add(window),
		}
		return true, limit - 1, nil
	}

	if entry.count >= limit {
		return false, 0, nil
	}

	entry.count++
	remaining := limit - entry.count

	return true, remaining, nil
}

func (r *MemoryRateLimiter) Reset(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
	return nil
}
