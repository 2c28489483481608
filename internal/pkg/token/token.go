package token

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store holds the platform-issued access token the REST client and the
// realtime channel authenticate with. The platform signs and refreshes
// tokens; the client only inspects expiry, so the parse is unverified.
type Store struct {
	mu        sync.RWMutex
	raw       string
	expiresAt time.Time
}

func New() *Store {
	return &Store{}
}

func (s *Store) Set(raw string) error {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return fmt.Errorf("failed to parse access token: %w", err)
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	s.mu.Lock()
	s.raw = raw
	s.expiresAt = expiresAt
	s.mu.Unlock()

	return nil
}

func (s *Store) Raw() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.raw
}

func (s *Store) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// Expired reports whether the stored token has an expiry in the past. A
// token without an exp claim never expires from the client's view.
func (s *Store) Expired(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.expiresAt.IsZero() && s.expiresAt.Before(now)
}
