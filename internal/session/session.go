// Package session holds the bearer credential used to authorize calls to the
// backend services.
//
// The session is an explicit object owned by whoever constructs the API
// client: it is created at startup, optionally restored from a persistent
// store, and destroyed on logout. There is no package-level state.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenStatus represents the status of the held access token
type TokenStatus int

const (
	TokenMissing TokenStatus = iota
	TokenInvalid
	TokenExpired
	TokenValid
)

var tokenStatusNames = []string{"TokenMissing", "TokenInvalid", "TokenExpired", "TokenValid"}

func (t TokenStatus) String() string {
	if t < 0 || int(t) >= len(tokenStatusNames) {
		return fmt.Sprintf("TokenStatus(%d)", int(t))
	}
	return tokenStatusNames[t]
}

// Session holds the bearer token shared by all client calls.
// Writes are mirrored to the store, when one is configured.
type Session struct {
	mu    sync.RWMutex
	token string
	store Store
}

// New creates an anonymous session.
func New() *Session {
	return &Session{}
}

// NewWithStore creates a session backed by a persistent store and restores
// any previously saved credential from it.
func NewWithStore(store Store) (*Session, error) {
	token, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load stored credential: %w", err)
	}

	return &Session{
		token: token,
		store: store,
	}, nil
}

// Token returns the held credential ("" when anonymous).
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether a credential is currently held.
func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// Set stores the credential in memory and in the persistent store.
func (s *Session) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token

	if s.store != nil {
		if err := s.store.Save(token); err != nil {
			return fmt.Errorf("failed to persist credential: %w", err)
		}
	}
	return nil
}

// Clear removes the credential from memory and from the persistent store.
// Pure local side effect, no network call.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""

	if s.store != nil {
		if err := s.store.Clear(); err != nil {
			return fmt.Errorf("failed to clear stored credential: %w", err)
		}
	}
	return nil
}

// Status classifies the held token.
// The token is parsed without claims validation - only the server can verify
// the signature, this check just avoids sending a token that is already
// known to be expired.
func (s *Session) Status() TokenStatus {
	token := s.Token()

	if token == "" {
		return TokenMissing
	}

	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := &jwt.RegisteredClaims{}

	_, _, err := parser.ParseUnverified(token, claims)
	if err != nil {
		return TokenInvalid
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return TokenExpired
	}

	return TokenValid
}
