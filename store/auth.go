package store

import (
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
)

// AuthStore holds the current session: user, bearer token, authenticated
// flag. Injected wherever session state is needed; there is no package-level
// instance.
type AuthStore struct {
	mu    sync.Mutex
	user  *models.User
	token string

	// onAuthenticated fires when the session transitions from logged-out to
	// logged-in, so eligibility can be re-checked.
	onAuthenticated func()
}

// NewAuthStore returns an empty, logged-out session store
func NewAuthStore() *AuthStore {
	return &AuthStore{}
}

// OnAuthenticated registers the hook fired on the logged-out to logged-in
// transition
func (s *AuthStore) OnAuthenticated(fn func()) {
	s.mu.Lock()
	s.onAuthenticated = fn
	s.mu.Unlock()
}

// SetAuthData stores the user and token after a successful login or signup
func (s *AuthStore) SetAuthData(user *models.User, token string) {
	s.mu.Lock()
	wasAuthenticated := s.user != nil && s.token != ""
	s.user = user
	s.token = token
	isAuthenticated := s.user != nil && s.token != ""
	hook := s.onAuthenticated
	s.mu.Unlock()

	if !wasAuthenticated && isAuthenticated && hook != nil {
		hook()
	}
}

// Logout clears the session
func (s *AuthStore) Logout() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
}

// IsAuthenticated is true iff both a user and a token are present
func (s *AuthStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.token != ""
}

// User returns the current user, or nil when logged out
func (s *AuthStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Token returns the current bearer token, or "" when logged out
func (s *AuthStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Session returns a snapshot of the session state
func (s *AuthStore) Session() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Session{
		User:            s.user,
		Token:           s.token,
		IsAuthenticated: s.user != nil && s.token != "",
	}
}

// UserFromToken decodes the bearer token payload into a user WITHOUT
// verifying the signature. The result is display data only; the server
// re-validates the raw token on every privileged call.
func UserFromToken(token string) (*models.User, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token payload: %w", err)
	}

	user := &models.User{}
	if id, ok := claims["id"].(string); ok {
		user.ID = id
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		user.Role = role
	}
	return user, nil
}
