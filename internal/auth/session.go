package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	apperrors "clubsite/internal/errors"
)

// tokenBytes gives 256 bits of entropy per session token.
const tokenBytes = 32

// SessionManager owns the set of active admin tokens. A token is valid if and
// only if it is present in the set; there is no expiry. Logout removes it,
// and a process restart clears everything.
//
// The set is the only shared mutable state in the application, so it is the
// only place that needs a lock.
type SessionManager struct {
	mu     sync.RWMutex
	tokens map[string]struct{}

	secret     string
	secretHash string
}

// NewSessionManager creates a session manager checking logins against the
// given shared secret. When secretHash (a bcrypt hash) is non-empty it takes
// precedence over the plain secret.
func NewSessionManager(secret, secretHash string) *SessionManager {
	return &SessionManager{
		tokens:     make(map[string]struct{}),
		secret:     secret,
		secretHash: secretHash,
	}
}

// Login verifies the password against the configured secret and, on success,
// issues a new opaque token and registers it as active. A failed check issues
// nothing and has no side effects.
func (m *SessionManager) Login(password string) (string, error) {
	if !m.checkPassword(password) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	m.mu.Lock()
	m.tokens[token] = struct{}{}
	m.mu.Unlock()

	return token, nil
}

// Authenticate reports whether the token is currently active.
func (m *SessionManager) Authenticate(token string) bool {
	if token == "" {
		return false
	}
	m.mu.RLock()
	_, ok := m.tokens[token]
	m.mu.RUnlock()
	return ok
}

// Logout removes the token from the active set. Logging out an unknown or
// already-removed token is a no-op.
func (m *SessionManager) Logout(token string) {
	m.mu.Lock()
	delete(m.tokens, token)
	m.mu.Unlock()
}

func (m *SessionManager) checkPassword(password string) bool {
	if password == "" {
		return false
	}
	if m.secretHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(m.secretHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(m.secret), []byte(password)) == 1
}

func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
