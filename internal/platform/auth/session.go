// Package auth manages the local session created by the PIN access gate.
// A successful login writes a signed token to a session file; every gated
// command verifies it, and logout removes it. The signing key is a random
// per-install secret kept next to the data store. None of this hardens the
// PIN itself: the gate is a convenience lock for a single-user machine.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSession means no session file exists: the user never logged in
	// or has logged out.
	ErrNoSession = errors.New("no active session")
	// ErrInvalidSession means the session file exists but its token does
	// not verify (expired, tampered with, or signed with another key).
	ErrInvalidSession = errors.New("session is invalid or expired")
)

// DefaultTTL bounds a session the way a browser tab bounds sessionStorage:
// long enough for a working day, gone by the next morning.
const DefaultTTL = 12 * time.Hour

// SessionManager issues and verifies session tokens.
type SessionManager struct {
	keyPath     string
	sessionPath string
	ttl         time.Duration
	now         func() time.Time
}

// NewSessionManager returns a manager storing its key and session token at
// the given paths.
func NewSessionManager(keyPath, sessionPath string) *SessionManager {
	return &SessionManager{
		keyPath:     keyPath,
		sessionPath: sessionPath,
		ttl:         DefaultTTL,
		now:         time.Now,
	}
}

// Login issues a token for subject and writes it to the session file.
func (m *SessionManager) Login(subject string) error {
	key, err := m.loadOrCreateKey()
	if err != nil {
		return err
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(m.sessionPath), 0o700); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	if err := os.WriteFile(m.sessionPath, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Verify checks the current session and returns its subject.
func (m *SessionManager) Verify() (string, error) {
	raw, err := os.ReadFile(m.sessionPath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("read session file: %w", err)
	}

	key, err := os.ReadFile(m.keyPath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrInvalidSession
	}
	if err != nil {
		return "", fmt.Errorf("read session key: %w", err)
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(string(raw), claims,
		func(t *jwt.Token) (interface{}, error) { return key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidSession
	}
	return claims.Subject, nil
}

// Logout removes the session file. A missing file is not an error.
func (m *SessionManager) Logout() error {
	err := os.Remove(m.sessionPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// loadOrCreateKey reads the signing key, generating one on first use.
func (m *SessionManager) loadOrCreateKey() ([]byte, error) {
	key, err := os.ReadFile(m.keyPath)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read session key: %w", err)
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("generate session key: %w", err)
	}
	key = []byte(hex.EncodeToString(buf))

	if err := os.MkdirAll(filepath.Dir(m.keyPath), 0o700); err != nil {
		return nil, fmt.Errorf("create key directory: %w", err)
	}
	if err := os.WriteFile(m.keyPath, key, 0o600); err != nil {
		return nil, fmt.Errorf("write session key: %w", err)
	}
	return key, nil
}
