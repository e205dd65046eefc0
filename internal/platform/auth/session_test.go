package auth

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestManager(t *testing.T) *SessionManager {
	t.Helper()
	dir := t.TempDir()
	return NewSessionManager(
		filepath.Join(dir, "session.key"),
		filepath.Join(dir, "session"),
	)
}

func TestSessionManager_LoginVerifyLogout(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Verify(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession before login, got %v", err)
	}

	if err := m.Login("Dr. BECHEUR Saddek"); err != nil {
		t.Fatalf("login: %v", err)
	}

	subject, err := m.Verify()
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if subject != "Dr. BECHEUR Saddek" {
		t.Errorf("unexpected subject %q", subject)
	}

	if err := m.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := m.Verify(); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession after logout, got %v", err)
	}

	// Logging out twice is fine.
	if err := m.Logout(); err != nil {
		t.Errorf("second logout: %v", err)
	}
}

func TestSessionManager_ExpiredSessionRejected(t *testing.T) {
	m := newTestManager(t)

	issued := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }
	if err := m.Login("dr"); err != nil {
		t.Fatalf("login: %v", err)
	}

	m.now = func() time.Time { return issued.Add(DefaultTTL + time.Minute) }
	if _, err := m.Verify(); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("expected ErrInvalidSession for expired token, got %v", err)
	}
}

func TestSessionManager_TamperedTokenRejected(t *testing.T) {
	m := newTestManager(t)

	if err := m.Login("dr"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := os.WriteFile(m.sessionPath, []byte("not-a-token"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := m.Verify(); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("expected ErrInvalidSession for tampered token, got %v", err)
	}
}

func TestSessionManager_KeyIsReused(t *testing.T) {
	m := newTestManager(t)

	if err := m.Login("dr"); err != nil {
		t.Fatalf("login: %v", err)
	}
	key1, err := os.ReadFile(m.keyPath)
	if err != nil {
		t.Fatal(err)
	}

	if err := m.Login("dr"); err != nil {
		t.Fatalf("second login: %v", err)
	}
	key2, err := os.ReadFile(m.keyPath)
	if err != nil {
		t.Fatal(err)
	}

	if string(key1) != string(key2) {
		t.Error("signing key regenerated on second login")
	}
}
