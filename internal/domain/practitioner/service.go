// Package practitioner manages the singleton doctor profile and the PIN
// access gate.
package practitioner

import (
	"crypto/subtle"
	"errors"

	"github.com/medicabinet/medicabinet/internal/record"
	"github.com/medicabinet/medicabinet/internal/store"
)

// ErrAuthenticationFailed is returned for any failed PIN check. It does not
// distinguish a wrong PIN from a missing profile.
var ErrAuthenticationFailed = errors.New("authentication failed")

// Service exposes the doctor profile over the aggregate-document store.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Profile returns the practitioner profile.
func (s *Service) Profile() (record.DoctorProfile, error) {
	doc, err := s.store.Load()
	if err != nil {
		return record.DoctorProfile{}, err
	}
	return doc.DoctorProfile, nil
}

// UpdateProfile replaces the practitioner profile and persists the document.
func (s *Service) UpdateProfile(p record.DoctorProfile) error {
	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	doc.DoctorProfile = p
	return s.store.Save(doc)
}

// Authenticate checks the PIN against the stored security code by exact
// string equality. There is no lockout, hashing or rate limiting; the code
// is a convenience gate, not a security boundary.
func (s *Service) Authenticate(pin string) error {
	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	code := doc.DoctorProfile.SecurityCode
	if code == "" {
		return ErrAuthenticationFailed
	}
	if subtle.ConstantTimeCompare([]byte(pin), []byte(code)) != 1 {
		return ErrAuthenticationFailed
	}
	return nil
}
