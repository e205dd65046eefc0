package practitioner

import (
	"errors"
	"testing"

	"github.com/medicabinet/medicabinet/internal/record"
	"github.com/medicabinet/medicabinet/internal/store"
)

func storeWithProfile(t *testing.T, profile record.DoctorProfile) *store.MemStore {
	t.Helper()
	st := store.NewMemStore()
	err := st.Save(&record.Document{
		SchemaVersion:    store.CurrentSchemaVersion,
		Patients:         []record.Patient{},
		Prescriptions:    []record.Prescription{},
		Appointments:     []record.Appointment{},
		SavedMedications: []record.SavedMedication{},
		Consultations:    []record.Consultation{},
		DoctorProfile:    profile,
	})
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return st
}

func TestService_Authenticate(t *testing.T) {
	svc := NewService(storeWithProfile(t, record.DoctorProfile{
		Name:         "Dr. Test",
		SecurityCode: "1234",
	}))

	if err := svc.Authenticate("1234"); err != nil {
		t.Errorf("correct PIN rejected: %v", err)
	}
	if err := svc.Authenticate("0000"); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("wrong PIN accepted, err=%v", err)
	}
	if err := svc.Authenticate(""); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("empty PIN accepted, err=%v", err)
	}
}

func TestService_AuthenticateMissingProfileFailsIdentically(t *testing.T) {
	svc := NewService(storeWithProfile(t, record.DoctorProfile{}))

	err := svc.Authenticate("0000")
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestService_UpdateProfileRoundTrip(t *testing.T) {
	svc := NewService(storeWithProfile(t, record.DoctorProfile{Name: "Dr. Old", SecurityCode: "0000"}))

	updated := record.DoctorProfile{
		Name:         "Dr. New",
		Specialty:    "Pédiatrie",
		Address:      "1 Rue Neuve, 31000 Toulouse",
		Phone:        "05 61 00 00 00",
		Email:        "dr.new@example.org",
		SecurityCode: "9999",
	}
	if err := svc.UpdateProfile(updated); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := svc.Profile()
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if got != updated {
		t.Errorf("profile mismatch:\n got %+v\nwant %+v", got, updated)
	}

	if err := svc.Authenticate("9999"); err != nil {
		t.Errorf("new PIN rejected after update: %v", err)
	}
	if err := svc.Authenticate("0000"); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("old PIN still accepted after update")
	}
}
