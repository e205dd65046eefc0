package consultation

import (
	"testing"

	"github.com/medicabinet/medicabinet/internal/record"
	"github.com/medicabinet/medicabinet/internal/store"
)

func emptyStore(t *testing.T) *store.MemStore {
	t.Helper()
	st := store.NewMemStore()
	err := st.Save(&record.Document{
		SchemaVersion:    store.CurrentSchemaVersion,
		Patients:         []record.Patient{},
		Prescriptions:    []record.Prescription{},
		Appointments:     []record.Appointment{},
		SavedMedications: []record.SavedMedication{},
		Consultations:    []record.Consultation{},
	})
	if err != nil {
		t.Fatalf("seed empty store: %v", err)
	}
	return st
}

func TestService_AddAndListByPatient(t *testing.T) {
	svc := NewService(emptyStore(t))

	for _, c := range []record.Consultation{
		{ID: "c1", PatientID: "p1", Date: 100, Reason: "Fièvre", Diagnosis: "Grippe"},
		{ID: "c2", PatientID: "p2", Date: 200, Reason: "Contrôle"},
		{ID: "c3", PatientID: "p1", Date: 300, Reason: "Suivi", Examination: "RAS"},
	} {
		if err := svc.Add(c); err != nil {
			t.Fatalf("add %s: %v", c.ID, err)
		}
	}

	got, err := svc.ListByPatient("p1")
	if err != nil {
		t.Fatalf("list by patient: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 consultations for p1, got %d", len(got))
	}
	// Most recent first.
	if got[0].ID != "c3" || got[1].ID != "c1" {
		t.Errorf("unexpected order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestService_ListSortsByDateDesc(t *testing.T) {
	svc := NewService(emptyStore(t))

	for _, c := range []record.Consultation{
		{ID: "old", PatientID: "p", Date: 100},
		{ID: "new", PatientID: "p", Date: 300},
		{ID: "mid", PatientID: "p", Date: 200},
	} {
		if err := svc.Add(c); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	got, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"new", "mid", "old"}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("unexpected order at %d: got %s, want %s", i, got[i].ID, want[i])
		}
	}
}

func TestService_ListByPatientUnknownIsEmpty(t *testing.T) {
	svc := NewService(emptyStore(t))
	got, err := svc.ListByPatient("ghost")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no consultations, got %d", len(got))
	}
}
