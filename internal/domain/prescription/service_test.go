package prescription

import (
	"testing"

	"github.com/medicabinet/medicabinet/internal/domain/medication"
	"github.com/medicabinet/medicabinet/internal/domain/patient"
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

func TestService_AddGetRoundTrip(t *testing.T) {
	svc := NewService(emptyStore(t))

	rx := record.Prescription{
		ID:        "rx1",
		PatientID: "p1",
		Date:      1000,
		Medications: []record.Medication{
			{Name: "Doliprane", Dosage: "1000mg", Duration: "5 jours", Instructions: "si douleur"},
		},
		Notes: "Repos conseillé",
	}
	if err := svc.Add(rx); err != nil {
		t.Fatalf("add: %v", err)
	}

	got, err := svc.Get("rx1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected prescription, got nil")
	}
	if got.Notes != rx.Notes || len(got.Medications) != 1 || got.Medications[0] != rx.Medications[0] {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestService_ListByPatientSortsByDateDesc(t *testing.T) {
	svc := NewService(emptyStore(t))

	for _, rx := range []record.Prescription{
		{ID: "rx1", PatientID: "p1", Date: 100},
		{ID: "rx2", PatientID: "p2", Date: 150},
		{ID: "rx3", PatientID: "p1", Date: 300},
		{ID: "rx4", PatientID: "p1", Date: 200},
	} {
		if err := svc.Add(rx); err != nil {
			t.Fatalf("add %s: %v", rx.ID, err)
		}
	}

	got, err := svc.ListByPatient("p1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"rx3", "rx4", "rx1"}
	if len(got) != len(want) {
		t.Fatalf("expected %d prescriptions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("unexpected order at %d: got %s, want %s", i, got[i].ID, want[i])
		}
	}
}

// TestPrescriptionCycle walks the full flow: register the patient, learn the
// medication twice through the library, issue the prescription, and read it
// back per patient.
func TestPrescriptionCycle(t *testing.T) {
	st := emptyStore(t)
	patients := patient.NewService(st)
	library := medication.NewService(st)
	prescriptions := NewService(st)

	jean := record.Patient{
		ID:        "jean-1",
		FirstName: "Jean",
		LastName:  "Dupont",
		BirthDate: "1980-05-15",
		Gender:    record.GenderMale,
		CreatedAt: 1000,
	}
	if err := patients.Add(jean); err != nil {
		t.Fatalf("add patient: %v", err)
	}

	doliprane := record.Medication{
		Name:         "Doliprane",
		Dosage:       "1000mg",
		Duration:     "5 jours",
		Instructions: "1 comprimé toutes les 6 heures si douleur",
	}
	if err := library.Learn(doliprane); err != nil {
		t.Fatalf("learn: %v", err)
	}
	if err := library.Learn(doliprane); err != nil {
		t.Fatalf("learn again: %v", err)
	}

	saved, err := library.ListRanked()
	if err != nil {
		t.Fatalf("list library: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("expected one library entry, got %d", len(saved))
	}
	if saved[0].UsageCount != 2 {
		t.Errorf("expected usage count 2, got %d", saved[0].UsageCount)
	}

	// An older prescription for another patient must not interfere.
	if err := prescriptions.Add(record.Prescription{ID: "rx-other", PatientID: "marie-1", Date: 500}); err != nil {
		t.Fatalf("add other: %v", err)
	}
	rx := record.Prescription{
		ID:          "rx-jean",
		PatientID:   jean.ID,
		Date:        2000,
		Medications: []record.Medication{doliprane},
	}
	if err := prescriptions.Add(rx); err != nil {
		t.Fatalf("add prescription: %v", err)
	}

	got, err := prescriptions.ListByPatient(jean.ID)
	if err != nil {
		t.Fatalf("list by patient: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly one prescription for Jean, got %d", len(got))
	}
	if got[0].ID != "rx-jean" || got[0].Medications[0].Name != "Doliprane" {
		t.Errorf("unexpected prescription: %+v", got[0])
	}
}
