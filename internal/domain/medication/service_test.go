package medication

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

func TestService_LearnInsertsNewEntry(t *testing.T) {
	svc := NewService(emptyStore(t))

	med := record.Medication{
		Name:         "Doliprane",
		Dosage:       "1000mg",
		Duration:     "5 jours",
		Instructions: "1 comprimé toutes les 6 heures si douleur",
	}
	if err := svc.Learn(med); err != nil {
		t.Fatalf("learn: %v", err)
	}

	got, err := svc.ListRanked()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Medication != med {
		t.Errorf("entry does not copy input fields: %+v", got[0])
	}
	if got[0].UsageCount != 1 {
		t.Errorf("expected usage count 1, got %d", got[0].UsageCount)
	}
	if got[0].ID == "" {
		t.Error("expected a generated id")
	}
}

func TestService_LearnDeduplicatesCaseInsensitive(t *testing.T) {
	svc := NewService(emptyStore(t))

	first := record.Medication{Name: "Doliprane", Dosage: "1000mg", Duration: "5 jours", Instructions: "si douleur"}
	if err := svc.Learn(first); err != nil {
		t.Fatalf("learn: %v", err)
	}
	// Same name, different case and different details.
	second := record.Medication{Name: "doliprane", Dosage: "500mg", Duration: "2 jours", Instructions: "autre"}
	if err := svc.Learn(second); err != nil {
		t.Fatalf("learn: %v", err)
	}

	got, err := svc.ListRanked()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected a single deduplicated entry, got %d", len(got))
	}
	if got[0].UsageCount != 2 {
		t.Errorf("expected usage count 2, got %d", got[0].UsageCount)
	}
	// The most recent usage must not overwrite the saved details.
	if got[0].Dosage != "1000mg" || got[0].Duration != "5 jours" || got[0].Instructions != "si douleur" {
		t.Errorf("saved details overwritten by later usage: %+v", got[0].Medication)
	}
}

func TestService_LearnIncrementsByExactlyOne(t *testing.T) {
	svc := NewService(emptyStore(t))

	med := record.Medication{Name: "Spasfon", Dosage: "80mg"}
	for i := 0; i < 5; i++ {
		if err := svc.Learn(med); err != nil {
			t.Fatalf("learn #%d: %v", i, err)
		}
	}

	got, err := svc.ListRanked()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].UsageCount != 5 {
		t.Errorf("expected one entry with usage count 5, got %+v", got)
	}
}

func TestService_ListRankedOrdersByUsage(t *testing.T) {
	svc := NewService(emptyStore(t))

	for _, name := range []string{"A", "B", "C"} {
		if err := svc.Learn(record.Medication{Name: name}); err != nil {
			t.Fatalf("learn %s: %v", name, err)
		}
	}
	// B used twice more, C once more.
	for _, name := range []string{"B", "B", "C"} {
		if err := svc.Learn(record.Medication{Name: name}); err != nil {
			t.Fatalf("learn %s: %v", name, err)
		}
	}

	got, err := svc.ListRanked()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var order []string
	for _, m := range got {
		order = append(order, m.Name)
	}
	want := []string{"B", "C", "A"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("unexpected ranking: got %v, want %v", order, want)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].UsageCount > got[i-1].UsageCount {
			t.Fatal("ranking is not non-increasing by usage count")
		}
	}
}

func TestService_ListRankedTiesKeepInsertionOrder(t *testing.T) {
	svc := NewService(emptyStore(t))

	for _, name := range []string{"Zeta", "Alpha", "Mu"} {
		if err := svc.Learn(record.Medication{Name: name}); err != nil {
			t.Fatalf("learn %s: %v", name, err)
		}
	}

	got, err := svc.ListRanked()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"Zeta", "Alpha", "Mu"}
	for i := range want {
		if got[i].Name != want[i] {
			t.Fatalf("ties reordered: got %+v", got)
		}
	}
}
