// Package prescription manages issued prescriptions. Prescriptions are
// append-only; their medication list is a value, not a reference into the
// medication library.
package prescription

import (
	"sort"

	"github.com/medicabinet/medicabinet/internal/record"
	"github.com/medicabinet/medicabinet/internal/store"
)

// Service exposes the prescription repository over the aggregate-document
// store.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// List returns all prescriptions, most recent first.
func (s *Service) List() ([]record.Prescription, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return sortByDateDesc(doc.Prescriptions), nil
}

// Get returns the prescription with the given id, or nil when absent.
func (s *Service) Get(id string) (*record.Prescription, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Prescriptions {
		if doc.Prescriptions[i].ID == id {
			p := doc.Prescriptions[i]
			return &p, nil
		}
	}
	return nil, nil
}

// ListByPatient returns the prescriptions referencing the given patient id,
// most recent first.
func (s *Service) ListByPatient(patientID string) ([]record.Prescription, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	var matched []record.Prescription
	for _, p := range doc.Prescriptions {
		if p.PatientID == patientID {
			matched = append(matched, p)
		}
	}
	return sortByDateDesc(matched), nil
}

// Add appends a prescription and persists the document.
func (s *Service) Add(p record.Prescription) error {
	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	doc.Prescriptions = append(doc.Prescriptions, p)
	return s.store.Save(doc)
}

func sortByDateDesc(in []record.Prescription) []record.Prescription {
	out := append([]record.Prescription(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
