// Package patient manages the patient collection of the practice.
package patient

import (
	"sort"

	"github.com/medicabinet/medicabinet/internal/record"
	"github.com/medicabinet/medicabinet/internal/store"
)

// Service exposes the patient repository over the aggregate-document store.
// Entities arrive from the presentation layer with an assigned id and
// pre-validated required fields; the service does not re-validate them.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// List returns all patients, most recently created first. Ties keep their
// insertion order.
func (s *Service) List() ([]record.Patient, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	out := append([]record.Patient(nil), doc.Patients...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out, nil
}

// Get returns the patient with the given id, or nil when absent.
func (s *Service) Get(id string) (*record.Patient, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Patients {
		if doc.Patients[i].ID == id {
			p := doc.Patients[i]
			return &p, nil
		}
	}
	return nil, nil
}

// Add appends a patient and persists the document.
func (s *Service) Add(p record.Patient) error {
	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	doc.Patients = append(doc.Patients, p)
	return s.store.Save(doc)
}

// Update replaces the patient with a matching id. An unknown id is a silent
// no-op and nothing is persisted.
func (s *Service) Update(p record.Patient) error {
	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	for i := range doc.Patients {
		if doc.Patients[i].ID == p.ID {
			doc.Patients[i] = p
			return s.store.Save(doc)
		}
	}
	return nil
}

// Delete removes the patient with the given id. Dependent appointments,
// consultations and prescriptions are left in place with their dangling
// patientId; there is no cascade. An unknown id is a silent no-op.
func (s *Service) Delete(id string) error {
	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	for i := range doc.Patients {
		if doc.Patients[i].ID == id {
			doc.Patients = append(doc.Patients[:i], doc.Patients[i+1:]...)
			return s.store.Save(doc)
		}
	}
	return nil
}
