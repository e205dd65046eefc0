// Package consultation manages visit records. Consultations are append-only:
// no edit or delete operation is exposed.
package consultation

import (
	"sort"

	"github.com/medicabinet/medicabinet/internal/record"
	"github.com/medicabinet/medicabinet/internal/store"
)

// Service exposes the consultation repository over the aggregate-document
// store.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// List returns all consultations, most recent first.
func (s *Service) List() ([]record.Consultation, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return sortByDateDesc(doc.Consultations), nil
}

// ListByPatient returns the consultations referencing the given patient id,
// most recent first.
func (s *Service) ListByPatient(patientID string) ([]record.Consultation, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	var matched []record.Consultation
	for _, c := range doc.Consultations {
		if c.PatientID == patientID {
			matched = append(matched, c)
		}
	}
	return sortByDateDesc(matched), nil
}

// Add appends a consultation and persists the document.
func (s *Service) Add(c record.Consultation) error {
	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	doc.Consultations = append(doc.Consultations, c)
	return s.store.Save(doc)
}

func sortByDateDesc(in []record.Consultation) []record.Consultation {
	out := append([]record.Consultation(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
