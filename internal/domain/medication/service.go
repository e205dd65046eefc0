// Package medication maintains the learned medication library that backs
// prescription autocomplete. The library ranks distinct medication templates
// by how often they have been prescribed; names are matched
// case-insensitively. There is no decay and no removal: prescribing is the
// only learning signal.
package medication

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/medicabinet/medicabinet/internal/record"
	"github.com/medicabinet/medicabinet/internal/store"
)

// Service exposes the medication learning index over the aggregate-document
// store.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// ListRanked returns the library ordered by descending usage count. Ties
// keep their insertion order. Substring filtering for autocomplete is the
// caller's concern.
func (s *Service) ListRanked() ([]record.SavedMedication, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	out := append([]record.SavedMedication(nil), doc.SavedMedications...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UsageCount > out[j].UsageCount
	})
	return out, nil
}

// Learn records one use of a medication. When an entry with the same name
// already exists (case-insensitive), only its usage count is incremented;
// the saved dosage, duration and instructions are kept as first learned.
// Otherwise a new entry is inserted with usage count 1.
func (s *Service) Learn(med record.Medication) error {
	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	for i := range doc.SavedMedications {
		if strings.EqualFold(doc.SavedMedications[i].Name, med.Name) {
			doc.SavedMedications[i].UsageCount++
			return s.store.Save(doc)
		}
	}
	doc.SavedMedications = append(doc.SavedMedications, record.SavedMedication{
		ID:         uuid.NewString(),
		Medication: med,
		UsageCount: 1,
	})
	return s.store.Save(doc)
}
