// Package appointment manages planned visits and their status lifecycle.
package appointment

import (
	"errors"
	"fmt"
	"sort"

	"github.com/medicabinet/medicabinet/internal/record"
	"github.com/medicabinet/medicabinet/internal/store"
)

var (
	// ErrUnknownStatus is returned for a status outside the lifecycle set.
	ErrUnknownStatus = errors.New("unknown appointment status")
	// ErrInvalidTransition is returned when a status change would leave a
	// terminal state. Only scheduled appointments can move, and only to
	// completed or cancelled.
	ErrInvalidTransition = errors.New("illegal appointment status transition")
)

var validStatuses = map[record.AppointmentStatus]bool{
	record.StatusScheduled: true,
	record.StatusCompleted: true,
	record.StatusCancelled: true,
}

// Service exposes the appointment repository over the aggregate-document
// store.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// List returns all appointments in chronological order. Ties keep their
// insertion order.
func (s *Service) List() ([]record.Appointment, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	out := append([]record.Appointment(nil), doc.Appointments...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out, nil
}

// Get returns the appointment with the given id, or nil when absent.
func (s *Service) Get(id string) (*record.Appointment, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Appointments {
		if doc.Appointments[i].ID == id {
			a := doc.Appointments[i]
			return &a, nil
		}
	}
	return nil, nil
}

// Add appends an appointment and persists the document. An empty status
// defaults to scheduled.
func (s *Service) Add(a record.Appointment) error {
	if a.Status == "" {
		a.Status = record.StatusScheduled
	}
	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	doc.Appointments = append(doc.Appointments, a)
	return s.store.Save(doc)
}

// UpdateStatus moves an appointment to a new lifecycle state. Legal
// transitions are scheduled->completed and scheduled->cancelled; completed and
// cancelled are terminal. An unknown id is a silent no-op.
func (s *Service) UpdateStatus(id string, status record.AppointmentStatus) error {
	if !validStatuses[status] {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	for i := range doc.Appointments {
		if doc.Appointments[i].ID != id {
			continue
		}
		from := doc.Appointments[i].Status
		if from != record.StatusScheduled || status == record.StatusScheduled {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, status)
		}
		doc.Appointments[i].Status = status
		return s.store.Save(doc)
	}
	return nil
}
