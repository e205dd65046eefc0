// Package record defines the entity types of the practice and the aggregate
// document they are persisted in. Field names follow the stored JSON layout,
// which is the external contract of the store: one document holding every
// collection plus the practitioner profile.
package record

import "time"

// Gender values are stored with their French display strings.
type Gender string

const (
	GenderMale   Gender = "Homme"
	GenderFemale Gender = "Femme"
	GenderOther  Gender = "Autre"
)

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Millis is an instant persisted as epoch milliseconds.
type Millis int64

// NewMillis converts a time.Time to its persisted representation.
func NewMillis(t time.Time) Millis { return Millis(t.UnixMilli()) }

// Time converts back to a time.Time in the local zone.
func (m Millis) Time() time.Time { return time.UnixMilli(int64(m)) }

// Patient is a person followed by the practice.
type Patient struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	BirthDate      string `json:"birthDate"` // YYYY-MM-DD
	Gender         Gender `json:"gender"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	MedicalHistory string `json:"medicalHistory"`
	Allergies      string `json:"allergies"`
	CreatedAt      Millis `json:"createdAt"`
}

// FullName returns "First Last".
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Age returns the patient's age in whole years by calendar-year subtraction.
// The month and day are ignored, so the result can be off by one near a
// birthday; generated documents rely on exactly this arithmetic.
func (p *Patient) Age(now time.Time) int {
	birth, err := time.Parse("2006-01-02", p.BirthDate)
	if err != nil {
		return 0
	}
	return now.Year() - birth.Year()
}

// Medication is a single prescription line. It is a value embedded in
// prescriptions and has no identity of its own.
type Medication struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
}

// SavedMedication is a medication template in the autocomplete library,
// ranked by how often it has been prescribed.
type SavedMedication struct {
	ID string `json:"id"`
	Medication
	UsageCount int `json:"usageCount"`
}

// Prescription is an ordered list of medications issued to a patient.
type Prescription struct {
	ID          string       `json:"id"`
	PatientID   string       `json:"patientId"`
	Date        Millis       `json:"date"`
	Medications []Medication `json:"medications"`
	Notes       string       `json:"notes,omitempty"`
}

// Appointment is a planned visit.
type Appointment struct {
	ID        string            `json:"id"`
	PatientID string            `json:"patientId"`
	Date      Millis            `json:"date"`
	Reason    string            `json:"reason"`
	Status    AppointmentStatus `json:"status"`
}

// Consultation is the written record of a visit.
type Consultation struct {
	ID          string `json:"id"`
	PatientID   string `json:"patientId"`
	Date        Millis `json:"date"`
	Reason      string `json:"reason"`
	Examination string `json:"examination"`
	Diagnosis   string `json:"diagnosis"`
	Notes       string `json:"notes"`
}

// DoctorProfile is the singleton practitioner identity printed on every
// generated document. SecurityCode is the access-gate PIN, compared by exact
// string equality.
type DoctorProfile struct {
	Name         string `json:"name"`
	Specialty    string `json:"specialty"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	SecurityCode string `json:"securityCode"`
}

// Document is the aggregate persisted under the store's single key. Every
// mutation round-trips the whole document. SchemaVersion drives the
// migration step table in the store package; documents written before
// versioning decode as version 0.
type Document struct {
	SchemaVersion    int               `json:"schemaVersion"`
	Patients         []Patient         `json:"patients"`
	Prescriptions    []Prescription    `json:"prescriptions"`
	Appointments     []Appointment     `json:"appointments"`
	SavedMedications []SavedMedication `json:"savedMedications"`
	Consultations    []Consultation    `json:"consultations"`
	DoctorProfile    DoctorProfile     `json:"doctorProfile"`
}

// Clone returns a deep copy of the document. Nil-ness of the collection
// slices is preserved: a nil collection means "absent" to the migration
// steps, while an empty one means "present and empty".
func (d *Document) Clone() *Document {
	out := *d
	out.Patients = cloneSlice(d.Patients)
	out.Appointments = cloneSlice(d.Appointments)
	out.SavedMedications = cloneSlice(d.SavedMedications)
	out.Consultations = cloneSlice(d.Consultations)
	out.Prescriptions = cloneSlice(d.Prescriptions)
	for i := range out.Prescriptions {
		out.Prescriptions[i].Medications = cloneSlice(d.Prescriptions[i].Medications)
	}
	return &out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
