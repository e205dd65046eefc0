package store

import "github.com/medicabinet/medicabinet/internal/record"

// DefaultSecurityCode is the PIN stamped on freshly seeded or migrated
// profiles.
const DefaultSecurityCode = "0000"

// Migration is one schema upgrade step. Apply must be idempotent and
// additive: it fills a missing field with its default and never touches a
// field that is already present.
type Migration struct {
	Version int
	Name    string
	Apply   func(*record.Document)
}

// migrations is the ordered step table. Documents persisted before
// versioning decode as version 0 and are walked through every step; the
// presence checks inside each step keep re-runs harmless.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "doctor-profile",
		Apply: func(d *record.Document) {
			if d.DoctorProfile == (record.DoctorProfile{}) {
				d.DoctorProfile = seedProfile()
			}
		},
	},
	{
		Version: 2,
		Name:    "security-code",
		Apply: func(d *record.Document) {
			if d.DoctorProfile.SecurityCode == "" {
				d.DoctorProfile.SecurityCode = DefaultSecurityCode
			}
		},
	},
	{
		Version: 3,
		Name:    "saved-medications",
		Apply: func(d *record.Document) {
			if d.SavedMedications == nil {
				d.SavedMedications = seedMedications()
			}
		},
	},
	{
		Version: 4,
		Name:    "consultations",
		Apply: func(d *record.Document) {
			if d.Consultations == nil {
				d.Consultations = []record.Consultation{}
			}
		},
	},
}

// CurrentSchemaVersion is the version of the latest migration step.
const CurrentSchemaVersion = 4

// Migrate applies every step above the document's recorded version and
// stamps the final version. It reports whether any step ran.
func Migrate(d *record.Document) bool {
	ran := false
	for _, m := range migrations {
		if m.Version <= d.SchemaVersion {
			continue
		}
		m.Apply(d)
		d.SchemaVersion = m.Version
		ran = true
	}
	return ran
}

// MigrationStatus describes one step relative to a document.
type MigrationStatus struct {
	Version int
	Name    string
	Applied bool
}

// Status reports, per step, whether the document is already at or beyond it.
func Status(d *record.Document) []MigrationStatus {
	out := make([]MigrationStatus, 0, len(migrations))
	for _, m := range migrations {
		out = append(out, MigrationStatus{
			Version: m.Version,
			Name:    m.Name,
			Applied: d.SchemaVersion >= m.Version,
		})
	}
	return out
}
