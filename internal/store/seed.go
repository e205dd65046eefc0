package store

import (
	"time"

	"github.com/medicabinet/medicabinet/internal/record"
)

// Seed builds the document written the first time no stored document exists:
// two example patients, one scheduled appointment for tomorrow, the three
// starter medications, and the default practitioner profile.
func Seed(now time.Time) *record.Document {
	created := record.NewMillis(now)
	return &record.Document{
		SchemaVersion: CurrentSchemaVersion,
		Patients: []record.Patient{
			{
				ID:             "1",
				FirstName:      "Jean",
				LastName:       "Dupont",
				BirthDate:      "1980-05-15",
				Gender:         record.GenderMale,
				Phone:          "06 12 34 56 78",
				Address:        "10 Rue de la Paix, Paris",
				MedicalHistory: "Hypertension",
				Allergies:      "Pénicilline",
				CreatedAt:      created,
			},
			{
				ID:             "2",
				FirstName:      "Marie",
				LastName:       "Curie",
				BirthDate:      "1992-11-07",
				Gender:         record.GenderFemale,
				Phone:          "07 98 76 54 32",
				Address:        "25 Avenue des Champs, Lyon",
				MedicalHistory: "Asthme léger",
				Allergies:      "Aucune",
				CreatedAt:      created,
			},
		},
		Prescriptions: []record.Prescription{},
		Appointments: []record.Appointment{
			{
				ID:        "101",
				PatientID: "1",
				Date:      record.NewMillis(now.Add(24 * time.Hour)),
				Reason:    "Suivi tension",
				Status:    record.StatusScheduled,
			},
		},
		SavedMedications: seedMedications(),
		Consultations:    []record.Consultation{},
		DoctorProfile:    seedProfile(),
	}
}

func seedProfile() record.DoctorProfile {
	return record.DoctorProfile{
		Name:         "Dr. BECHEUR Saddek",
		Specialty:    "Médecine Générale",
		Address:      "Cité des Roses, 25000 Constantine",
		Phone:        "0555 32 31 94",
		Email:        "cabinet.becheur@gmail.com",
		SecurityCode: DefaultSecurityCode,
	}
}

func seedMedications() []record.SavedMedication {
	return []record.SavedMedication{
		{
			ID:         "m1",
			Medication: record.Medication{Name: "Doliprane", Dosage: "1000mg", Duration: "5 jours", Instructions: "1 comprimé toutes les 6 heures si douleur"},
			UsageCount: 1,
		},
		{
			ID:         "m2",
			Medication: record.Medication{Name: "Amoxicilline", Dosage: "1g", Duration: "7 jours", Instructions: "1 matin et soir au milieu du repas"},
			UsageCount: 1,
		},
		{
			ID:         "m3",
			Medication: record.Medication{Name: "Spasfon", Dosage: "80mg", Duration: "3 jours", Instructions: "2 comprimés en cas de douleur"},
			UsageCount: 1,
		},
	}
}
