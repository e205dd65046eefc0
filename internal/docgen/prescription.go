package docgen

import (
	"fmt"
	"time"

	"github.com/medicabinet/medicabinet/internal/record"
)

// Prescription layout positions, in mm.
const (
	medStartY     = 110.0 // first medication line
	medBreakY     = 240.0 // past this, the next medication starts a new page
	medResumeY    = 30.0  // top margin on continuation pages
	signatureMinY = 240.0 // the signature never floats above this
)

// BuildPrescription lays out the printable ordonnance: issue date, patient
// identity and age, the centered title, one block per medication, and the
// signature placeholder. Medication blocks advance a fixed amount each; when
// the cursor passes the break threshold the next block opens a new page, so
// content never runs into the footer region.
func BuildPrescription(p record.Patient, doctor record.DoctorProfile, rx record.Prescription, now time.Time) Layout {
	b := newBuilder()
	writeHeader(b, doctor)

	issued := rx.Date.Time()
	b.textColor(0, 0, 0)
	b.font("", 11)
	b.text(PageWidth-60, 60, "Le "+FormatDate(issued))

	b.font("B", 11)
	b.text(marginX, 60, "Patient(e):")
	b.font("", 11)
	b.text(50, 60, p.FullName())
	b.font("B", 11)
	b.text(marginX, 66, "Âge:")
	b.font("", 11)
	b.text(50, 66, fmt.Sprintf("%d ans", p.Age(now)))

	b.font("B", 18)
	b.textCentered(PageWidth/2, 90, "ORDONNANCE")

	y := medStartY
	for _, med := range rx.Medications {
		if y > medBreakY {
			b.addPage()
			y = medResumeY
		}
		b.font("B", 12)
		b.text(25, y, "• "+med.Name+" "+med.Dosage)
		y += 7
		b.font("I", 10)
		b.textColor(60, 60, 60)
		b.text(30, y, med.Instructions)
		y += 5
		b.font("", 10)
		b.text(30, y, "Durée: "+med.Duration)
		y += 15
		b.textColor(0, 0, 0)
	}

	signatureY := y + 20
	if signatureY < signatureMinY {
		signatureY = signatureMinY
	}
	b.font("", 11)
	b.text(PageWidth-70, signatureY, "Signature & Cachet")

	writeFooter(b)
	return b.layout(fmt.Sprintf("Ordonnance_%s_%s.pdf", p.LastName, FileDate(issued)))
}
