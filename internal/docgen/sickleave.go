package docgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/medicabinet/medicabinet/internal/record"
)

// Sick-leave certificate vertical rhythm, in mm.
const (
	certBodyY     = 130.0
	certLineH     = 10.0
	certSignature = 240.0
)

// SickLeaveEnd returns the last covered day of a leave of the given length:
// the range is inclusive, so a 3-day leave starting on the 10th ends on the
// 12th.
func SickLeaveEnd(start time.Time, days int) time.Time {
	return start.AddDate(0, 0, days-1)
}

// BuildSickLeave lays out the certificat de maladie: the formal templated
// paragraph naming the practitioner and patient, the rest length in days,
// and the inclusive start/end date pair.
func BuildSickLeave(p record.Patient, doctor record.DoctorProfile, days int, start time.Time, now time.Time) Layout {
	end := SickLeaveEnd(start, days)

	b := newBuilder()
	writeHeader(b, doctor)

	b.textColor(0, 0, 0)
	b.font("", 11)
	b.text(PageWidth-80, 60, fmt.Sprintf("Fait à %s, le %s", practiceCity(doctor.Address), FormatDate(now)))

	b.font("B", 18)
	b.textCentered(PageWidth/2, 90, "CERTIFICAT DE MALADIE")
	b.font("B", 14)
	b.textCentered(PageWidth/2, 98, "(Arrêt de travail)")

	b.font("", 12)
	b.text(marginX, certBodyY, fmt.Sprintf("Je soussigné(e), Dr. %s,", doctor.Name))
	b.text(marginX, certBodyY+certLineH, "Certifie avoir examiné ce jour le patient:")
	b.font("B", 12)
	b.text(95, certBodyY+certLineH, p.LastName+" "+p.FirstName)

	b.font("", 12)
	b.text(marginX, certBodyY+certLineH*2, fmt.Sprintf("(Âgé de %d ans)", p.Age(now)))

	b.text(marginX, certBodyY+certLineH*3.5, "Et déclare que son état de santé nécessite un repos de :")
	b.font("B", 12)
	b.text(125, certBodyY+certLineH*3.5, fmt.Sprintf("%d Jours", days))

	b.font("", 12)
	b.text(marginX, certBodyY+certLineH*4.5, "Sauf complications, du :")
	b.font("B", 12)
	b.text(70, certBodyY+certLineH*4.5, FormatDate(start))
	b.font("", 12)
	b.text(110, certBodyY+certLineH*4.5, "Au :")
	b.font("B", 12)
	b.text(125, certBodyY+certLineH*4.5, FormatDate(end))
	b.text(160, certBodyY+certLineH*4.5, "(inclus)")

	b.font("I", 10)
	b.text(marginX, certBodyY+certLineH*7, "Certificat remis en main propre pour servir et valoir ce que de droit.")

	b.font("", 11)
	b.text(PageWidth-70, certSignature, "Signature & Cachet")

	writeFooter(b)
	return b.layout(fmt.Sprintf("Arret_Travail_%s.pdf", p.LastName))
}

// practiceCity extracts the city from a "street, postcode city" address for
// the "Fait à" line.
func practiceCity(address string) string {
	parts := strings.SplitN(address, ",", 2)
	if len(parts) == 2 {
		if city := strings.TrimSpace(parts[1]); city != "" {
			return city
		}
	}
	return "Constantine"
}
