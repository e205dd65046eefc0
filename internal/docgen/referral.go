package docgen

import (
	"fmt"
	"time"

	"github.com/medicabinet/medicabinet/internal/record"
)

// Referral layout positions, in mm. The closing and signature sit at fixed
// heights and are not pushed down by the body; a very long body can reach
// them, which mirrors the printed form this layout reproduces.
const (
	referralBodyY      = 125.0
	referralBodyWidth  = PageWidth - 2*marginX
	referralClosingY   = 220.0
	referralSignatureY = 235.0
	referralBodySize   = 12.0
)

// BuildReferral lays out the lettre d'orientation: date, title, inline
// patient identity, and the free-text body word-wrapped to the printable
// width.
func BuildReferral(p record.Patient, doctor record.DoctorProfile, body string, now time.Time) Layout {
	b := newBuilder()
	writeHeader(b, doctor)

	b.textColor(0, 0, 0)
	b.font("", 11)
	b.text(PageWidth-60, 60, "Le "+FormatDate(now))

	b.font("B", 16)
	b.textCentered(PageWidth/2, 80, "LETTRE D'ORIENTATION")

	b.font("", 12)
	b.text(marginX, 100, "Concernant le patient: "+p.FullName())
	b.text(marginX, 107, fmt.Sprintf("Âge: %d ans", p.Age(now)))

	y := referralBodyY
	for _, line := range wrap(body, referralBodyWidth, referralBodySize) {
		b.text(marginX, y, line)
		y += lineHeight(referralBodySize)
	}

	b.font("", 11)
	b.text(PageWidth-70, referralClosingY, "Confraternellement,")
	b.text(PageWidth-70, referralSignatureY, "Signature & Cachet")

	writeFooter(b)
	return b.layout(fmt.Sprintf("Orientation_%s.pdf", p.LastName))
}
