package docgen

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// RenderPDF replays a layout through the fpdf backend and writes the result
// to path.
func RenderPDF(l Layout, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range l.Pages {
		pdf.AddPage()
		for _, c := range page {
			switch c.Op {
			case OpSetFont:
				pdf.SetFont("Helvetica", c.Style, c.Size)
			case OpSetTextColor:
				pdf.SetTextColor(c.R, c.G, c.B)
			case OpSetDrawColor:
				pdf.SetDrawColor(c.R, c.G, c.B)
			case OpText:
				s := tr(c.Text)
				x := c.X
				if c.Align == AlignCenter {
					x -= pdf.GetStringWidth(s) / 2
				}
				pdf.Text(x, c.Y, s)
			case OpLine:
				pdf.Line(c.X, c.Y, c.X2, c.Y2)
			}
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
