// Package docgen builds the practice's printable documents. A builder
// produces a Layout, an ordered list of draw commands on A4 millimetre
// coordinates, as pure data; rendering backends replay it. This keeps the
// layout contract (positions, pagination, wrapping) testable without a PDF
// library in the loop.
package docgen

import "github.com/medicabinet/medicabinet/internal/record"

// A4 geometry and the fixed positions shared by every document, in mm.
const (
	PageWidth  = 210.0
	PageHeight = 297.0

	marginX    = 20.0
	separatorY = 45.0
	footerY    = PageHeight - 15
)

// Op identifies a draw command.
type Op int

const (
	OpSetFont Op = iota
	OpSetTextColor
	OpSetDrawColor
	OpText
	OpLine
)

// Align controls how a text command interprets its X coordinate.
type Align int

const (
	AlignLeft   Align = iota
	AlignCenter       // X is the center of the rendered string
)

// Command is one draw operation. Only the fields relevant to its Op are set.
type Command struct {
	Op    Op
	Style string // "", "B" or "I"
	Size  float64
	R     int
	G     int
	B     int
	X     float64
	Y     float64
	X2    float64
	Y2    float64
	Align Align
	Text  string
}

// Page is the ordered command list of one page.
type Page []Command

// Layout is a fully computed printable document plus its derived file name.
type Layout struct {
	FileName string
	Pages    []Page
}

type builder struct {
	pages []Page
}

func newBuilder() *builder {
	return &builder{pages: []Page{{}}}
}

func (b *builder) add(c Command) {
	b.pages[len(b.pages)-1] = append(b.pages[len(b.pages)-1], c)
}

func (b *builder) addPage() {
	b.pages = append(b.pages, Page{})
}

func (b *builder) font(style string, size float64) {
	b.add(Command{Op: OpSetFont, Style: style, Size: size})
}

func (b *builder) textColor(r, g, bl int) {
	b.add(Command{Op: OpSetTextColor, R: r, G: g, B: bl})
}

func (b *builder) drawColor(r, g, bl int) {
	b.add(Command{Op: OpSetDrawColor, R: r, G: g, B: bl})
}

func (b *builder) text(x, y float64, s string) {
	b.add(Command{Op: OpText, X: x, Y: y, Text: s})
}

func (b *builder) textCentered(x, y float64, s string) {
	b.add(Command{Op: OpText, X: x, Y: y, Text: s, Align: AlignCenter})
}

func (b *builder) line(x1, y1, x2, y2 float64) {
	b.add(Command{Op: OpLine, X: x1, Y: y1, X2: x2, Y2: y2})
}

func (b *builder) layout(fileName string) Layout {
	return Layout{FileName: fileName, Pages: b.pages}
}

// writeHeader draws the practitioner identity block and separator at the top
// of the current page.
func writeHeader(b *builder, doctor record.DoctorProfile) {
	b.font("B", 16)
	b.textColor(40, 100, 150)
	b.text(marginX, 20, doctor.Name)
	b.font("", 10)
	b.textColor(100, 100, 100)
	b.text(marginX, 26, doctor.Specialty)
	b.text(marginX, 31, doctor.Address)
	b.text(marginX, 36, "Tél: "+doctor.Phone)
	b.text(marginX, 41, "Email: "+doctor.Email)
	b.drawColor(200, 200, 200)
	b.line(marginX, separatorY, PageWidth-marginX, separatorY)
}

// footerQuote is printed in italics at the bottom of the final page.
const footerQuote = `"La vie d'un patient dépend d'une goutte de votre sang"`

// writeFooter draws the closing quote on the current (final) page.
func writeFooter(b *builder) {
	b.font("I", 9)
	b.textColor(150, 150, 150)
	b.textCentered(PageWidth/2, footerY, footerQuote)
}
