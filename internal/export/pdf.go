// Package export renders appeal letters as downloadable PDF documents.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	title      = "MEDICAL NECESSITY APPEAL"
	fontFamily = "Arial"
	bodyLineHt = 6.0
)

type Exporter struct {
	now      func() time.Time
	compress bool
}

type Option func(*Exporter)

// WithClock fixes the generation date, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) { e.now = now }
}

// WithoutCompression leaves page streams readable in the output.
func WithoutCompression() Option {
	return func(e *Exporter) { e.compress = false }
}

func New(opts ...Option) *Exporter {
	e := &Exporter{now: time.Now, compress: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render lays out a single letter on A4 pages. Text outside ISO-8859-1 is
// replaced, so content alone never makes rendering fail.
func (e *Exporter) Render(patientName, letter string) ([]byte, error) {
	generated := e.now()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(e.compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(generated)
	pdf.SetModificationDate(generated)
	pdf.SetTitle(title, false)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(fontFamily, "", 10)
	pdf.MultiCell(0, 6, Latin1("Patient Ref: "+patientName), "", "L", false)
	pdf.MultiCell(0, 6, "Date Generated: "+generated.Format("2006-01-02"), "", "L", false)
	pdf.Ln(2)

	left, _, right, _ := pdf.GetMargins()
	pageWidth, _ := pdf.GetPageSize()
	y := pdf.GetY()
	pdf.Line(left, y, pageWidth-right, y)
	pdf.Ln(6)

	pdf.SetFont(fontFamily, "", 11)
	pdf.MultiCell(0, bodyLineHt, Latin1(letter), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
