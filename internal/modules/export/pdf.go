package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// PDFData is what the itinerary PDF shows.
type PDFData struct {
	Origin      string
	Destination string
	Days        []string
	Cost        int
}

// RenderPDF lays the itinerary out on A4: a centred title, one paragraph
// per day and a closing cost line. Long itineraries flow onto extra pages.
func RenderPDF(d PDFData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; translate so accented place names survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(fmt.Sprintf("%s -> %s Itinerary", d.Origin, d.Destination), true)
	pdf.AddPage()
	pdf.SetFont("Arial", "", 14)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("%s -> %s Itinerary", d.Origin, d.Destination)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 12)
	for i, day := range d.Days {
		pdf.MultiCell(0, 8, tr(fmt.Sprintf("%s:\n%s", dayLabel(i+1), day)), "", "L", false)
		pdf.Ln(2)
	}
	pdf.Ln(4)
	pdf.CellFormat(0, 8, fmt.Sprintf("Estimated cost: INR %d", d.Cost), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: output: %w", err)
	}
	return buf.Bytes(), nil
}
