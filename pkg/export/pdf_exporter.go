package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders datasets into a basic tabular PDF. The built-in fonts
// only cover latin glyphs, so every piece of text is transliterated to
// ASCII before it reaches the page.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates a PDF document with an optional title and table body.
func (e *PDFExporter) Render(data Dataset, title string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("pdf requires at least one header")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, strings.ToUpper(Transliterate(title)), "", 1, "C", false, 0, "")
		pdf.Ln(5)
	}

	pdf.SetFont("Arial", "B", 10)
	colWidth := 190.0 / float64(len(data.Headers))
	for _, header := range data.Headers {
		pdf.CellFormat(colWidth, 8, Transliterate(header), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range data.Rows {
		for _, header := range data.Headers {
			value := Transliterate(row[header])
			pdf.CellFormat(colWidth, 7, value, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderDetail produces a per-student report page: a heading block of
// labelled lines, a grades table and a trailing list of remarks.
func (e *PDFExporter) RenderDetail(title string, lines []string, table Dataset, remarks []string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, strings.ToUpper(Transliterate(title)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	for _, line := range lines {
		pdf.CellFormat(0, 7, Transliterate(line), "", 1, "", false, 0, "")
	}
	pdf.Ln(4)

	if len(table.Headers) > 0 {
		pdf.SetFont("Arial", "B", 10)
		colWidth := 190.0 / float64(len(table.Headers))
		for _, header := range table.Headers {
			pdf.CellFormat(colWidth, 8, Transliterate(header), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		for _, row := range table.Rows {
			for _, header := range table.Headers {
				pdf.CellFormat(colWidth, 7, Transliterate(row[header]), "1", 0, "", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	if len(remarks) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, "Remarks:", "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, remark := range remarks {
			pdf.CellFormat(0, 6, "- "+Transliterate(remark), "", 1, "", false, 0, "")
		}
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
