package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders a Table as an A4 portrait listing.
type PDFExporter struct {
	pageSize string
}

func NewPDFExporter() *PDFExporter {
	return &PDFExporter{pageSize: "A4"}
}

func (p *PDFExporter) Export(table *Table, w io.Writer) error {
	if len(table.Headers) == 0 {
		return fmt.Errorf("no headers provided")
	}
	fontSize := table.Style.FontSize
	if fontSize <= 0 {
		fontSize = 10
	}

	pdf := gofpdf.New("P", "mm", p.pageSize, "")
	// core fonts are cp1252; customer names carry accents
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	if table.Title != "" {
		pdf.SetFont("Arial", "B", 16)
		pdf.Cell(0, 10, tr(table.Title))
		pdf.Ln(12)
	}
	if !table.CreatedAt.IsZero() {
		pdf.SetFont("Arial", "I", 8)
		pdf.Cell(0, 5, "Generado: "+table.CreatedAt.Format("2006-01-02 15:04"))
		pdf.Ln(10)
	}

	pageWidth, pageHeight := pdf.GetPageSize()
	left, _, right, bottom := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(table.Headers))

	header := func() {
		pdf.SetFont("Arial", "B", fontSize)
		r, g, b := hexToRGB(table.Style.HeaderBgColor)
		pdf.SetFillColor(r, g, b)
		pdf.SetTextColor(255, 255, 255)
		for _, h := range table.Headers {
			pdf.CellFormat(colWidth, 7, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Arial", "", fontSize)
	}
	header()

	for i, cells := range table.Rows {
		bg := table.Style.RowBgColor1
		if i%2 == 1 {
			bg = table.Style.RowBgColor2
		}
		r, g, b := hexToRGB(bg)
		pdf.SetFillColor(r, g, b)

		for _, value := range cells {
			pdf.CellFormat(colWidth, 6, tr(value), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		if pdf.GetY() > pageHeight-bottom-10 {
			pdf.AddPage()
			header()
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func (p *PDFExporter) ContentType() string {
	return "application/pdf"
}

func (p *PDFExporter) FileExtension() string {
	return ".pdf"
}

// hexToRGB converts "#RRGGBB" to components, defaulting to white.
func hexToRGB(hex string) (int, int, int) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return 255, 255, 255
	}
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return 255, 255, 255
	}
	return r, g, b
}
