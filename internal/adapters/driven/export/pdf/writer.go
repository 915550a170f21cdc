// Package pdf renders chart documents with a fixed template: a
// centred title, the four-column chart table, and an optional
// interpretation block. It is deliberately not a general layout
// engine; the template is hard-coded.
package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/jyotish-labs/hora-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.ChartExporter = (*Writer)(nil)

// glyphFamily is the registered name for a fetched Unicode font.
const glyphFamily = "glyph"

// coreFamily is the built-in fallback font.
const coreFamily = "Helvetica"

// Column widths in mm. A4 portrait with 15mm margins leaves 180mm.
var columnWidths = []float64{45, 45, 30, 60}

// Writer is the fpdf-backed chart exporter.
type Writer struct{}

// NewWriter creates a new PDF writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Export renders the document to doc.OutputPath.
func (w *Writer) Export(ctx context.Context, doc driven.ExportDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc.OutputPath == "" {
		return fmt.Errorf("output path not set")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)

	// Core fonts are cp1252; UTF-8 text must be translated for them.
	// A registered UTF-8 font takes text as-is.
	family := coreFamily
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if len(doc.FontData) > 0 {
		// Register the fetched font for regular and bold use.
		pdf.AddUTF8FontFromBytes(glyphFamily, "", doc.FontData)
		pdf.AddUTF8FontFromBytes(glyphFamily, "B", doc.FontData)
		family = glyphFamily
		tr = func(s string) string { return s }
	}

	pdf.AddPage()
	writeTitle(pdf, family, tr(doc.Title))
	writeTable(pdf, family, tr, doc.Table)
	if doc.Interpretation != nil {
		writeInterpretation(pdf, family, tr, *doc.Interpretation)
	}

	if err := os.MkdirAll(filepath.Dir(doc.OutputPath), 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	if err := pdf.OutputFileAndClose(doc.OutputPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func writeTitle(pdf *fpdf.Fpdf, family, title string) {
	pdf.SetFont(family, "B", 16)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)
}

func writeTable(pdf *fpdf.Fpdf, family string, tr func(string) string, table driven.ExportTable) {
	// Header row
	pdf.SetFont(family, "B", 11)
	pdf.SetFillColor(70, 60, 110)
	pdf.SetTextColor(255, 255, 255)
	for i, column := range table.Columns {
		pdf.CellFormat(columnWidths[i], 9, tr(column), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// Body rows with alternating fill
	pdf.SetFont(family, "", 11)
	pdf.SetTextColor(40, 40, 40)
	for r, row := range table.Rows {
		if r%2 == 0 {
			pdf.SetFillColor(245, 243, 250)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for i, cell := range row {
			align := "L"
			if i == 2 {
				align = "R"
			}
			pdf.CellFormat(columnWidths[i], 8, tr(cell), "1", 0, align, true, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}

func writeInterpretation(pdf *fpdf.Fpdf, family string, tr func(string) string, block driven.ExportInterpretation) {
	pdf.SetFont(family, "B", 13)
	pdf.SetTextColor(70, 60, 110)
	pdf.CellFormat(0, 9, tr(block.Title), "", 1, "L", false, 0, "")
	pdf.Ln(1)

	pdf.SetFont(family, "", 11)
	pdf.SetTextColor(40, 40, 40)
	pdf.MultiCell(0, 6, tr(block.Description), "", "L", false)
	pdf.Ln(3)

	for _, quality := range block.Qualities {
		pdf.MultiCell(0, 6, tr("• "+quality), "", "L", false)
	}
}
