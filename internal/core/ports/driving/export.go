package driving

import (
	"context"

	"github.com/jyotish-labs/hora-cli/internal/core/domain"
)

// ExportRequest describes one export operation.
type ExportRequest struct {
	// Title is the document heading. Empty selects the default.
	Title string

	// Rows are the assembled chart rows to tabulate.
	Rows []domain.ChartRow

	// Interpretation selects the hora whose reading is appended after
	// the table. Empty omits the reading block.
	Interpretation domain.Hora

	// OutputPath overrides the settings-derived destination. Empty
	// generates a timestamped name in the configured export directory.
	OutputPath string
}

// ExportService renders an assembled chart to a document.
type ExportService interface {
	// Export writes the document and returns the path it was written
	// to. Font acquisition failures never fail the export; I/O and
	// rendering failures do.
	Export(ctx context.Context, req ExportRequest) (string, error)
}
