package driven

import "context"

// ExportTable is the pre-rendered four-column chart table.
type ExportTable struct {
	// Columns are the header cells.
	Columns []string

	// Rows are the body cells, one slice per chart row.
	Rows [][]string
}

// ExportInterpretation is the optional reading block appended after
// the table.
type ExportInterpretation struct {
	Title       string
	Description string
	Qualities   []string
}

// ExportDocument describes the fixed-template document handed to the
// exporter: a title, the chart table, and an optional interpretation
// block. All text is pre-rendered by the export service; the writer
// does layout only.
type ExportDocument struct {
	// Title is the document heading.
	Title string

	// Table is the assembled chart table.
	Table ExportTable

	// Interpretation is the optional reading block. Nil omits it.
	Interpretation *ExportInterpretation

	// FontData is an optional TTF for Unicode rendering. Empty means
	// the writer uses its built-in core font.
	FontData []byte

	// OutputPath is where the document is written.
	OutputPath string
}

// ChartExporter writes an ExportDocument to disk.
type ChartExporter interface {
	// Export renders the document. The context bounds any slow I/O.
	Export(ctx context.Context, doc ExportDocument) error
}
