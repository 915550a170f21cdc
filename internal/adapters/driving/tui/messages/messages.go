// Package messages defines the message types passed between TUI views.
package messages

// ViewType identifies which view is active.
type ViewType int

// Available views.
const (
	// ViewForm is the position entry form.
	ViewForm ViewType = iota

	// ViewResults is the computed chart table with interpretation.
	ViewResults
)

// ExportDoneMsg reports the outcome of a PDF export.
type ExportDoneMsg struct {
	// Path is where the document was written.
	Path string

	// Err is non-nil when the export failed.
	Err error
}
