// Package styles centralises the lipgloss styles used by the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds every style the TUI renders with.
type Styles struct {
	// Title is the view heading.
	Title lipgloss.Style

	// Subtitle is the secondary heading.
	Subtitle lipgloss.Style

	// Label styles row labels in the form.
	Label lipgloss.Style

	// CursorLabel styles the label of the focused form row.
	CursorLabel lipgloss.Style

	// InputField styles focused input fields.
	InputField lipgloss.Style

	// TableHeader styles the results table header.
	TableHeader lipgloss.Style

	// SelectedRow styles the selected results row.
	SelectedRow lipgloss.Style

	// Reading styles the interpretation panel.
	Reading lipgloss.Style

	// Status styles transient status messages.
	Status lipgloss.Style

	// Error styles error messages.
	Error lipgloss.Style

	// Help styles the keybinding hint line.
	Help lipgloss.Style
}

// DefaultStyles returns the default colour scheme.
func DefaultStyles() *Styles {
	return &Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CursorLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		InputField:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		SelectedRow: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		Reading:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).MarginTop(1),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
	}
}
