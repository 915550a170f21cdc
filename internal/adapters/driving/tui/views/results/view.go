// Package results implements the computed chart view: the results
// table, the interpretation panel for the selected row, and export.
package results

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jyotish-labs/hora-cli/internal/adapters/driving/tui/messages"
	"github.com/jyotish-labs/hora-cli/internal/adapters/driving/tui/styles"
	"github.com/jyotish-labs/hora-cli/internal/core/domain"
	"github.com/jyotish-labs/hora-cli/internal/core/ports/driving"
)

// View is the results table with the interpretation panel.
type View struct {
	styles    *styles.Styles
	chart     driving.ChartService
	export    driving.ExportService
	table     table.Model
	rows      []domain.ChartRow
	status    string
	exporting bool
}

// NewView creates the results view.
func NewView(s *styles.Styles, chart driving.ChartService, export driving.ExportService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	columns := []table.Column{
		{Title: "Graha", Width: 12},
		{Title: "Rashi", Width: 12},
		{Title: "Degree", Width: 8},
		{Title: "Hora", Width: 22},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(11),
	)
	ts := table.DefaultStyles()
	ts.Header = s.TableHeader
	ts.Selected = s.SelectedRow
	t.SetStyles(ts)

	return &View{
		styles: s,
		chart:  chart,
		export: export,
		table:  t,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetRows loads the assembled chart into the table.
func (v *View) SetRows(rows []domain.ChartRow) {
	v.rows = rows
	v.status = ""
	tableRows := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		tableRows = append(tableRows, table.Row{
			row.Label,
			row.Sign.Display(),
			fmt.Sprintf("%.2f°", row.Degree),
			row.Hora.Description(),
		})
	}
	v.table.SetRows(tableRows)
	v.table.SetCursor(0)
}

// SelectedHora returns the hora of the highlighted row.
func (v *View) SelectedHora() domain.Hora {
	if len(v.rows) == 0 {
		return ""
	}
	cursor := v.table.Cursor()
	if cursor < 0 || cursor >= len(v.rows) {
		return ""
	}
	return v.rows[cursor].Hora
}

// Update handles view input.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.ExportDoneMsg:
		v.exporting = false
		if msg.Err != nil {
			v.status = v.styles.Error.Render(fmt.Sprintf("Export failed: %v", msg.Err))
		} else {
			v.status = v.styles.Status.Render("Exported to " + msg.Path)
		}
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "e" {
			return v, v.exportCmd()
		}
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// exportCmd runs the export off the update loop.
func (v *View) exportCmd() tea.Cmd {
	if v.export == nil {
		v.status = v.styles.Error.Render("Export is not available")
		return nil
	}
	if v.exporting || len(v.rows) == 0 {
		return nil
	}
	v.exporting = true
	v.status = v.styles.Status.Render("Exporting…")

	rows := v.rows
	hora := v.SelectedHora()
	export := v.export
	return func() tea.Msg {
		path, err := export.Export(context.Background(), driving.ExportRequest{
			Rows:           rows,
			Interpretation: hora,
		})
		return messages.ExportDoneMsg{Path: path, Err: err}
	}
}

// View renders the table and the selected row's reading.
func (v *View) View() string {
	out := v.styles.Title.Render("Hora Chart — Results") + "\n"
	out += v.table.View() + "\n"

	if hora := v.SelectedHora(); hora.IsValid() {
		record := v.chart.Interpret(hora)
		reading := v.styles.TableHeader.Render(record.Title) + "\n"
		reading += record.Description + "\n"
		for _, quality := range record.Qualities {
			reading += "  • " + quality + "\n"
		}
		out += v.styles.Reading.Render(reading)
	}

	if v.status != "" {
		out += "\n" + v.status
	}
	out += "\n" + v.styles.Help.Render("↑/↓ select · e export PDF · esc back · q quit")
	return out
}
