// Package chartform implements the position entry form view.
package chartform

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jyotish-labs/hora-cli/internal/adapters/driving/tui/components/degreeinput"
	"github.com/jyotish-labs/hora-cli/internal/adapters/driving/tui/components/signpicker"
	"github.com/jyotish-labs/hora-cli/internal/adapters/driving/tui/styles"
	"github.com/jyotish-labs/hora-cli/internal/core/domain"
)

// row is one form line: a fixed label, a sign picker and a degree field.
type row struct {
	label  string
	picker *signpicker.Picker
	degree *degreeinput.Input
}

// View is the position entry form: the ascendant plus one row per graha.
type View struct {
	styles      *styles.Styles
	rows        []row
	cursor      int
	degreeFocus bool
	notice      string
	width       int
}

// NewView creates the form with the ascendant row first and one row
// per graha in traditional order.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	rows := make([]row, 0, len(domain.AllPlanets())+1)
	rows = append(rows, newRow(s, domain.AscendantLabel))
	for _, planet := range domain.AllPlanets() {
		rows = append(rows, newRow(s, planet.Display()))
	}

	v := &View{styles: s, rows: rows}
	v.rows[0].picker.Focus()
	return v
}

func newRow(s *styles.Styles, label string) row {
	return row{
		label:  label,
		picker: signpicker.New(s),
		degree: degreeinput.New(s),
	}
}

// Init initialises the form.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles form input.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, v.updateFocusedField(msg)
	}

	v.notice = ""
	switch keyMsg.String() {
	case "up", "ctrl+p":
		v.moveCursor(-1)
		return v, nil
	case "down", "ctrl+n":
		v.moveCursor(1)
		return v, nil
	case "tab", "shift+tab":
		return v, v.toggleColumn()
	case "left":
		if !v.degreeFocus {
			v.rows[v.cursor].picker.Prev()
			return v, nil
		}
	case "right":
		if !v.degreeFocus {
			v.rows[v.cursor].picker.Next()
			return v, nil
		}
	}

	return v, v.updateFocusedField(msg)
}

// updateFocusedField routes remaining messages to the focused degree input.
func (v *View) updateFocusedField(msg tea.Msg) tea.Cmd {
	if !v.degreeFocus {
		return nil
	}
	var cmd tea.Cmd
	v.rows[v.cursor].degree, cmd = v.rows[v.cursor].degree.Update(msg)
	return cmd
}

func (v *View) moveCursor(delta int) {
	v.blurCurrent()
	v.cursor += delta
	if v.cursor < 0 {
		v.cursor = len(v.rows) - 1
	}
	if v.cursor >= len(v.rows) {
		v.cursor = 0
	}
	v.focusCurrent()
}

func (v *View) toggleColumn() tea.Cmd {
	v.blurCurrent()
	v.degreeFocus = !v.degreeFocus
	return v.focusCurrent()
}

func (v *View) blurCurrent() {
	v.rows[v.cursor].picker.Blur()
	v.rows[v.cursor].degree.Blur()
}

func (v *View) focusCurrent() tea.Cmd {
	if v.degreeFocus {
		return v.rows[v.cursor].degree.Focus()
	}
	v.rows[v.cursor].picker.Focus()
	return nil
}

// SetNotice displays a transient message under the form.
func (v *View) SetNotice(notice string) {
	v.notice = notice
}

// SetWidth sets the rendering width.
func (v *View) SetWidth(width int) {
	v.width = width
}

// Entries collects the current form state as domain entries. Rows
// without a chosen sign come back incomplete and are filtered at
// assembly.
func (v *View) Entries() (*domain.PositionEntry, []domain.PositionEntry) {
	var ascendant *domain.PositionEntry
	if sign := v.rows[0].picker.Sign(); sign != "" {
		ascendant = &domain.PositionEntry{
			Label:  domain.AscendantLabel,
			Sign:   sign,
			Degree: v.rows[0].degree.Degree(),
		}
	}

	planets := make([]domain.PositionEntry, 0, len(v.rows)-1)
	for _, r := range v.rows[1:] {
		planets = append(planets, domain.PositionEntry{
			Label:  r.label,
			Sign:   r.picker.Sign(),
			Degree: r.degree.Degree(),
		})
	}
	return ascendant, planets
}

// Restore fills the form from a previous session.
func (v *View) Restore(session *domain.ChartSession) {
	if session == nil {
		return
	}
	if session.Ascendant != nil {
		v.rows[0].picker.SetSign(session.Ascendant.Sign)
		v.rows[0].degree.SetDegree(fmt.Sprintf("%.2f", session.Ascendant.Degree))
	}
	for _, entry := range session.Planets {
		for i := range v.rows[1:] {
			if v.rows[i+1].label != entry.Label {
				continue
			}
			v.rows[i+1].picker.SetSign(entry.Sign)
			if entry.Sign != "" {
				v.rows[i+1].degree.SetDegree(fmt.Sprintf("%.2f", entry.Degree))
			}
		}
	}
}

// View renders the form.
func (v *View) View() string {
	out := v.styles.Title.Render("Hora Chart — Positions") + "\n"
	out += v.styles.Subtitle.Render("Pick a sign and degree for each entry; unset rows are skipped.") + "\n\n"

	for i, r := range v.rows {
		label := v.styles.Label.Render(fmt.Sprintf("%-10s", r.label))
		if i == v.cursor {
			label = v.styles.CursorLabel.Render(fmt.Sprintf("%-10s", r.label))
		}
		out += fmt.Sprintf("%s %s  %s\n", label, r.picker.View(), r.degree.View())
	}

	if v.notice != "" {
		out += "\n" + v.styles.Error.Render(v.notice) + "\n"
	}
	out += v.styles.Help.Render("↑/↓ row · ←/→ sign · tab degree · enter compute · ctrl+c quit")
	return out
}
