// Package degreeinput provides the degree entry field for the chart form.
package degreeinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jyotish-labs/hora-cli/internal/adapters/driving/tui/styles"
	"github.com/jyotish-labs/hora-cli/internal/core/domain"
)

// Input wraps a bubbles textinput for degree entry. Parsing is
// permissive: anything unparseable reads as 0.
type Input struct {
	textinput textinput.Model
	styles    *styles.Styles
}

// New creates a degree input.
func New(s *styles.Styles) *Input {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "0.00"
	ti.CharLimit = 7
	ti.Width = 8

	return &Input{
		textinput: ti,
		styles:    s,
	}
}

// Init initialises the input.
func (i *Input) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (i *Input) Update(msg tea.Msg) (*Input, tea.Cmd) {
	var cmd tea.Cmd
	i.textinput, cmd = i.textinput.Update(msg)
	return i, cmd
}

// View renders the input.
func (i *Input) View() string {
	return i.textinput.View()
}

// Degree returns the parsed degree value.
func (i *Input) Degree() float64 {
	return domain.ParseDegree(i.textinput.Value())
}

// Raw returns the unparsed field content.
func (i *Input) Raw() string {
	return i.textinput.Value()
}

// SetDegree sets the field from a raw string.
func (i *Input) SetDegree(value string) {
	i.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (i *Input) Focus() tea.Cmd {
	return i.textinput.Focus()
}

// Blur removes focus from the input.
func (i *Input) Blur() {
	i.textinput.Blur()
}

// Focused returns whether the input is focused.
func (i *Input) Focused() bool {
	return i.textinput.Focused()
}

// Reset clears the input.
func (i *Input) Reset() {
	i.textinput.Reset()
}
