// Package signpicker provides the cycling sign selector for the chart form.
package signpicker

import (
	"github.com/jyotish-labs/hora-cli/internal/adapters/driving/tui/styles"
	"github.com/jyotish-labs/hora-cli/internal/core/domain"
)

// Picker cycles through the 12 signs plus an unset state.
// Index 0 is "no sign chosen"; rows left unset are filtered at assembly.
type Picker struct {
	signs   []domain.ZodiacSign
	index   int
	focused bool
	styles  *styles.Styles
}

// New creates an unset sign picker.
func New(s *styles.Styles) *Picker {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Picker{
		signs:  domain.AllZodiacSigns(),
		styles: s,
	}
}

// Next advances to the next sign, wrapping past Pisces to unset.
func (p *Picker) Next() {
	p.index = (p.index + 1) % (len(p.signs) + 1)
}

// Prev moves to the previous sign, wrapping from unset to Pisces.
func (p *Picker) Prev() {
	p.index--
	if p.index < 0 {
		p.index = len(p.signs)
	}
}

// Sign returns the selected sign, or empty when unset.
func (p *Picker) Sign() domain.ZodiacSign {
	if p.index == 0 {
		return ""
	}
	return p.signs[p.index-1]
}

// SetSign selects the given sign. Unknown signs reset the picker.
func (p *Picker) SetSign(sign domain.ZodiacSign) {
	p.index = sign.Ordinal() // 0 for invalid signs
}

// Focus marks the picker focused.
func (p *Picker) Focus() {
	p.focused = true
}

// Blur removes focus.
func (p *Picker) Blur() {
	p.focused = false
}

// Focused returns whether the picker is focused.
func (p *Picker) Focused() bool {
	return p.focused
}

// View renders the picker.
func (p *Picker) View() string {
	name := "—"
	if sign := p.Sign(); sign != "" {
		name = sign.Display()
	}
	if p.focused {
		return p.styles.InputField.Render("‹ " + pad(name) + " ›")
	}
	return p.styles.Label.Render("  " + pad(name) + "  ")
}

// pad fixes the rendered width so rows line up.
func pad(name string) string {
	const width = 11
	for len(name) < width {
		name += " "
	}
	return name
}
