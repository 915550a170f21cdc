package domain

// ChartSession is the transient in-memory state of one form session:
// the entries the user has typed so far plus the row they selected
// for interpretation. Sessions are discarded on exit, never persisted.
type ChartSession struct {
	// ID identifies the session in the session store.
	ID string

	// Ascendant is the optional ascendant entry. Nil until set.
	Ascendant *PositionEntry

	// Planets are the planet entries in form order.
	Planets []PositionEntry

	// SelectedHora is the classification whose interpretation the
	// user is viewing. Empty until a row is selected.
	SelectedHora Hora
}

// NewChartSession returns an empty session with one blank row per
// graha, ready for form binding.
func NewChartSession() *ChartSession {
	planets := make([]PositionEntry, 0, len(planetOrder))
	for _, p := range planetOrder {
		planets = append(planets, PositionEntry{Label: p.Display()})
	}
	return &ChartSession{Planets: planets}
}

// Rows assembles the chart for the session's current entries.
func (s *ChartSession) Rows() []ChartRow {
	return BuildChart(s.Ascendant, s.Planets)
}
