package domain

import (
	"strconv"
	"strings"
)

// PositionEntry is a labelled placement entered by the user: a planet
// (or the ascendant) standing at some degree of a sign. Entries live
// only for the duration of a form session; nothing persists them.
type PositionEntry struct {
	// Label is the display name of the entry, a planet name or
	// AscendantLabel. Empty means the row was never filled in.
	Label string

	// Sign is the occupied zodiac sign.
	Sign ZodiacSign

	// Degree is the longitude within the sign, nominally in [0,30).
	Degree float64
}

// IsComplete returns true if the entry carries enough information to
// be classified: a label and a valid sign.
func (e PositionEntry) IsComplete() bool {
	return strings.TrimSpace(e.Label) != "" && e.Sign.IsValid()
}

// ChartRow is one assembled row of the hora chart: the original
// placement plus its computed classification.
type ChartRow struct {
	Label  string
	Sign   ZodiacSign
	Degree float64
	Hora   Hora
}

// BuildChart assembles the hora chart from an optional ascendant and
// an ordered list of planet entries. The ascendant, when present and
// complete, comes first; planets keep their input order.
//
// Incomplete entries (empty label or invalid sign) are filtered out
// rather than carried with empty fields, so every returned row has a
// valid classification.
func BuildChart(ascendant *PositionEntry, planets []PositionEntry) []ChartRow {
	rows := make([]ChartRow, 0, len(planets)+1)

	if ascendant != nil && ascendant.IsComplete() {
		rows = append(rows, newChartRow(*ascendant))
	}
	for _, entry := range planets {
		if !entry.IsComplete() {
			continue
		}
		rows = append(rows, newChartRow(entry))
	}
	return rows
}

func newChartRow(entry PositionEntry) ChartRow {
	return ChartRow{
		Label:  entry.Label,
		Sign:   entry.Sign,
		Degree: entry.Degree,
		Hora:   ClassifyHora(entry.Sign, entry.Degree),
	}
}

// ParseDegree parses a degree value permissively: surrounding space
// is ignored, a decimal comma is accepted, and anything unparseable
// (including the empty string) falls back to 0.
func ParseDegree(input string) float64 {
	trimmed := strings.ReplaceAll(strings.TrimSpace(input), ",", ".")
	if trimmed == "" {
		return 0
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	return value
}

// ValidateDegree reports whether a degree lies in the nominal [0,30)
// range. The classifier accepts anything; input layers call this to
// warn about suspect values.
func ValidateDegree(degree float64) error {
	if degree < 0 || degree >= 30 {
		return ErrDegreeOutOfRange
	}
	return nil
}
