package driving

import "github.com/jyotish-labs/hora-cli/internal/core/domain"

// ChartService assembles hora charts and serves interpretations.
type ChartService interface {
	// Classify computes the hora for a single placement.
	Classify(sign domain.ZodiacSign, degree float64) domain.Hora

	// Build assembles the chart rows from an optional ascendant and
	// the planet entries, filtering incomplete entries.
	Build(ascendant *domain.PositionEntry, planets []domain.PositionEntry) []domain.ChartRow

	// Interpret returns the static reading for a hora.
	Interpret(hora domain.Hora) domain.Interpretation
}
