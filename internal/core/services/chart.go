package services

import (
	"github.com/jyotish-labs/hora-cli/internal/core/domain"
	"github.com/jyotish-labs/hora-cli/internal/core/ports/driving"
)

// Ensure ChartService implements the interface.
var _ driving.ChartService = (*ChartService)(nil)

// ChartService assembles hora charts and serves interpretations.
// It is stateless; all computation is delegated to the domain.
type ChartService struct{}

// NewChartService creates a new chart service.
func NewChartService() *ChartService {
	return &ChartService{}
}

// Classify computes the hora for a single placement.
func (s *ChartService) Classify(sign domain.ZodiacSign, degree float64) domain.Hora {
	return domain.ClassifyHora(sign, degree)
}

// Build assembles the chart rows, filtering incomplete entries.
func (s *ChartService) Build(ascendant *domain.PositionEntry, planets []domain.PositionEntry) []domain.ChartRow {
	return domain.BuildChart(ascendant, planets)
}

// Interpret returns the static reading for a hora.
func (s *ChartService) Interpret(hora domain.Hora) domain.Interpretation {
	return domain.Interpret(hora)
}
