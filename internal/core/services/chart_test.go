package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyotish-labs/hora-cli/internal/core/domain"
)

func TestChartService_Classify(t *testing.T) {
	service := NewChartService()

	assert.Equal(t, domain.HoraSun, service.Classify(domain.SignAries, 10))
	assert.Equal(t, domain.HoraSun, service.Classify(domain.SignCancer, 20))
	assert.Equal(t, domain.HoraMoon, service.Classify(domain.SignAries, 16))
}

func TestChartService_Build(t *testing.T) {
	service := NewChartService()
	asc := &domain.PositionEntry{Label: domain.AscendantLabel, Sign: domain.SignLibra, Degree: 2}

	rows := service.Build(asc, []domain.PositionEntry{
		{Label: "Sun", Sign: domain.SignVirgo, Degree: 18},
		{Label: "Moon"}, // incomplete, filtered
	})

	require.Len(t, rows, 2)
	assert.Equal(t, domain.AscendantLabel, rows[0].Label)
	assert.Equal(t, domain.HoraSun, rows[0].Hora)
	assert.Equal(t, "Sun", rows[1].Label)
	assert.Equal(t, domain.HoraSun, rows[1].Hora) // Virgo 18° → second half, even
}

func TestChartService_Interpret(t *testing.T) {
	service := NewChartService()

	for _, hora := range domain.AllHoras() {
		record := service.Interpret(hora)
		assert.Equal(t, hora, record.Hora)
		assert.NotEmpty(t, record.Title)
	}
}
