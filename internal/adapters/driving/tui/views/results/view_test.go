package results

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyotish-labs/hora-cli/internal/adapters/driving/tui/messages"
	"github.com/jyotish-labs/hora-cli/internal/core/domain"
	"github.com/jyotish-labs/hora-cli/internal/core/ports/driving"
	"github.com/jyotish-labs/hora-cli/internal/core/services"
)

type fakeExportService struct {
	req  driving.ExportRequest
	path string
	err  error
}

func (f *fakeExportService) Export(_ context.Context, req driving.ExportRequest) (string, error) {
	f.req = req
	return f.path, f.err
}

func sampleRows() []domain.ChartRow {
	return []domain.ChartRow{
		{Label: domain.AscendantLabel, Sign: domain.SignAries, Degree: 12.5, Hora: domain.HoraSun},
		{Label: "Moon", Sign: domain.SignCancer, Degree: 20, Hora: domain.HoraSun},
		{Label: "Venus", Sign: domain.SignTaurus, Degree: 22, Hora: domain.HoraMoon},
	}
}

func TestView_RendersRowsAndReading(t *testing.T) {
	v := NewView(nil, services.NewChartService(), nil)
	v.SetRows(sampleRows())

	out := v.View()
	assert.Contains(t, out, "Ascendant")
	assert.Contains(t, out, "Aries")
	assert.Contains(t, out, "12.50°")
	assert.Contains(t, out, "Surya Hora — the Sun's half")
}

func TestView_SelectionFollowsCursor(t *testing.T) {
	v := NewView(nil, services.NewChartService(), nil)
	v.SetRows(sampleRows())

	assert.Equal(t, domain.HoraSun, v.SelectedHora())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, domain.HoraMoon, v.SelectedHora())
	assert.Contains(t, v.View(), "Chandra Hora")
}

func TestView_SelectedHoraEmptyWithoutRows(t *testing.T) {
	v := NewView(nil, services.NewChartService(), nil)

	assert.Equal(t, domain.Hora(""), v.SelectedHora())
}

func TestView_ExportUnavailable(t *testing.T) {
	v := NewView(nil, services.NewChartService(), nil)
	v.SetRows(sampleRows())

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})

	assert.Nil(t, cmd)
	assert.Contains(t, v.View(), "Export is not available")
}

func TestView_ExportRoundTrip(t *testing.T) {
	fake := &fakeExportService{path: "/tmp/chart.pdf"}
	v := NewView(nil, services.NewChartService(), fake)
	v.SetRows(sampleRows())

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(messages.ExportDoneMsg)
	require.True(t, ok)
	assert.NoError(t, done.Err)
	assert.Equal(t, "/tmp/chart.pdf", done.Path)
	assert.Len(t, fake.req.Rows, 3)
	assert.Equal(t, domain.HoraSun, fake.req.Interpretation)

	v, _ = v.Update(done)
	assert.Contains(t, v.View(), "Exported to /tmp/chart.pdf")
}

func TestView_ExportFailureShowsError(t *testing.T) {
	fake := &fakeExportService{err: errors.New("disk full")}
	v := NewView(nil, services.NewChartService(), fake)
	v.SetRows(sampleRows())

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	require.NotNil(t, cmd)

	v, _ = v.Update(cmd())
	assert.Contains(t, v.View(), "Export failed")
}

func TestView_ExportWithoutRowsIsNoop(t *testing.T) {
	fake := &fakeExportService{path: "/tmp/chart.pdf"}
	v := NewView(nil, services.NewChartService(), fake)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})

	assert.Nil(t, cmd)
}
