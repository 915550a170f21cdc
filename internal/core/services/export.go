package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jyotish-labs/hora-cli/internal/core/domain"
	"github.com/jyotish-labs/hora-cli/internal/core/ports/driven"
	"github.com/jyotish-labs/hora-cli/internal/core/ports/driving"
	"github.com/jyotish-labs/hora-cli/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// DefaultExportTitle is the document heading used when the request
// does not override it.
const DefaultExportTitle = "Hora Chart (D-2)"

// fontFetchTimeout bounds the best-effort glyph font download.
const fontFetchTimeout = 10 * time.Second

// ExportService renders assembled charts through a ChartExporter.
//
// The glyph font fetch is best-effort: any failure is logged at
// verbose level and the export proceeds with transliterated names on
// the writer's built-in font.
type ExportService struct {
	exporter driven.ChartExporter
	fonts    driven.FontSource
	settings driving.SettingsService
}

// NewExportService creates a new export service.
// fonts may be nil, in which case Devanagari rendering is never used.
func NewExportService(exporter driven.ChartExporter, fonts driven.FontSource, settings driving.SettingsService) *ExportService {
	return &ExportService{
		exporter: exporter,
		fonts:    fonts,
		settings: settings,
	}
}

// Export writes the chart document and returns its path.
func (s *ExportService) Export(ctx context.Context, req driving.ExportRequest) (string, error) {
	if s.exporter == nil {
		return "", errors.New("exporter not configured")
	}
	if len(req.Rows) == 0 {
		return "", fmt.Errorf("%w: no rows to export", domain.ErrInvalidInput)
	}

	cfg := domain.DefaultAppSettings()
	if s.settings != nil {
		if loaded, err := s.settings.Get(); err == nil {
			cfg = *loaded
		}
	}

	fontData := s.fetchFont(ctx, cfg.Export)
	script := cfg.Export.Script
	if script == domain.ScriptDevanagari && len(fontData) == 0 {
		// Degraded path: transliterated Sanskrit on the core font.
		script = domain.ScriptLatin
		logger.Info("glyph font unavailable, using transliterated names")
	}

	title := req.Title
	if title == "" {
		title = DefaultExportTitle
	}

	doc := driven.ExportDocument{
		Title:          title,
		Table:          buildExportTable(req.Rows, script),
		Interpretation: buildInterpretationBlock(req.Interpretation, script),
		FontData:       fontData,
		OutputPath:     s.resolvePath(req.OutputPath, cfg.Export.Directory),
	}

	if err := s.exporter.Export(ctx, doc); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	return doc.OutputPath, nil
}

// fetchFont retrieves the glyph font when Devanagari rendering is
// requested. Every failure path returns nil; export never blocks on it.
func (s *ExportService) fetchFont(ctx context.Context, cfg domain.ExportSettings) []byte {
	if cfg.Script != domain.ScriptDevanagari || s.fonts == nil || cfg.FontURL == "" {
		return nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, fontFetchTimeout)
	defer cancel()

	data, err := s.fonts.Fetch(fetchCtx, cfg.FontURL)
	if err != nil {
		logger.Warn("font fetch failed: %v", err)
		return nil
	}
	return data
}

func (s *ExportService) resolvePath(override, directory string) string {
	if override != "" {
		return override
	}
	name := fmt.Sprintf("hora-chart-%s.pdf", time.Now().Format("20060102-150405"))
	if directory == "" {
		return name
	}
	return filepath.Join(directory, name)
}

func buildExportTable(rows []domain.ChartRow, script domain.ScriptStyle) driven.ExportTable {
	table := driven.ExportTable{
		Columns: []string{"Graha", "Rashi", "Degree", "Hora"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			renderLabel(row.Label, script),
			renderSign(row.Sign, script),
			fmt.Sprintf("%.2f°", row.Degree),
			renderHora(row.Hora, script),
		})
	}
	return table
}

func buildInterpretationBlock(hora domain.Hora, script domain.ScriptStyle) *driven.ExportInterpretation {
	if !hora.IsValid() {
		return nil
	}
	record := domain.Interpret(hora)
	block := &driven.ExportInterpretation{
		Title:       record.Title,
		Description: record.Description,
		Qualities:   record.Qualities,
	}
	if script == domain.ScriptDevanagari {
		block.Title = renderHora(hora, script) + " — " + record.Title
	}
	return block
}

// renderLabel maps a row label to the requested script. Labels that
// name no known planet (free text) pass through unchanged.
func renderLabel(label string, script domain.ScriptStyle) string {
	if label == domain.AscendantLabel {
		if script == domain.ScriptDevanagari {
			return domain.AscendantDevanagari
		}
		return label
	}
	planet, err := domain.ParsePlanet(label)
	if err != nil {
		return label
	}
	if script == domain.ScriptDevanagari {
		return planet.Devanagari()
	}
	return planet.Display()
}

func renderSign(sign domain.ZodiacSign, script domain.ScriptStyle) string {
	if script == domain.ScriptDevanagari {
		return sign.Devanagari()
	}
	return sign.Display()
}

func renderHora(hora domain.Hora, script domain.ScriptStyle) string {
	if script == domain.ScriptDevanagari {
		if hora == domain.HoraSun {
			return "सूर्य होरा"
		}
		return "चंद्र होरा"
	}
	return hora.Description()
}
