package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/jyotish-labs/hora-cli/internal/adapters/driven/chartfile"
	"github.com/jyotish-labs/hora-cli/internal/core/domain"
	"github.com/jyotish-labs/hora-cli/internal/core/ports/driving"
	"github.com/jyotish-labs/hora-cli/internal/logger"
)

var (
	chartPDFPath   string
	chartInterpret string
	chartWatch     bool
)

var chartCmd = &cobra.Command{
	Use:   "chart [positions-file]",
	Short: "Compute a hora chart from a positions file",
	Long: `Load planetary and ascendant positions from a TOML file, compute
each entry's hora and print the chart table.

Example positions file:

  [ascendant]
  sign = "aries"
  degree = 12.5

  [[planets]]
  name = "sun"
  sign = "leo"
  degree = 3.0

Entries without a recognisable sign are skipped. Use --interpret to
append the reading for one hora, --pdf to export the chart, and
--watch to re-render whenever the file changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringVar(&chartPDFPath, "pdf", "", "export the chart to a PDF at the given path")
	chartCmd.Flags().StringVar(&chartInterpret, "interpret", "", "include the reading for a hora (sun|moon)")
	chartCmd.Flags().BoolVar(&chartWatch, "watch", false, "watch the file and re-render on change")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	if chartService == nil {
		return errors.New("chart service not configured")
	}

	path := args[0]
	if err := renderChart(cmd, path); err != nil {
		return err
	}
	if !chartWatch {
		return nil
	}
	return watchChart(cmd, path)
}

func renderChart(cmd *cobra.Command, path string) error {
	ascendant, planets, err := chartfile.Load(path)
	if err != nil {
		return err
	}

	rows := chartService.Build(ascendant, planets)
	logger.Debug("assembled %d chart rows from %s", len(rows), path)
	if len(rows) == 0 {
		cmd.Println("No classifiable entries in the positions file.")
		return nil
	}

	warnSuspectDegrees(cmd, ascendant, planets)
	cmd.Println(renderChartTable(rows))

	if chartInterpret != "" {
		hora, err := domain.ParseHora(chartInterpret)
		if err != nil {
			return fmt.Errorf("unknown hora %q (expected sun or moon)", chartInterpret)
		}
		cmd.Println(renderInterpretation(chartService.Interpret(hora)))
	}

	if chartPDFPath != "" {
		if exportService == nil {
			return errors.New("export service not configured")
		}
		req := driving.ExportRequest{
			Rows:       rows,
			OutputPath: chartPDFPath,
		}
		if hora, err := domain.ParseHora(chartInterpret); err == nil {
			req.Interpretation = hora
		}
		written, err := exportService.Export(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("export chart: %w", err)
		}
		cmd.Printf("Exported to %s\n", written)
	}
	return nil
}

// warnSuspectDegrees flags entries outside the nominal degree range.
// They are still classified; the warning is informational.
func warnSuspectDegrees(cmd *cobra.Command, ascendant *domain.PositionEntry, planets []domain.PositionEntry) {
	check := func(entry domain.PositionEntry) {
		if !entry.IsComplete() {
			return
		}
		if err := domain.ValidateDegree(entry.Degree); err != nil {
			cmd.PrintErrf("Warning: %s at %.2f° is outside [0,30)\n", entry.Label, entry.Degree)
		}
	}
	if ascendant != nil {
		check(*ascendant)
	}
	for _, entry := range planets {
		check(entry)
	}
}

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	tableCellStyle   = lipgloss.NewStyle()
	readingTitle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
)

func renderChartTable(rows []domain.ChartRow) string {
	out := tableHeaderStyle.Render(fmt.Sprintf("%-12s %-12s %9s  %-22s", "Graha", "Rashi", "Degree", "Hora")) + "\n"
	for _, row := range rows {
		line := fmt.Sprintf("%-12s %-12s %8.2f°  %-22s",
			row.Label, row.Sign.Display(), row.Degree, row.Hora.Description())
		out += tableCellStyle.Render(line) + "\n"
	}
	return out
}

func renderInterpretation(record domain.Interpretation) string {
	out := readingTitle.Render(record.Title) + "\n\n"
	out += record.Description + "\n\n"
	for _, quality := range record.Qualities {
		out += "  • " + quality + "\n"
	}
	return out
}

// watchChart re-renders the chart whenever the positions file
// changes. Editors typically replace files on save, so the parent
// directory is watched and events are filtered by name. A limiter
// coalesces the bursts most editors produce.
func watchChart(cmd *cobra.Command, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	limiter := rate.NewLimiter(rate.Every(500*time.Millisecond), 1)
	cmd.Printf("Watching %s (ctrl-c to stop)\n", path)

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !limiter.Allow() {
				continue
			}
			if err := renderChart(cmd, path); err != nil {
				cmd.PrintErrf("render failed: %v\n", err)
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", watchErr)
		}
	}
}
