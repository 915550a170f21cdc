// Package cli implements the cobra command tree driving the core.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jyotish-labs/hora-cli/internal/core/ports/driven"
	"github.com/jyotish-labs/hora-cli/internal/core/ports/driving"
	"github.com/jyotish-labs/hora-cli/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// verbose enables debug logging on stderr.
var verbose bool

// Services injected by main. Commands nil-check before use.
var (
	chartService    driving.ChartService
	exportService   driving.ExportService
	settingsService driving.SettingsService
	sessionStore    driven.SessionStore
)

// Services bundles everything the command tree needs.
type Services struct {
	Chart    driving.ChartService
	Export   driving.ExportService
	Settings driving.SettingsService
	Sessions driven.SessionStore
}

// SetServices injects the core services into the command tree.
func SetServices(s Services) {
	chartService = s.Chart
	exportService = s.Export
	settingsService = s.Settings
	sessionStore = s.Sessions
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var rootCmd = &cobra.Command{
	Use:   "hora",
	Short: "Compute and explore Hora (D-2) charts",
	Long: `hora computes the Hora divisional chart from planetary and
ascendant positions.

Enter positions interactively with 'hora tui', or load them from a
TOML file with 'hora chart'. Charts can be exported to PDF together
with the reading for the Sun's or Moon's hora.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
