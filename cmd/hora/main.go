// Command hora computes Hora (D-2) divisional charts from planetary
// and ascendant positions, interactively or from a positions file.
package main

import (
	"fmt"
	"os"

	"github.com/jyotish-labs/hora-cli/internal/adapters/driven/config/file"
	"github.com/jyotish-labs/hora-cli/internal/adapters/driven/export/pdf"
	"github.com/jyotish-labs/hora-cli/internal/adapters/driven/font/httpfont"
	"github.com/jyotish-labs/hora-cli/internal/adapters/driven/storage/memory"
	"github.com/jyotish-labs/hora-cli/internal/adapters/driving/cli"
	"github.com/jyotish-labs/hora-cli/internal/core/services"
)

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// HORA_CONFIG_DIR overrides ~/.hora, mainly for tests and CI.
	configStore, err := file.NewConfigStore(os.Getenv("HORA_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("init config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	exportService := services.NewExportService(pdf.NewWriter(), httpfont.NewSource(), settingsService)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Chart:    services.NewChartService(),
		Export:   exportService,
		Settings: settingsService,
		Sessions: memory.NewSessionStore(),
	})
	return cli.Execute()
}
