package driving

import "github.com/jyotish-labs/hora-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, applying defaults
	// for anything unset or invalid.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetExportDirectory sets the export destination directory.
	SetExportDirectory(dir string) error

	// SetFontURL sets the glyph font URL.
	SetFontURL(url string) error

	// SetScript sets the export script style.
	// Returns domain.ErrInvalidInput for an unknown style.
	SetScript(script domain.ScriptStyle) error
}
