package services

import (
	"fmt"

	"github.com/jyotish-labs/hora-cli/internal/core/domain"
	"github.com/jyotish-labs/hora-cli/internal/core/ports/driven"
	"github.com/jyotish-labs/hora-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyExportDirectory = "export.directory"
	keyExportFontURL   = "export.font_url"
	keyExportScript    = "export.script"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Unset or invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Export: domain.ExportSettings{
			Directory: s.configStore.GetString(keyExportDirectory), // empty means cwd
			FontURL:   s.getString(keyExportFontURL, defaults.Export.FontURL),
			Script:    s.getScript(defaults.Export.Script),
		},
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyExportDirectory, settings.Export.Directory); err != nil {
		return fmt.Errorf("save export directory: %w", err)
	}
	if err := s.configStore.Set(keyExportFontURL, settings.Export.FontURL); err != nil {
		return fmt.Errorf("save font url: %w", err)
	}
	if err := s.configStore.Set(keyExportScript, settings.Export.Script.String()); err != nil {
		return fmt.Errorf("save script: %w", err)
	}
	return nil
}

// SetExportDirectory sets the export destination directory.
func (s *SettingsService) SetExportDirectory(dir string) error {
	if err := s.configStore.Set(keyExportDirectory, dir); err != nil {
		return fmt.Errorf("save export directory: %w", err)
	}
	return nil
}

// SetFontURL sets the glyph font URL.
func (s *SettingsService) SetFontURL(url string) error {
	if err := s.configStore.Set(keyExportFontURL, url); err != nil {
		return fmt.Errorf("save font url: %w", err)
	}
	return nil
}

// SetScript sets the export script style.
func (s *SettingsService) SetScript(script domain.ScriptStyle) error {
	if !script.IsValid() {
		return fmt.Errorf("%w: unknown script style %q", domain.ErrInvalidInput, script)
	}
	if err := s.configStore.Set(keyExportScript, script.String()); err != nil {
		return fmt.Errorf("save script: %w", err)
	}
	return nil
}

func (s *SettingsService) getString(key, fallback string) string {
	if value := s.configStore.GetString(key); value != "" {
		return value
	}
	return fallback
}

func (s *SettingsService) getScript(fallback domain.ScriptStyle) domain.ScriptStyle {
	script := domain.ScriptStyle(s.configStore.GetString(keyExportScript))
	if script.IsValid() {
		return script
	}
	return fallback
}
