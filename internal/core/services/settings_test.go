package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyotish-labs/hora-cli/internal/adapters/driven/storage/memory"
	"github.com/jyotish-labs/hora-cli/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Export.Directory, settings.Export.Directory)
	assert.Equal(t, defaults.Export.FontURL, settings.Export.FontURL)
	assert.Equal(t, defaults.Export.Script, settings.Export.Script)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("export.directory", "/tmp/charts")
	_ = store.Set("export.script", "devanagari")

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/charts", settings.Export.Directory)
	assert.Equal(t, domain.ScriptDevanagari, settings.Export.Script)
}

func TestSettingsService_Get_InvalidScriptReturnsDefault(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("export.script", "klingon")

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.ScriptLatin, settings.Export.Script)
}

func TestSettingsService_Save(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	err := service.Save(&domain.AppSettings{
		Export: domain.ExportSettings{
			Directory: "/exports",
			FontURL:   "https://example.com/font.ttf",
			Script:    domain.ScriptDevanagari,
		},
	})
	require.NoError(t, err)

	retrieved, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "/exports", retrieved.Export.Directory)
	assert.Equal(t, "https://example.com/font.ttf", retrieved.Export.FontURL)
	assert.Equal(t, domain.ScriptDevanagari, retrieved.Export.Script)
}

func TestSettingsService_Setters(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetExportDirectory("/out"))
	require.NoError(t, service.SetFontURL("https://example.com/f.ttf"))
	require.NoError(t, service.SetScript(domain.ScriptDevanagari))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "/out", settings.Export.Directory)
	assert.Equal(t, "https://example.com/f.ttf", settings.Export.FontURL)
	assert.Equal(t, domain.ScriptDevanagari, settings.Export.Script)
}

func TestSettingsService_SetScript_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	err := service.SetScript("klingon")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
