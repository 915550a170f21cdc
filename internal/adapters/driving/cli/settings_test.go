package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyotish-labs/hora-cli/internal/adapters/driven/storage/memory"
	"github.com/jyotish-labs/hora-cli/internal/core/services"
)

// runSettingsCmd executes a settings subcommand against a fresh
// in-memory settings service.
func runSettingsCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	original := settingsService
	settingsService = services.NewSettingsService(memory.NewConfigStore())
	defer func() {
		settingsService = original
		rootCmd.SetArgs(nil)
	}()

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(append([]string{"settings"}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestSettingsCmd_Show(t *testing.T) {
	out, err := runSettingsCmd(t, "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, "Latin (English names)")
	assert.Contains(t, out, "(current directory)")
}

func TestSettingsCmd_SetExportDir(t *testing.T) {
	out, err := runSettingsCmd(t, "export-dir", "/charts")

	require.NoError(t, err)
	assert.Contains(t, out, "Export directory set to /charts")
}

func TestSettingsCmd_SetScript(t *testing.T) {
	out, err := runSettingsCmd(t, "script", "devanagari")

	require.NoError(t, err)
	assert.Contains(t, out, "Devanagari")
}

func TestSettingsCmd_SetScript_Invalid(t *testing.T) {
	_, err := runSettingsCmd(t, "script", "klingon")

	assert.Error(t, err)
}

func TestSettingsCmd_SetFontURL(t *testing.T) {
	out, err := runSettingsCmd(t, "font-url", "https://example.com/f.ttf")

	require.NoError(t, err)
	assert.Contains(t, out, "Font URL set to https://example.com/f.ttf")
}
