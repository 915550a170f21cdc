package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyotish-labs/hora-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure export defaults.

Use subcommands to configure specific settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsExportDirCmd = &cobra.Command{
	Use:   "export-dir [path]",
	Short: "Set the export directory",
	Long:  `Set where exported PDF charts are written. An empty path means the current working directory.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsExportDir,
}

var settingsFontURLCmd = &cobra.Command{
	Use:   "font-url [url]",
	Short: "Set the glyph font URL",
	Long: `Set the URL of a Unicode TTF used for Devanagari rendering in
exported charts. The fetch is best-effort; when it fails, exports fall
back to transliterated names.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsFontURL,
}

var settingsScriptCmd = &cobra.Command{
	Use:   "script [latin|devanagari]",
	Short: "Set the export script style",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsScript,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsExportDirCmd)
	settingsCmd.AddCommand(settingsFontURLCmd)
	settingsCmd.AddCommand(settingsScriptCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Println("[Export]")
	dir := settings.Export.Directory
	if dir == "" {
		dir = "(current directory)"
	}
	cmd.Printf("  Directory: %s\n", dir)
	cmd.Printf("  Font URL: %s\n", settings.Export.FontURL)
	cmd.Printf("  Script: %s\n", settings.Export.Script.Description())
	return nil
}

func runSettingsExportDir(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.SetExportDirectory(args[0]); err != nil {
		return err
	}
	cmd.Printf("Export directory set to %s\n", args[0])
	return nil
}

func runSettingsFontURL(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.SetFontURL(args[0]); err != nil {
		return err
	}
	cmd.Printf("Font URL set to %s\n", args[0])
	return nil
}

func runSettingsScript(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	script := domain.ScriptStyle(args[0])
	if err := settingsService.SetScript(script); err != nil {
		return fmt.Errorf("set script: %w", err)
	}
	cmd.Printf("Script set to %s\n", script.Description())
	return nil
}
