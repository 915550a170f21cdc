package domain

// ScriptStyle selects how sign and planet names are rendered in
// exported documents.
type ScriptStyle string

// Available script styles.
const (
	// ScriptLatin renders English names (e.g. "Aries").
	ScriptLatin ScriptStyle = "latin"

	// ScriptDevanagari renders Devanagari names (e.g. "मेष") when a
	// glyph font is available, falling back to transliterated
	// Sanskrit otherwise.
	ScriptDevanagari ScriptStyle = "devanagari"
)

// IsValid returns true if the script style is recognised.
func (s ScriptStyle) IsValid() bool {
	return s == ScriptLatin || s == ScriptDevanagari
}

// String returns the string representation.
func (s ScriptStyle) String() string {
	return string(s)
}

// Description returns a human-readable description of the style.
func (s ScriptStyle) Description() string {
	switch s {
	case ScriptLatin:
		return "Latin (English names)"
	case ScriptDevanagari:
		return "Devanagari (requires glyph font)"
	default:
		return unknownDisplay
	}
}

// AllScriptStyles returns all available script styles.
func AllScriptStyles() []ScriptStyle {
	return []ScriptStyle{ScriptLatin, ScriptDevanagari}
}

// ExportSettings holds PDF export configuration.
type ExportSettings struct {
	// Directory is where exported documents are written.
	// Empty means the current working directory.
	Directory string

	// FontURL is the location of a Unicode TTF used for Devanagari
	// rendering. The fetch is best-effort; export never fails on it.
	FontURL string

	// Script selects the rendering of sign and planet names.
	Script ScriptStyle
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Export holds document export settings.
	Export ExportSettings
}

// DefaultFontURL points at a Noto Sans Devanagari build. Overridable
// via settings; any fetch failure degrades to transliterated output.
const DefaultFontURL = "https://github.com/notofonts/devanagari/raw/main/fonts/NotoSansDevanagari/hinted/ttf/NotoSansDevanagari-Regular.ttf"

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Export: ExportSettings{
			Directory: "",
			FontURL:   DefaultFontURL,
			Script:    ScriptLatin,
		},
	}
}
