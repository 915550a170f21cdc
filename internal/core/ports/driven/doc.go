// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ConfigStore: Application settings (TOML file)
//   - SessionStore: Transient form-session state
//   - ChartExporter: Document rendering (PDF)
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - FontSource: Fetches a Unicode glyph font for Devanagari export.
//     Without it (or on any fetch failure) export uses a built-in font
//     with transliterated names.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
