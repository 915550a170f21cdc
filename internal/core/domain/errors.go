package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSign indicates a string that names no zodiac sign.
	ErrInvalidSign = errors.New("invalid zodiac sign")

	// ErrInvalidPlanet indicates a string that names no planet.
	ErrInvalidPlanet = errors.New("invalid planet")

	// ErrDegreeOutOfRange indicates a degree outside [0,30).
	// The classifier itself never returns this; input layers use it
	// to warn about suspect entries.
	ErrDegreeOutOfRange = errors.New("degree out of range")

	// ErrExportFailed indicates the document writer could not produce output.
	ErrExportFailed = errors.New("export failed")

	// ErrFontUnavailable indicates the glyph font could not be fetched.
	// Export recovers from this by falling back to a built-in font.
	ErrFontUnavailable = errors.New("glyph font unavailable")
)
