// Package domain defines the core business entities for the Hora chart tool.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ZodiacSign: One of the 12 signs in canonical order
//   - Planet: One of the 9 classical grahas
//   - PositionEntry: A labelled (sign, degree) placement entered by the user
//   - Hora: The two-valued classification computed from a placement
//   - Interpretation: Static reading text for each Hora
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
