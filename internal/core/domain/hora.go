package domain

import "strings"

// Hora is the two-valued classification produced by the hora (D-2)
// divisional rule. Every placement falls into either the Sun's hora
// or the Moon's hora; no other value exists.
type Hora string

// The two horas.
const (
	// HoraSun is the Sun's hora, placed in Leo.
	HoraSun Hora = "sun"

	// HoraMoon is the Moon's hora, placed in Cancer.
	HoraMoon Hora = "moon"
)

// HoraBoundaryDegree is the inclusive upper bound of the first half
// of a sign. A placement at exactly 15° belongs to the first hora.
const HoraBoundaryDegree = 15.0

// IsValid returns true if the hora is recognised.
func (h Hora) IsValid() bool {
	return h == HoraSun || h == HoraMoon
}

// String returns the string representation.
func (h Hora) String() string {
	return string(h)
}

// Sign returns the sign the hora is placed in: Leo for the Sun's
// hora, Cancer for the Moon's.
func (h Hora) Sign() ZodiacSign {
	if h == HoraSun {
		return SignLeo
	}
	return SignCancer
}

// Description returns a human-readable description of the hora.
func (h Hora) Description() string {
	switch h {
	case HoraSun:
		return "Surya Hora (Leo)"
	case HoraMoon:
		return "Chandra Hora (Cancer)"
	default:
		return unknownDisplay
	}
}

// AllHoras returns both horas, Sun first.
func AllHoras() []Hora {
	return []Hora{HoraSun, HoraMoon}
}

// ParseHora parses a hora from user input. Matching is
// case-insensitive and accepts the ruling planet's English or
// Sanskrit name, or the hora's sign.
func ParseHora(input string) (Hora, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "sun", "surya", "leo":
		return HoraSun, nil
	case "moon", "chandra", "cancer":
		return HoraMoon, nil
	default:
		return "", ErrInvalidInput
	}
}

// ClassifyHora computes the hora for a placement.
//
// In odd signs the first half of the sign (degree ≤ 15, boundary
// inclusive) belongs to the Sun and the second half to the Moon.
// In even signs the halves are swapped.
//
// The function is pure and total: any degree is accepted and one of
// the two horas is always returned. Range validation belongs to the
// input layer, not here.
func ClassifyHora(sign ZodiacSign, degree float64) Hora {
	firstHalf := degree <= HoraBoundaryDegree
	if sign.Parity() == ParityOdd {
		if firstHalf {
			return HoraSun
		}
		return HoraMoon
	}
	if firstHalf {
		return HoraMoon
	}
	return HoraSun
}
