// Package chartfile loads position entries from a TOML file for the
// non-interactive chart command.
//
// File format:
//
//	[ascendant]
//	sign = "aries"
//	degree = 12.5
//
//	[[planets]]
//	name = "sun"
//	sign = "leo"
//	degree = 3.0
//
// Sign and planet names accept English or Sanskrit, any case.
// Degrees are parsed permissively: a missing or malformed degree
// becomes 0. Entries with unknown signs are kept with an empty sign
// and filtered out at assembly.
package chartfile

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/jyotish-labs/hora-cli/internal/core/domain"
)

type fileDTO struct {
	Ascendant *entryDTO  `toml:"ascendant"`
	Planets   []entryDTO `toml:"planets"`
}

type entryDTO struct {
	Name   string `toml:"name"`
	Sign   string `toml:"sign"`
	Degree any    `toml:"degree"`
}

// Load reads a positions file and maps it to domain entries.
func Load(path string) (*domain.PositionEntry, []domain.PositionEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read positions file: %w", err)
	}

	var dto fileDTO
	if err := toml.Unmarshal(data, &dto); err != nil {
		return nil, nil, fmt.Errorf("parse positions file: %w", err)
	}

	var ascendant *domain.PositionEntry
	if dto.Ascendant != nil {
		entry := mapEntry(*dto.Ascendant, domain.AscendantLabel)
		ascendant = &entry
	}

	planets := make([]domain.PositionEntry, 0, len(dto.Planets))
	for _, p := range dto.Planets {
		planets = append(planets, mapEntry(p, ""))
	}
	return ascendant, planets, nil
}

// mapEntry converts a DTO to a domain entry. fixedLabel overrides the
// name field (used for the ascendant).
func mapEntry(dto entryDTO, fixedLabel string) domain.PositionEntry {
	label := fixedLabel
	if label == "" {
		if planet, err := domain.ParsePlanet(dto.Name); err == nil {
			label = planet.Display()
		} else {
			// Unknown names pass through; assembly filters entries
			// that also lack a valid sign.
			label = dto.Name
		}
	}

	sign, err := domain.ParseZodiacSign(dto.Sign)
	if err != nil {
		sign = ""
	}

	return domain.PositionEntry{
		Label:  label,
		Sign:   sign,
		Degree: coerceDegree(dto.Degree),
	}
}

// coerceDegree accepts the numeric TOML types plus strings, falling
// back to 0 for anything else.
func coerceDegree(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case string:
		return domain.ParseDegree(v)
	default:
		return 0
	}
}
