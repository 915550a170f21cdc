package domain

import "strings"

const unknownDisplay = "Unknown"

// Planet identifies one of the 9 classical grahas.
type Planet string

// The 9 grahas in traditional order.
const (
	PlanetSun     Planet = "sun"
	PlanetMoon    Planet = "moon"
	PlanetMars    Planet = "mars"
	PlanetMercury Planet = "mercury"
	PlanetJupiter Planet = "jupiter"
	PlanetVenus   Planet = "venus"
	PlanetSaturn  Planet = "saturn"
	PlanetRahu    Planet = "rahu"
	PlanetKetu    Planet = "ketu"
)

// AscendantLabel is the display label for the chart's reference point.
// The ascendant is not a planet but occupies the first row of a chart.
const AscendantLabel = "Ascendant"

var planetOrder = []Planet{
	PlanetSun, PlanetMoon, PlanetMars, PlanetMercury,
	PlanetJupiter, PlanetVenus, PlanetSaturn, PlanetRahu, PlanetKetu,
}

var sanskritPlanets = map[Planet]string{
	PlanetSun:     "Surya",
	PlanetMoon:    "Chandra",
	PlanetMars:    "Mangala",
	PlanetMercury: "Budha",
	PlanetJupiter: "Guru",
	PlanetVenus:   "Shukra",
	PlanetSaturn:  "Shani",
	PlanetRahu:    "Rahu",
	PlanetKetu:    "Ketu",
}

var devanagariPlanets = map[Planet]string{
	PlanetSun:     "सूर्य",
	PlanetMoon:    "चंद्र",
	PlanetMars:    "मंगल",
	PlanetMercury: "बुध",
	PlanetJupiter: "गुरु",
	PlanetVenus:   "शुक्र",
	PlanetSaturn:  "शनि",
	PlanetRahu:    "राहु",
	PlanetKetu:    "केतु",
}

// AscendantDevanagari is the Devanagari rendering of "Lagna".
const AscendantDevanagari = "लग्न"

// IsValid returns true if the planet is recognised.
func (p Planet) IsValid() bool {
	_, ok := sanskritPlanets[p]
	return ok
}

// String returns the string representation.
func (p Planet) String() string {
	return string(p)
}

// Display returns the capitalised English name.
func (p Planet) Display() string {
	if !p.IsValid() {
		return unknownDisplay
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// Sanskrit returns the transliterated Sanskrit name (e.g. "Surya").
func (p Planet) Sanskrit() string {
	if name, ok := sanskritPlanets[p]; ok {
		return name
	}
	return unknownDisplay
}

// Devanagari returns the Devanagari rendering of the graha name.
func (p Planet) Devanagari() string {
	if name, ok := devanagariPlanets[p]; ok {
		return name
	}
	return unknownDisplay
}

// AllPlanets returns the 9 grahas in traditional order.
func AllPlanets() []Planet {
	planets := make([]Planet, len(planetOrder))
	copy(planets, planetOrder)
	return planets
}

// ParsePlanet parses a planet from user input. Matching is
// case-insensitive and accepts both English and Sanskrit names.
func ParsePlanet(input string) (Planet, error) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return "", ErrInvalidPlanet
	}
	for _, planet := range planetOrder {
		if needle == string(planet) || needle == strings.ToLower(sanskritPlanets[planet]) {
			return planet, nil
		}
	}
	return "", ErrInvalidPlanet
}
