package domain

// Interpretation is the static reading text for one hora.
type Interpretation struct {
	// Hora is the classification this record belongs to.
	Hora Hora

	// Title is the heading shown above the reading.
	Title string

	// Description is the body text of the reading.
	Description string

	// Qualities is the ordered bullet list of significations.
	Qualities []string
}

// interpretations is the closed lookup table: exactly one record per
// hora. Interpret relies on this mapping being total.
var interpretations = map[Hora]Interpretation{
	HoraSun: {
		Hora:  HoraSun,
		Title: "Surya Hora — the Sun's half",
		Description: "Placements in the Sun's hora fall under the solar " +
			"principle of self-effort. Wealth indicated here is earned " +
			"through one's own initiative, authority and sustained work " +
			"rather than inherited or received. The Sun's hora is " +
			"considered strong in day births and favours masculine, " +
			"assertive undertakings.",
		Qualities: []string{
			"Self-earned wealth through initiative and effort",
			"Authority, command and visibility in one's field",
			"Support from government, father or senior figures",
			"Vitality and a direct, assertive temperament",
			"Gains that grow slowly but remain stable",
		},
	},
	HoraMoon: {
		Hora:  HoraMoon,
		Title: "Chandra Hora — the Moon's half",
		Description: "Placements in the Moon's hora fall under the lunar " +
			"principle of receptivity. Wealth indicated here flows " +
			"through liquidity, exchange and the goodwill of others — " +
			"trade, inheritance, family support and the public. The " +
			"Moon's hora is considered strong in night births and " +
			"favours nurturing, adaptive undertakings.",
		Qualities: []string{
			"Wealth through liquidity, trade and exchange",
			"Gains from family, inheritance and the public",
			"Emotional intelligence and adaptability",
			"Support from mother and feminine figures",
			"Fluctuating but readily accessible resources",
		},
	},
}

// Interpret returns the reading for a hora. The mapping is total over
// the two valid values; asking for anything else is a programming
// error and yields the zero record.
func Interpret(h Hora) Interpretation {
	return interpretations[h]
}
