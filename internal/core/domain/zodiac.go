package domain

import "strings"

// ZodiacSign identifies one of the 12 signs of the sidereal zodiac.
type ZodiacSign string

// The 12 signs in canonical order.
const (
	SignAries       ZodiacSign = "aries"
	SignTaurus      ZodiacSign = "taurus"
	SignGemini      ZodiacSign = "gemini"
	SignCancer      ZodiacSign = "cancer"
	SignLeo         ZodiacSign = "leo"
	SignVirgo       ZodiacSign = "virgo"
	SignLibra       ZodiacSign = "libra"
	SignScorpio     ZodiacSign = "scorpio"
	SignSagittarius ZodiacSign = "sagittarius"
	SignCapricorn   ZodiacSign = "capricorn"
	SignAquarius    ZodiacSign = "aquarius"
	SignPisces      ZodiacSign = "pisces"
)

// Parity is the odd/even grouping of signs used by the hora rule.
type Parity string

// The two parity classes. Odd signs are counted from Aries (1st, 3rd, ...).
const (
	ParityOdd  Parity = "odd"
	ParityEven Parity = "even"
)

// signOrder fixes the canonical sequence. Ordinal and parity derive from it.
var signOrder = []ZodiacSign{
	SignAries, SignTaurus, SignGemini, SignCancer,
	SignLeo, SignVirgo, SignLibra, SignScorpio,
	SignSagittarius, SignCapricorn, SignAquarius, SignPisces,
}

// sanskritNames maps each sign to its transliterated Sanskrit name.
var sanskritNames = map[ZodiacSign]string{
	SignAries:       "Mesha",
	SignTaurus:      "Vrishabha",
	SignGemini:      "Mithuna",
	SignCancer:      "Karka",
	SignLeo:         "Simha",
	SignVirgo:       "Kanya",
	SignLibra:       "Tula",
	SignScorpio:     "Vrishchika",
	SignSagittarius: "Dhanu",
	SignCapricorn:   "Makara",
	SignAquarius:    "Kumbha",
	SignPisces:      "Meena",
}

// devanagariSigns maps each sign to its Devanagari rendering.
// Used by the PDF exporter when a Unicode glyph font is available.
var devanagariSigns = map[ZodiacSign]string{
	SignAries:       "मेष",
	SignTaurus:      "वृषभ",
	SignGemini:      "मिथुन",
	SignCancer:      "कर्क",
	SignLeo:         "सिंह",
	SignVirgo:       "कन्या",
	SignLibra:       "तुला",
	SignScorpio:     "वृश्चिक",
	SignSagittarius: "धनु",
	SignCapricorn:   "मकर",
	SignAquarius:    "कुंभ",
	SignPisces:      "मीन",
}

// IsValid returns true if the sign is recognised.
func (s ZodiacSign) IsValid() bool {
	_, ok := sanskritNames[s]
	return ok
}

// String returns the string representation.
func (s ZodiacSign) String() string {
	return string(s)
}

// Ordinal returns the 1-based position of the sign in the canonical
// sequence (Aries = 1), or 0 for an invalid sign.
func (s ZodiacSign) Ordinal() int {
	for i, sign := range signOrder {
		if sign == s {
			return i + 1
		}
	}
	return 0
}

// Parity returns the parity class of the sign. Odd-numbered signs
// (Aries, Gemini, Leo, Libra, Sagittarius, Aquarius) are odd.
// Invalid signs report even; callers are expected to validate first.
func (s ZodiacSign) Parity() Parity {
	if s.Ordinal()%2 == 1 {
		return ParityOdd
	}
	return ParityEven
}

// Display returns the capitalised English name.
func (s ZodiacSign) Display() string {
	if !s.IsValid() {
		return unknownDisplay
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Sanskrit returns the transliterated Sanskrit name (e.g. "Mesha").
func (s ZodiacSign) Sanskrit() string {
	if name, ok := sanskritNames[s]; ok {
		return name
	}
	return unknownDisplay
}

// Devanagari returns the Devanagari rendering of the sign name.
func (s ZodiacSign) Devanagari() string {
	if name, ok := devanagariSigns[s]; ok {
		return name
	}
	return unknownDisplay
}

// AllZodiacSigns returns the 12 signs in canonical order.
func AllZodiacSigns() []ZodiacSign {
	signs := make([]ZodiacSign, len(signOrder))
	copy(signs, signOrder)
	return signs
}

// ParseZodiacSign parses a sign from user input. Matching is
// case-insensitive and accepts both English and transliterated
// Sanskrit names.
func ParseZodiacSign(input string) (ZodiacSign, error) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return "", ErrInvalidSign
	}
	for _, sign := range signOrder {
		if needle == string(sign) || needle == strings.ToLower(sanskritNames[sign]) {
			return sign, nil
		}
	}
	return "", ErrInvalidSign
}
