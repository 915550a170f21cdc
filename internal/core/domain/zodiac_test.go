package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllZodiacSigns_CanonicalOrder(t *testing.T) {
	signs := AllZodiacSigns()

	require.Len(t, signs, 12)
	assert.Equal(t, SignAries, signs[0])
	assert.Equal(t, SignCancer, signs[3])
	assert.Equal(t, SignPisces, signs[11])
}

func TestZodiacSign_Ordinal(t *testing.T) {
	assert.Equal(t, 1, SignAries.Ordinal())
	assert.Equal(t, 5, SignLeo.Ordinal())
	assert.Equal(t, 12, SignPisces.Ordinal())
	assert.Equal(t, 0, ZodiacSign("ophiuchus").Ordinal())
}

func TestZodiacSign_Parity(t *testing.T) {
	odd := []ZodiacSign{SignAries, SignGemini, SignLeo, SignLibra, SignSagittarius, SignAquarius}
	even := []ZodiacSign{SignTaurus, SignCancer, SignVirgo, SignScorpio, SignCapricorn, SignPisces}

	for _, sign := range odd {
		assert.Equal(t, ParityOdd, sign.Parity(), "expected %s to be odd", sign)
	}
	for _, sign := range even {
		assert.Equal(t, ParityEven, sign.Parity(), "expected %s to be even", sign)
	}
}

func TestZodiacSign_IsValid(t *testing.T) {
	for _, sign := range AllZodiacSigns() {
		assert.True(t, sign.IsValid())
	}
	assert.False(t, ZodiacSign("").IsValid())
	assert.False(t, ZodiacSign("ophiuchus").IsValid())
}

func TestZodiacSign_Names(t *testing.T) {
	assert.Equal(t, "Aries", SignAries.Display())
	assert.Equal(t, "Mesha", SignAries.Sanskrit())
	assert.Equal(t, "मेष", SignAries.Devanagari())
	assert.Equal(t, "Unknown", ZodiacSign("nope").Display())
}

func TestParseZodiacSign(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ZodiacSign
		wantErr  bool
	}{
		{"english lower", "aries", SignAries, false},
		{"english mixed case", "Scorpio", SignScorpio, false},
		{"sanskrit", "Mesha", SignAries, false},
		{"sanskrit lower", "karka", SignCancer, false},
		{"surrounding space", "  leo  ", SignLeo, false},
		{"empty", "", "", true},
		{"unknown", "ophiuchus", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sign, err := ParseZodiacSign(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSign)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sign)
		})
	}
}
