package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	// Bucharest → Cluj-Napoca is roughly 324 km as the crow flies.
	d := HaversineKm(44.4268, 26.1025, 46.7712, 23.6236)
	assert.InDelta(t, 324, d, 10)

	assert.Zero(t, HaversineKm(44.4268, 26.1025, 44.4268, 26.1025))
}

func TestIsValidPlusCode(t *testing.T) {
	assert.True(t, IsValidPlusCode("8GP8C4QM+2F Bucharest"))
	assert.True(t, IsValidPlusCode("8GP8C4QM+2FG Cluj Napoca"))

	assert.False(t, IsValidPlusCode(""))
	assert.False(t, IsValidPlusCode("8GP8C4QM+2F"))       // no locality
	assert.False(t, IsValidPlusCode("salon bucuresti"))   // plain text
	assert.False(t, IsValidPlusCode("8GP8C4QM-2F Buc"))   // wrong separator
}

func TestExtractCityFromPlusCode(t *testing.T) {
	assert.Equal(t, "Bucharest", ExtractCityFromPlusCode("8GP8C4QM+2F Bucharest"))
	assert.Equal(t, "Cluj Napoca", ExtractCityFromPlusCode("8GP8C4QM+2FG Cluj Napoca"))
	assert.Empty(t, ExtractCityFromPlusCode("not a code"))
}
