package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEmbeddedPantones(t *testing.T) {
	colors, err := DecodePantones(Pantones())
	require.NoError(t, err)
	require.NotEmpty(t, colors)

	var found bool
	for _, c := range colors {
		require.Len(t, c.Components, 4, c.Name)
		if c.Name == "Pantone 485 C" {
			found = true
			assert.Equal(t, []float64{0, 95, 100, 0}, c.Components)
		}
	}
	assert.True(t, found)
}

func TestDecodePantonesErrors(t *testing.T) {
	_, err := DecodePantones([]byte(`{"colors": [`))
	assert.Error(t, err)

	_, err = DecodePantones([]byte(`{"colors": []}`))
	assert.Error(t, err)

	_, err = DecodePantones([]byte(`{"colours": [{"name": "x", "cmyk": [0, 0, 0, 0]}]}`))
	assert.Error(t, err)
}

func TestDecodeEmbeddedSubstrates(t *testing.T) {
	profiles, err := DecodeSubstrates(Substrates())
	require.NoError(t, err)
	require.Len(t, profiles, 6)

	assert.Equal(t, "glossy_coated", profiles[0].Name)
	assert.Equal(t, 12.0, profiles[0].DotGain["offset"])

	kraft := profiles[4]
	assert.Equal(t, "kraft", kraft.Name)
	assert.Equal(t, Tint{C: 0, M: 6, Y: 15, K: 8}, kraft.Tint)
	assert.Equal(t, 0.15, kraft.Absorption)
}

func TestDecodeSubstratesErrors(t *testing.T) {
	_, err := DecodeSubstrates([]byte("substrates: ["))
	assert.Error(t, err)

	_, err = DecodeSubstrates([]byte("substrates: []"))
	assert.Error(t, err)
}
