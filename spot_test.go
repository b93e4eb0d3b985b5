package printcolor

import (
	"errors"
	"testing"

	"github.com/brandquad/printcolor/colorutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeparateSpots(t *testing.T) {
	colors := []colorutils.CMYK{
		{C: 0, M: 95, Y: 100, K: 0},
		{C: 37, M: 11, Y: 80, K: 14},
		{C: 0, M: 84, Y: 88, K: 0},
	}
	res, err := testDB.SeparateSpots(colors, DefaultSpotThreshold, 2)
	require.NoError(t, err)

	require.Len(t, res.SpotColors, 2)
	assert.Equal(t, colors[0], res.SpotColors[0].Color)
	assert.Equal(t, "Pantone 485 C", res.SpotColors[0].NearestPantone)
	assert.Equal(t, "#FF0D00", res.SpotColors[0].Hex)
	assert.Zero(t, res.SpotColors[0].DeltaE)
	assert.Contains(t, res.SpotColors[0].Reason, "Close match to Pantone 485 C")
	assert.Equal(t, "Pantone Warm Red C", res.SpotColors[1].NearestPantone)

	require.Len(t, res.ProcessColors, 1)
	p := res.ProcessColors[0]
	assert.Equal(t, "#8AC32C", p.Hex)
	assert.Equal(t, "Pantone 389 U", p.NearestPantone)
	assert.InDelta(t, 26.87, p.DeltaE, 0.011)
	assert.Contains(t, p.Reason, "Reproduce as process (CMYK) color")

	assert.Contains(t, res.Reasoning, "Analyzed 3 colors with Delta E threshold 5.")
	assert.Contains(t, res.Reasoning, "2 recommended as spot colors, 1 as process colors.")
}

func TestSeparateSpotsThresholdIsInclusive(t *testing.T) {
	color := colorutils.CMYK{C: 37, M: 11, Y: 80, K: 14}
	res, err := testDB.SeparateSpots([]colorutils.CMYK{color}, 1, 1)
	require.NoError(t, err)
	require.Len(t, res.ProcessColors, 1)

	res, err = testDB.SeparateSpots([]colorutils.CMYK{color}, res.ProcessColors[0].DeltaE, 1)
	require.NoError(t, err)
	assert.Len(t, res.SpotColors, 1)
	assert.Empty(t, res.ProcessColors)
}

func TestSeparateSpotsKeepsOrder(t *testing.T) {
	entries, err := testDB.Load()
	require.NoError(t, err)
	colors := make([]colorutils.CMYK, 0, 40)
	for _, e := range entries[:40] {
		colors = append(colors, e.CMYK)
	}

	res, err := testDB.SeparateSpots(colors, 0.5, 8)
	require.NoError(t, err)
	require.Len(t, res.SpotColors, len(colors))
	for i, e := range res.SpotColors {
		assert.Equal(t, colors[i], e.Color)
	}
}

func TestSeparateSpotsInvalid(t *testing.T) {
	_, err := testDB.SeparateSpots(nil, 5, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = testDB.SeparateSpots([]colorutils.CMYK{{}}, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = testDB.SeparateSpots([]colorutils.CMYK{{}}, -2, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = testDB.SeparateSpots([]colorutils.CMYK{{}, {M: 150}}, 5, 1)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Contains(t, err.Error(), "color 1:")
	var re *colorutils.RangeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "m", re.Channel)
}
