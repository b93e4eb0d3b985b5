package printcolor

import (
	"testing"

	"github.com/brandquad/printcolor/colorutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func TestSearchHex(t *testing.T) {
	res, err := testDB.Search(HexTarget("#FF0000"), 5)
	require.NoError(t, err)
	assert.Equal(t, "hex #FF0000", res.SearchType)

	want := []struct {
		name   string
		deltaE float64
	}{
		{"Pantone 485 C", 0.96},
		{"Pantone 485 M", 3.77},
		{"Pantone Bright Red C", 5.11},
		{"Pantone 1795 C", 8.34},
		{"Pantone 485 U", 9.15},
	}
	require.Len(t, res.Matches, len(want))
	for i, w := range want {
		assert.Equal(t, w.name, res.Matches[i].Name)
		assert.InDelta(t, w.deltaE, res.Matches[i].DeltaE, 0.011)
	}
}

func TestSearchCMYK(t *testing.T) {
	res, err := testDB.Search(CMYKTarget{C: 0, M: 95, Y: 100, K: 0}, 3)
	require.NoError(t, err)
	assert.Equal(t, "cmyk(0,95,100,0)", res.SearchType)
	require.Len(t, res.Matches, 3)
	assert.Equal(t, "Pantone 485 C", res.Matches[0].Name)
	assert.Equal(t, 0.0, res.Matches[0].DeltaE)
	assert.Equal(t, "Pantone 485 M", res.Matches[1].Name)
	assert.Equal(t, "Pantone Bright Red C", res.Matches[2].Name)
}

func TestSearchExactEntryIsFirst(t *testing.T) {
	entries, err := testDB.Load()
	require.NoError(t, err)
	for _, e := range entries[:20] {
		res, err := testDB.Search(CMYKTarget(e.CMYK), 1)
		require.NoError(t, err)
		require.Len(t, res.Matches, 1)
		assert.Equal(t, 0.0, res.Matches[0].DeltaE, e.Name)
	}
}

func TestSearchOrderedByDistance(t *testing.T) {
	res, err := testDB.Search(HexTarget("#3A7"), 50)
	require.NoError(t, err)
	require.Len(t, res.Matches, 50)
	for i := 1; i < len(res.Matches); i++ {
		assert.LessOrEqual(t, res.Matches[i-1].DeltaE, res.Matches[i].DeltaE)
	}
}

func TestSearchLimit(t *testing.T) {
	res, err := testDB.Search(HexTarget("#FFFFFF"), 0)
	require.NoError(t, err)
	assert.Len(t, res.Matches, DefaultSearchLimit)

	res, err = testDB.Search(HexTarget("#FFFFFF"), -3)
	require.NoError(t, err)
	assert.Len(t, res.Matches, DefaultSearchLimit)

	res, err = testDB.Search(HexTarget("#FFFFFF"), 10000)
	require.NoError(t, err)
	assert.Len(t, res.Matches, testDB.Len())
}

func TestSearchInvalid(t *testing.T) {
	tests := []struct {
		name   string
		target SearchTarget
		also   error
	}{
		{"nil target", nil, nil},
		{"bad hex", HexTarget("#GGHHII"), ErrInvalidFormat},
		{"short hex", HexTarget("#12"), ErrInvalidFormat},
		{"cmyk out of range", CMYKTarget{C: 0, M: 101, Y: 0, K: 0}, ErrOutOfRange},
		{"cmyk negative", CMYKTarget{C: -1, M: 0, Y: 0, K: 0}, ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testDB.Search(tt.target, 5)
			assert.ErrorIs(t, err, ErrInvalidInput)
			if tt.also != nil {
				assert.ErrorIs(t, err, tt.also)
			}
		})
	}
}

func TestSearchQueryTarget(t *testing.T) {
	target, err := SearchQuery{Hex: "#DA291C"}.Target()
	require.NoError(t, err)
	assert.Equal(t, HexTarget("#DA291C"), target)

	target, err = SearchQuery{C: ptr(0), M: ptr(95), Y: ptr(100), K: ptr(0)}.Target()
	require.NoError(t, err)
	assert.Equal(t, CMYKTarget(colorutils.CMYK{C: 0, M: 95, Y: 100, K: 0}), target)

	invalid := []SearchQuery{
		{},
		{C: ptr(0), M: ptr(95), Y: ptr(100)},
		{K: ptr(10)},
		{Hex: "#FFFFFF", C: ptr(0), M: ptr(0), Y: ptr(0), K: ptr(0)},
	}
	for _, q := range invalid {
		_, err := q.Target()
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestNearest(t *testing.T) {
	lab, err := colorutils.Cmyk2lab(colorutils.CMYK{C: 0, M: 84, Y: 88, K: 0})
	require.NoError(t, err)
	entry, distance, err := testDB.Nearest(lab)
	require.NoError(t, err)
	assert.Equal(t, "Pantone Warm Red C", entry.Name)
	assert.Zero(t, distance)
}
