package colorutils

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmyk2rgb(t *testing.T) {
	tests := []struct {
		name string
		in   CMYK
		want RGB
	}{
		{"black", CMYK{0, 0, 0, 100}, RGB{0, 0, 0, "#000000"}},
		{"white", CMYK{0, 0, 0, 0}, RGB{255, 255, 255, "#FFFFFF"}},
		{"cyan", CMYK{100, 0, 0, 0}, RGB{0, 255, 255, "#00FFFF"}},
		{"magenta", CMYK{0, 100, 0, 0}, RGB{255, 0, 255, "#FF00FF"}},
		{"pantone 485 c", CMYK{0, 95, 100, 0}, RGB{255, 13, 0, "#FF0D00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cmyk2rgb(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCmyk2rgbMidGray(t *testing.T) {
	got, err := Cmyk2rgb(CMYK{0, 0, 0, 50})
	require.NoError(t, err)
	assert.Equal(t, got.R, got.G)
	assert.Equal(t, got.G, got.B)
	assert.GreaterOrEqual(t, got.R, 127)
	assert.LessOrEqual(t, got.R, 128)
}

func TestCmyk2rgbChannelsInRange(t *testing.T) {
	for c := 0.0; c <= 100; c += 12.5 {
		for k := 0.0; k <= 100; k += 25 {
			got, err := Cmyk2rgb(CMYK{c, 100 - c, c / 2, k})
			require.NoError(t, err)
			for _, v := range []int{got.R, got.G, got.B} {
				assert.GreaterOrEqual(t, v, 0)
				assert.LessOrEqual(t, v, 255)
			}
			assert.Len(t, got.Hex, 7)
		}
	}
}

func TestCmyk2rgbOutOfRange(t *testing.T) {
	tests := []struct {
		in      CMYK
		channel string
	}{
		{CMYK{101, 0, 0, 0}, "c"},
		{CMYK{-1, 0, 0, 0}, "c"},
		{CMYK{0, 0, 100.5, 0}, "y"},
		{CMYK{0, 0, 0, math.NaN()}, "k"},
	}
	for _, tt := range tests {
		_, err := Cmyk2rgb(tt.in)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOutOfRange))

		var rangeErr *RangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, tt.channel, rangeErr.Channel)
		assert.Contains(t, err.Error(), "must be between 0 and 100")
	}
}

func TestValidateNamed(t *testing.T) {
	err := CMYK{0, 0, 0, 101}.ValidateNamed("2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "k2 must be between 0 and 100")
}

func TestHex2rgb(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{in: "#FF0000", want: RGB{255, 0, 0, "#FF0000"}},
		{in: "#ff0000", want: RGB{255, 0, 0, "#FF0000"}},
		{in: "ff0000", want: RGB{255, 0, 0, "#FF0000"}},
		{in: "#F00", want: RGB{255, 0, 0, "#FF0000"}},
		{in: "#abc", want: RGB{170, 187, 204, "#AABBCC"}},
		{in: "#DA291C", want: RGB{218, 41, 28, "#DA291C"}},
		{in: "#ZZZZZZ", wantErr: true},
		{in: "#12345G", wantErr: true},
		{in: "#12345", wantErr: true},
		{in: "#ff", wantErr: true},
		{in: "", wantErr: true},
		{in: "#+12345", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Hex2rgb(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidFormat))
				assert.Contains(t, err.Error(), "invalid hex color")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRgb2lab(t *testing.T) {
	white := Rgb2lab(NewRGB(255, 255, 255))
	assert.InDelta(t, 100, white.L, 1e-3)
	assert.InDelta(t, 0, white.A, 1e-3)
	assert.InDelta(t, 0, white.B, 1e-3)

	black := Rgb2lab(NewRGB(0, 0, 0))
	assert.InDelta(t, 0, black.L, 1e-9)
	assert.InDelta(t, 0, black.A, 1e-9)
	assert.InDelta(t, 0, black.B, 1e-9)

	red := Rgb2lab(NewRGB(255, 0, 0))
	assert.InDelta(t, 53.24, red.L, 0.05)
	assert.InDelta(t, 80.09, red.A, 0.05)
	assert.InDelta(t, 67.20, red.B, 0.05)
}

func TestCmyk2labMatchesRgbPath(t *testing.T) {
	lab, err := Cmyk2lab(CMYK{100, 0, 0, 0})
	require.NoError(t, err)

	viaHex, err := Hex2lab("#00FFFF")
	require.NoError(t, err)
	assert.Equal(t, viaHex, lab)

	_, err = Cmyk2lab(CMYK{0, 0, 0, 120})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestNewRGBClamps(t *testing.T) {
	assert.Equal(t, RGB{0, 255, 128, "#00FF80"}, NewRGB(-4, 300, 128))
}

func TestCMYKString(t *testing.T) {
	assert.Equal(t, "cmyk(0,95,100,0)", CMYK{0, 95, 100, 0}.String())
	assert.Equal(t, "cmyk(12.5,0,0,3)", CMYK{12.5, 0, 0, 3}.String())
}
