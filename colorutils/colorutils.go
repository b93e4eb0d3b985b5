package colorutils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrOutOfRange    = errors.New("value out of range")
	ErrInvalidFormat = errors.New("invalid format")
)

// D65 reference white.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// CMYK holds ink percentages, each channel in [0, 100].
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// RGB is an 8-bit sRGB triple together with its "#RRGGBB" rendering.
type RGB struct {
	R   int    `json:"r"`
	G   int    `json:"g"`
	B   int    `json:"b"`
	Hex string `json:"hex"`
}

type XYZ struct {
	X, Y, Z float64
}

// Lab is a CIELAB coordinate relative to D65.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// RangeError reports a channel outside of [0, 100].
type RangeError struct {
	Channel string
	Value   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between 0 and 100, got %g", e.Channel, e.Value)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// Validate checks the channels in c, m, y, k order and reports the first bad one.
func (c CMYK) Validate() error {
	return c.validate("")
}

// ValidateNamed is Validate with a suffix appended to every channel name,
// e.g. "1" turns "c" into "c1".
func (c CMYK) ValidateNamed(suffix string) error {
	return c.validate(suffix)
}

func (c CMYK) validate(suffix string) error {
	channels := [4]struct {
		name  string
		value float64
	}{{"c", c.C}, {"m", c.M}, {"y", c.Y}, {"k", c.K}}

	for _, ch := range channels {
		if !(ch.value >= 0 && ch.value <= 100) {
			return &RangeError{Channel: ch.name + suffix, Value: ch.value}
		}
	}
	return nil
}

func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%s,%s,%s,%s)", formatFloat(c.C), formatFloat(c.M), formatFloat(c.Y), formatFloat(c.K))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// NewRGB clamps the channels to [0, 255] and fills in the hex rendering.
func NewRGB(r, g, b int) RGB {
	r, g, b = clamp255(r), clamp255(g), clamp255(b)
	return RGB{R: r, G: g, B: b, Hex: fmt.Sprintf("#%02X%02X%02X", r, g, b)}
}

func clamp255(v int) int {
	return max(0, min(255, v))
}

// Cmyk2rgb converts a CMYK color value to RGB
func Cmyk2rgb(cmyk CMYK) (RGB, error) {
	if err := cmyk.Validate(); err != nil {
		return RGB{}, err
	}
	k := 1 - cmyk.K/100
	r := math.RoundToEven(255.0 * (1 - cmyk.C/100) * k)
	g := math.RoundToEven(255.0 * (1 - cmyk.M/100) * k)
	b := math.RoundToEven(255.0 * (1 - cmyk.Y/100) * k)
	return NewRGB(int(r), int(g), int(b)), nil
}

// Hex2rgb parses "#RGB" or "#RRGGBB". The leading '#' is optional.
func Hex2rgb(hex string) (RGB, error) {
	h := strings.TrimLeft(hex, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: invalid hex color %q", ErrInvalidFormat, hex)
	}

	var channels [3]int
	for i := range channels {
		v, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: invalid hex color %q", ErrInvalidFormat, hex)
		}
		channels[i] = int(v)
	}
	return NewRGB(channels[0], channels[1], channels[2]), nil
}

func linearize(v int) float64 {
	s := float64(v) / 255.0
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// Rgb2xyz converts sRGB to CIE XYZ (D65).
func Rgb2xyz(rgb RGB) XYZ {
	r, g, b := linearize(rgb.R), linearize(rgb.G), linearize(rgb.B)
	return XYZ{
		X: 0.4124564*r + 0.3575761*g + 0.1804375*b,
		Y: 0.2126729*r + 0.7151522*g + 0.0721750*b,
		Z: 0.0193339*r + 0.1191920*g + 0.9503041*b,
	}
}

func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}

// Xyz2lab converts CIE XYZ to CIELAB against the D65 white point.
func Xyz2lab(xyz XYZ) Lab {
	fx := labF(xyz.X / whiteX)
	fy := labF(xyz.Y / whiteY)
	fz := labF(xyz.Z / whiteZ)
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func Rgb2lab(rgb RGB) Lab {
	return Xyz2lab(Rgb2xyz(rgb))
}

// Cmyk2lab goes through the naive RGB conversion, there is no ICC transform.
func Cmyk2lab(cmyk CMYK) (Lab, error) {
	rgb, err := Cmyk2rgb(cmyk)
	if err != nil {
		return Lab{}, err
	}
	return Rgb2lab(rgb), nil
}

// Hex2lab parses a hex color and converts it to CIELAB.
func Hex2lab(hex string) (Lab, error) {
	rgb, err := Hex2rgb(hex)
	if err != nil {
		return Lab{}, err
	}
	return Rgb2lab(rgb), nil
}
