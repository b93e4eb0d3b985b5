package printcolor

import (
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var defaultDecoder = charmap.ISO8859_1.NewDecoder()
var utf16Decoder = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()

// round rounds v to the given number of decimal places.
func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(v*p) / p
}

func clamp100(v float64) float64 {
	return max(0, min(100, v))
}

func requirePositive(name string, v float64) error {
	if !(v > 0) {
		return outOfRange("%s must be positive, got %g", name, v)
	}
	return nil
}

func requireNonNegative(name string, v float64) error {
	if !(v >= 0) {
		return outOfRange("%s must be non-negative, got %g", name, v)
	}
	return nil
}

func requirePercent(name string, v float64) error {
	if !(v >= 0 && v <= 100) {
		return outOfRange("%s must be between 0 and 100, got %g", name, v)
	}
	return nil
}

// decodeASCII turns a NUL padded 8-bit string into UTF-8, bytes that are not
// valid UTF-8 are read as Latin-1.
func decodeASCII(b []byte) string {
	if !utf8.Valid(b) {
		if out, err := defaultDecoder.Bytes(b); err == nil {
			b = out
		}
	}
	return strings.TrimRight(string(b), "\x00")
}

func decodeUTF16(b []byte) string {
	out, err := utf16Decoder.Bytes(b)
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(out), "\x00")
}
