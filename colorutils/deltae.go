package colorutils

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type Formula string

const (
	CIE76     Formula = "cie76"
	CIE94     Formula = "cie94"
	CIEDE2000 Formula = "ciede2000"
)

// ParseFormula accepts a formula name case-insensitively. The empty string is CIE76.
func ParseFormula(s string) (Formula, error) {
	switch f := Formula(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return CIE76, nil
	case CIE76, CIE94, CIEDE2000:
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown delta E formula %q, choose from cie76, cie94, ciede2000", ErrInvalidFormat, s)
}

// DeltaE is the CIE76 difference: plain Euclidean distance in Lab.
func DeltaE(a, b Lab) float64 {
	dl, da, db := a.L-b.L, a.A-b.A, a.B-b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// Distance measures a against b with formula f. Unknown formulas fall back to CIE76.
func (f Formula) Distance(a, b Lab) float64 {
	switch f {
	case CIE94:
		return toColorful(a).DistanceCIE94(toColorful(b)) * 100
	case CIEDE2000:
		return toColorful(a).DistanceCIEDE2000(toColorful(b)) * 100
	}
	return DeltaE(a, b)
}

// go-colorful keeps L in [0,1] and scales its distances the same way.
func toColorful(l Lab) colorful.Color {
	return colorful.Lab(l.L/100, l.A/100, l.B/100)
}

// RoundDeltaE rounds a distance to 2 decimals for presentation, halves to even.
func RoundDeltaE(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

// Band is the perceptual interpretation of a Delta E value.
type Band string

const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandFair      Band = "fair"
	BandPoor      Band = "poor"
)

func Classify(deltaE float64) Band {
	switch {
	case deltaE < 1:
		return BandExcellent
	case deltaE < 3:
		return BandGood
	case deltaE < 6:
		return BandFair
	}
	return BandPoor
}

func (b Band) Description() string {
	switch b {
	case BandExcellent:
		return "excellent: imperceptible difference"
	case BandGood:
		return "good: barely perceptible"
	case BandFair:
		return "fair: noticeable difference"
	}
	return "poor: obvious difference"
}
