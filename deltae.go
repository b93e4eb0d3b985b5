package printcolor

import (
	"github.com/brandquad/printcolor/colorutils"
)

// DeltaEResult is a pairwise color difference with its perceptual band.
type DeltaEResult struct {
	DeltaE         float64            `json:"delta_e"`
	Band           colorutils.Band    `json:"band"`
	Interpretation string             `json:"interpretation"`
	Formula        colorutils.Formula `json:"formula"`
}

// DeltaE compares two CMYK colors with CIE76.
func DeltaE(a, b colorutils.CMYK) (DeltaEResult, error) {
	return DeltaEWith(colorutils.CIE76, a, b)
}

// DeltaEWith compares two CMYK colors with the given formula. The band is
// taken from the rounded value, so 0.999 reports as 1 and "good".
func DeltaEWith(formula colorutils.Formula, a, b colorutils.CMYK) (DeltaEResult, error) {
	if err := a.ValidateNamed("1"); err != nil {
		return DeltaEResult{}, err
	}
	if err := b.ValidateNamed("2"); err != nil {
		return DeltaEResult{}, err
	}
	formula, err := colorutils.ParseFormula(string(formula))
	if err != nil {
		return DeltaEResult{}, err
	}

	// validated above, conversion can't fail
	labA, _ := colorutils.Cmyk2lab(a)
	labB, _ := colorutils.Cmyk2lab(b)

	de := colorutils.RoundDeltaE(formula.Distance(labA, labB))
	band := colorutils.Classify(de)
	return DeltaEResult{
		DeltaE:         de,
		Band:           band,
		Interpretation: band.Description(),
		Formula:        formula,
	}, nil
}
