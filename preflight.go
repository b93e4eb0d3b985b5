package printcolor

import (
	"fmt"
	"strings"
)

var minDPI = map[PrintMethod]float64{
	MethodOffset:  300,
	MethodDigital: 150,
	MethodFlexo:   300,
	MethodGravure: 300,
	MethodScreen:  200,
}

var minBleedMM = map[PrintMethod]float64{
	MethodOffset:  3,
	MethodDigital: 2,
	MethodFlexo:   3,
	MethodGravure: 3,
	MethodScreen:  2,
}

const (
	safeInkCoverage = 300
	maxInkCoverage  = 340

	DefaultInkCoverage = 280
)

// PreflightRequest describes a print file by its declared properties.
type PreflightRequest struct {
	ColorMode          ColorMode   `json:"color_mode"`
	ResolutionDPI      float64     `json:"resolution_dpi"`
	HasBleed           bool        `json:"has_bleed"`
	BleedMM            float64     `json:"bleed_mm"`
	WidthMM            float64     `json:"width_mm"`
	HeightMM           float64     `json:"height_mm"`
	FontsEmbedded      bool        `json:"fonts_embedded"`
	InkCoveragePercent float64     `json:"total_ink_coverage_percent"`
	HasTransparency    bool        `json:"has_transparency"`
	TargetMethod       PrintMethod `json:"target_method"`
}

type CheckResult struct {
	Name    string      `json:"name"`
	Status  CheckStatus `json:"status"`
	Message string      `json:"message"`
}

type PreflightResult struct {
	Status         CheckStatus   `json:"status"`
	Checks         []CheckResult `json:"checks"`
	Summary        string        `json:"summary"`
	Recommendation string        `json:"recommendation"`
}

// Preflight validates a file against the minimums of the target method.
// The overall status is the worst individual one.
func Preflight(r PreflightRequest) (PreflightResult, error) {
	if r.TargetMethod == "" {
		r.TargetMethod = MethodOffset
	}
	method, err := ParsePrintMethod(string(r.TargetMethod))
	if err != nil {
		return PreflightResult{}, err
	}
	mode, err := ParseColorMode(string(r.ColorMode))
	if err != nil {
		return PreflightResult{}, err
	}
	if err = requirePositive("resolution_dpi", r.ResolutionDPI); err != nil {
		return PreflightResult{}, err
	}
	if err = requirePositive("width_mm", r.WidthMM); err != nil {
		return PreflightResult{}, err
	}
	if err = requirePositive("height_mm", r.HeightMM); err != nil {
		return PreflightResult{}, err
	}
	if err = requireNonNegative("bleed_mm", r.BleedMM); err != nil {
		return PreflightResult{}, err
	}
	if err = requireNonNegative("total_ink_coverage_percent", r.InkCoveragePercent); err != nil {
		return PreflightResult{}, err
	}

	checks := []CheckResult{
		checkColorMode(mode, method),
		checkResolution(r.ResolutionDPI, method),
		checkBleed(r.HasBleed, r.BleedMM, method),
		checkFonts(r.FontsEmbedded),
		checkInkCoverage(r.InkCoveragePercent),
		checkTransparency(r.HasTransparency),
	}

	overall := StatusPass
	counts := map[CheckStatus]int{}
	var failed []string
	for _, ch := range checks {
		counts[ch.Status]++
		if ch.Status.worse(overall) {
			overall = ch.Status
		}
		if ch.Status == StatusFail {
			failed = append(failed, ch.Name)
		}
	}

	result := PreflightResult{
		Status: overall,
		Checks: checks,
		Summary: fmt.Sprintf("%d passed, %d warnings, %d failed out of %d checks.",
			counts[StatusPass], counts[StatusWarning], counts[StatusFail], len(checks)),
	}
	switch overall {
	case StatusPass:
		result.Recommendation = "File is ready for production."
	case StatusWarning:
		result.Recommendation = "Review warnings before sending to press."
	default:
		result.Recommendation = fmt.Sprintf("Fix failed checks before production: %s.", strings.Join(failed, ", "))
	}
	return result, nil
}

func checkColorMode(mode ColorMode, method PrintMethod) CheckResult {
	ch := CheckResult{Name: "color_mode", Status: StatusPass}
	upper := strings.ToUpper(string(mode))
	switch {
	case mode == ColorModeGrayscale:
		ch.Message = "Grayscale is acceptable for all methods."
	case method.requiresCMYK() && mode != ColorModeCMYK && mode != ColorModeSpot:
		ch.Status = StatusFail
		ch.Message = fmt.Sprintf("%s is not suitable for %s; convert to CMYK.", upper, method)
	case !method.requiresCMYK() && mode == ColorModeRGB:
		ch.Status = StatusWarning
		ch.Message = "RGB can work for digital but CMYK is preferred for color accuracy."
	default:
		ch.Message = fmt.Sprintf("%s is correct for %s.", upper, method)
	}
	return ch
}

func checkResolution(dpi float64, method PrintMethod) CheckResult {
	need := minDPI[method]
	ch := CheckResult{Name: "resolution"}
	switch {
	case dpi >= need:
		ch.Status = StatusPass
		ch.Message = fmt.Sprintf("%g DPI meets the minimum of %g DPI for %s.", dpi, need, method)
	case dpi >= need*0.75:
		ch.Status = StatusWarning
		ch.Message = fmt.Sprintf("%g DPI is below the recommended %g DPI for %s; may appear soft.", dpi, need, method)
	default:
		ch.Status = StatusFail
		ch.Message = fmt.Sprintf("%g DPI is too low for %s (minimum %g DPI).", dpi, method, need)
	}
	return ch
}

func checkBleed(hasBleed bool, bleed float64, method PrintMethod) CheckResult {
	need := minBleedMM[method]
	ch := CheckResult{Name: "bleed"}
	switch {
	case !hasBleed:
		ch.Status = StatusFail
		ch.Message = fmt.Sprintf("No bleed detected; %s requires at least %g mm bleed.", method, need)
	case bleed >= need:
		ch.Status = StatusPass
		ch.Message = fmt.Sprintf("%g mm bleed meets the %g mm minimum for %s.", bleed, need, method)
	default:
		ch.Status = StatusWarning
		ch.Message = fmt.Sprintf("%g mm bleed is below the recommended %g mm for %s.", bleed, need, method)
	}
	return ch
}

func checkFonts(embedded bool) CheckResult {
	if embedded {
		return CheckResult{Name: "fonts", Status: StatusPass, Message: "All fonts are embedded."}
	}
	return CheckResult{Name: "fonts", Status: StatusFail, Message: "Fonts are not embedded; this will cause text rendering issues."}
}

func checkInkCoverage(total float64) CheckResult {
	ch := CheckResult{Name: "ink_coverage"}
	switch {
	case total <= safeInkCoverage:
		ch.Status = StatusPass
		ch.Message = fmt.Sprintf("Total ink coverage %g%% is within safe limits.", total)
	case total <= maxInkCoverage:
		ch.Status = StatusWarning
		ch.Message = fmt.Sprintf("Total ink coverage %g%% exceeds %d%%; may cause drying issues.", total, safeInkCoverage)
	default:
		ch.Status = StatusFail
		ch.Message = fmt.Sprintf("Total ink coverage %g%% exceeds %d%%; risk of smearing and set-off.", total, maxInkCoverage)
	}
	return ch
}

func checkTransparency(has bool) CheckResult {
	if !has {
		return CheckResult{Name: "transparency", Status: StatusPass, Message: "No transparency detected."}
	}
	return CheckResult{
		Name:    "transparency",
		Status:  StatusWarning,
		Message: "File contains transparency; flatten before sending to press to avoid rendering issues.",
	}
}
