package printcolor

import (
	"fmt"

	"github.com/brandquad/printcolor/assets"
	"github.com/brandquad/printcolor/colorutils"
)

// SubstrateTable holds the paper profiles the simulator knows.
type SubstrateTable struct {
	profiles map[Substrate]assets.SubstrateProfile
}

// NewSubstrateTable decodes and checks a YAML profile table. Every substrate
// must be known and carry a dot gain for offset, digital and flexo.
func NewSubstrateTable(data []byte) (*SubstrateTable, error) {
	profiles, err := assets.DecodeSubstrates(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	t := &SubstrateTable{profiles: make(map[Substrate]assets.SubstrateProfile, len(profiles))}
	for _, p := range profiles {
		s, err := ParseSubstrate(p.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
		}
		if _, ok := t.profiles[s]; ok {
			return nil, fmt.Errorf("%w: substrate %q is defined twice", ErrDataUnavailable, s)
		}
		for _, m := range pressMethods {
			if _, ok := p.DotGain[string(m)]; !ok {
				return nil, fmt.Errorf("%w: substrate %q has no dot gain for %s", ErrDataUnavailable, s, m)
			}
		}
		t.profiles[s] = p
	}
	return t, nil
}

// DefaultSubstrateTable is the embedded profile table.
func DefaultSubstrateTable() (*SubstrateTable, error) {
	return NewSubstrateTable(assets.Substrates())
}

type SubstrateRequest struct {
	Color     colorutils.CMYK `json:"color"`
	Substrate Substrate       `json:"substrate"`
	Method    PrintMethod     `json:"print_method"`
}

type SimulatedColor struct {
	colorutils.CMYK
	Hex string `json:"hex"`
}

type SubstrateAdjustments struct {
	DotGainApplied   float64         `json:"dot_gain_applied"`
	AbsorptionKAdded float64         `json:"absorption_k_added"`
	TintOffsets      colorutils.CMYK `json:"tint_offsets"`
}

type SubstrateResult struct {
	Original           SimulatedColor       `json:"original"`
	Simulated          SimulatedColor       `json:"simulated"`
	Substrate          Substrate            `json:"substrate"`
	Method             PrintMethod          `json:"print_method"`
	Adjustments        SubstrateAdjustments `json:"adjustments"`
	DeltaEFromOriginal float64              `json:"delta_e_from_original"`
	Warning            string               `json:"warning"`
}

// dotGain applies midtone weighted gain, strongest at 50%.
func dotGain(v, gain float64) float64 {
	return v + gain/100*v*(1-v/100)
}

// Simulate predicts how a CMYK color shifts when printed on a substrate:
// dot gain first, then black absorption, then paper tint. Empty substrate
// and method default to uncoated offset.
func (t *SubstrateTable) Simulate(r SubstrateRequest) (SubstrateResult, error) {
	if err := r.Color.Validate(); err != nil {
		return SubstrateResult{}, err
	}
	if r.Substrate == "" {
		r.Substrate = SubstrateUncoated
	}
	if r.Method == "" {
		r.Method = MethodOffset
	}
	substrate, err := ParseSubstrate(string(r.Substrate))
	if err != nil {
		return SubstrateResult{}, err
	}
	method, err := ParsePressMethod(string(r.Method))
	if err != nil {
		return SubstrateResult{}, err
	}
	profile, ok := t.profiles[substrate]
	if !ok {
		return SubstrateResult{}, fmt.Errorf("%w: no profile for substrate %q", ErrDataUnavailable, substrate)
	}

	in := r.Color
	gain := profile.DotGain[string(method)]
	absorbed := profile.Absorption * (100 - in.K)
	tint := colorutils.CMYK{C: profile.Tint.C, M: profile.Tint.M, Y: profile.Tint.Y, K: profile.Tint.K}

	out := colorutils.CMYK{
		C: round(clamp100(dotGain(in.C, gain)+tint.C), 1),
		M: round(clamp100(dotGain(in.M, gain)+tint.M), 1),
		Y: round(clamp100(dotGain(in.Y, gain)+tint.Y), 1),
		K: round(clamp100(dotGain(in.K, gain)+absorbed+tint.K), 1),
	}

	de, err := DeltaE(in, out)
	if err != nil {
		return SubstrateResult{}, err
	}
	inRGB, _ := colorutils.Cmyk2rgb(in)
	outRGB, _ := colorutils.Cmyk2rgb(out)

	return SubstrateResult{
		Original:  SimulatedColor{CMYK: in, Hex: inRGB.Hex},
		Simulated: SimulatedColor{CMYK: out, Hex: outRGB.Hex},
		Substrate: substrate,
		Method:    method,
		Adjustments: SubstrateAdjustments{
			DotGainApplied:   gain,
			AbsorptionKAdded: round(absorbed, 2),
			TintOffsets:      tint,
		},
		DeltaEFromOriginal: de.DeltaE,
		Warning:            shiftWarning(de.DeltaE),
	}, nil
}

func shiftWarning(deltaE float64) string {
	switch {
	case deltaE < 3:
		return "Minimal color shift: output should closely match proof."
	case deltaE < 6:
		return "Noticeable color shift: consider adjusting ink density or substrate."
	case deltaE < 10:
		return "Significant color shift: substrate compensation curves recommended."
	}
	return "Severe color shift: this substrate may not be suitable for color-critical work."
}
