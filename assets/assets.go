package assets

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type PantoneColor struct {
	Name       string    `json:"name"`
	Components []float64 `json:"cmyk"`
}

type pantoneData struct {
	Colors []PantoneColor `json:"colors"`
}

type Tint struct {
	C float64 `yaml:"c"`
	M float64 `yaml:"m"`
	Y float64 `yaml:"y"`
	K float64 `yaml:"k"`
}

type SubstrateProfile struct {
	Name       string             `yaml:"name"`
	DotGain    map[string]float64 `yaml:"dot_gain"`
	Absorption float64            `yaml:"absorption"`
	Whiteness  float64            `yaml:"whiteness"`
	Tint       Tint               `yaml:"tint"`
}

type substrateData struct {
	Substrates []SubstrateProfile `yaml:"substrates"`
}

//go:embed pantone_colors.json
var pantonesData []byte

//go:embed substrates.yaml
var substratesData []byte

// Pantones returns the embedded Pantone dataset.
func Pantones() []byte {
	return pantonesData
}

// Substrates returns the embedded substrate profile table.
func Substrates() []byte {
	return substratesData
}

// DecodePantones parses a dataset in the {"colors": [{"name", "cmyk"}]} layout.
func DecodePantones(data []byte) ([]PantoneColor, error) {
	var j pantoneData
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&j); err != nil {
		return nil, fmt.Errorf("decode pantone dataset: %w", err)
	}
	if len(j.Colors) == 0 {
		return nil, fmt.Errorf("decode pantone dataset: no colors")
	}
	return j.Colors, nil
}

func DecodeSubstrates(data []byte) ([]SubstrateProfile, error) {
	var s substrateData
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode substrate profiles: %w", err)
	}
	if len(s.Substrates) == 0 {
		return nil, fmt.Errorf("decode substrate profiles: no substrates")
	}
	return s.Substrates, nil
}
