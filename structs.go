package printcolor

import (
	"slices"
	"strings"
)

type PrintMethod string
type Substrate string
type ColorMode string
type CheckStatus string
type BarcodeType string
type PaperUnit string

const (
	MethodOffset  PrintMethod = "offset"
	MethodFlexo   PrintMethod = "flexo"
	MethodGravure PrintMethod = "gravure"
	MethodScreen  PrintMethod = "screen"
	MethodDigital PrintMethod = "digital"
)

const (
	SubstrateGlossyCoated Substrate = "glossy_coated"
	SubstrateMatteCoated  Substrate = "matte_coated"
	SubstrateUncoated     Substrate = "uncoated"
	SubstrateNewsprint    Substrate = "newsprint"
	SubstrateKraft        Substrate = "kraft"
	SubstrateRecycled     Substrate = "recycled"
)

const (
	ColorModeCMYK      ColorMode = "cmyk"
	ColorModeRGB       ColorMode = "rgb"
	ColorModeGrayscale ColorMode = "grayscale"
	ColorModeSpot      ColorMode = "spot"
)

const (
	StatusPass    CheckStatus = "pass"
	StatusWarning CheckStatus = "warning"
	StatusFail    CheckStatus = "fail"
)

const (
	BarcodeCode128    BarcodeType = "code128"
	BarcodeEAN13      BarcodeType = "ean13"
	BarcodeQR         BarcodeType = "qr"
	BarcodeDataMatrix BarcodeType = "datamatrix"
)

const (
	UnitGSM     PaperUnit = "gsm"
	UnitLbText  PaperUnit = "lb_text"
	UnitLbCover PaperUnit = "lb_cover"
)

var allPrintMethods = []PrintMethod{MethodOffset, MethodFlexo, MethodGravure, MethodScreen, MethodDigital}
var pressMethods = []PrintMethod{MethodOffset, MethodDigital, MethodFlexo}
var allSubstrates = []Substrate{
	SubstrateGlossyCoated, SubstrateMatteCoated, SubstrateUncoated,
	SubstrateNewsprint, SubstrateKraft, SubstrateRecycled,
}
var allColorModes = []ColorMode{ColorModeCMYK, ColorModeRGB, ColorModeGrayscale, ColorModeSpot}
var allBarcodeTypes = []BarcodeType{BarcodeCode128, BarcodeEAN13, BarcodeQR, BarcodeDataMatrix}
var allPaperUnits = []PaperUnit{UnitGSM, UnitLbText, UnitLbCover}

// parseEnum matches s case-insensitively against allowed, the error lists
// the allowed names in sorted order.
func parseEnum[T ~string](kind, s string, allowed []T) (T, error) {
	v := T(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(allowed, v) {
		return v, nil
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	slices.Sort(names)
	return "", invalidInput("unknown %s %q, choose from: %s", kind, s, strings.Join(names, ", "))
}

func ParsePrintMethod(s string) (PrintMethod, error) {
	return parseEnum("print method", s, allPrintMethods)
}

// ParsePressMethod accepts only the methods substrate profiles know about.
func ParsePressMethod(s string) (PrintMethod, error) {
	return parseEnum("print method", s, pressMethods)
}

func ParseSubstrate(s string) (Substrate, error) {
	return parseEnum("substrate", s, allSubstrates)
}

func ParseColorMode(s string) (ColorMode, error) {
	return parseEnum("color mode", s, allColorModes)
}

func ParseBarcodeType(s string) (BarcodeType, error) {
	return parseEnum("barcode type", s, allBarcodeTypes)
}

func ParsePaperUnit(s string) (PaperUnit, error) {
	return parseEnum("paper unit", s, allPaperUnits)
}

func (m PrintMethod) requiresCMYK() bool {
	return m != MethodDigital
}

// worse reports whether s is more severe than other.
func (s CheckStatus) worse(other CheckStatus) bool {
	rank := map[CheckStatus]int{StatusPass: 0, StatusWarning: 1, StatusFail: 2}
	return rank[s] > rank[other]
}
