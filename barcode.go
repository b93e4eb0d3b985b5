package printcolor

const baselineDensity = 0.5

type barcodeSpec struct {
	coverageRatio float64
	minModuleMM   float64
}

var barcodeSpecs = map[BarcodeType]barcodeSpec{
	BarcodeCode128:    {0.50, 0.25},
	BarcodeEAN13:      {0.52, 0.264},
	BarcodeQR:         {0.45, 0.33},
	BarcodeDataMatrix: {0.48, 0.30},
}

const recommendedBarcodeInk = "Process Black (K: 100)"

type BarcodeRequest struct {
	Type     BarcodeType `json:"barcode_type"`
	WidthMM  float64     `json:"width_mm"`
	HeightMM float64     `json:"height_mm"`
	// Density of the bar pattern in (0, 1], zero means the 0.5 baseline.
	Density float64 `json:"bar_density"`
}

type BarcodeResult struct {
	CoveragePercent       float64 `json:"coverage_percent"`
	RecommendedInk        string  `json:"recommended_ink"`
	PrintMethodSuggestion string  `json:"print_method_suggestion"`
	BarAreaMM2            float64 `json:"bar_area_mm2"`
	TotalAreaMM2          float64 `json:"total_area_mm2"`
}

// BarcodeCoverage estimates the dark share of a barcode area and suggests
// a print method able to hold its modules.
func BarcodeCoverage(r BarcodeRequest) (BarcodeResult, error) {
	if r.Density == 0 {
		r.Density = baselineDensity
	}
	if err := requirePositive("width_mm", r.WidthMM); err != nil {
		return BarcodeResult{}, err
	}
	if err := requirePositive("height_mm", r.HeightMM); err != nil {
		return BarcodeResult{}, err
	}
	if !(r.Density > 0 && r.Density <= 1) {
		return BarcodeResult{}, outOfRange("bar_density must be between 0 (exclusive) and 1.0, got %g", r.Density)
	}
	bt, err := ParseBarcodeType(string(r.Type))
	if err != nil {
		return BarcodeResult{}, err
	}

	spec := barcodeSpecs[bt]
	total := r.WidthMM * r.HeightMM
	coverage := min(spec.coverageRatio*(r.Density/baselineDensity), 1)

	return BarcodeResult{
		CoveragePercent:       round(coverage*100, 1),
		RecommendedInk:        recommendedBarcodeInk,
		PrintMethodSuggestion: suggestBarcodeMethod(spec.minModuleMM, r.Density),
		BarAreaMM2:            round(total*coverage, 2),
		TotalAreaMM2:          round(total, 2),
	}, nil
}

func suggestBarcodeMethod(moduleMM, density float64) string {
	switch {
	case moduleMM < 0.3 || density > 0.7:
		return "digital: finest resolution, best for small modules and high density"
	case moduleMM < 0.5:
		return "offset: good resolution for medium modules, cost-effective at volume"
	}
	return "flexo: suitable for larger modules, common in packaging"
}
