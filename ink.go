package printcolor

// inkRate is the ink laid down at full coverage and its price.
type inkRate struct {
	GramsPerM2 float64
	USDPerKg   float64
}

var inkRates = map[PrintMethod]inkRate{
	MethodOffset:  {1.5, 25},
	MethodFlexo:   {1.0, 20},
	MethodGravure: {2.5, 22},
	MethodScreen:  {10, 18},
	MethodDigital: {0.65, 80},
}

type InkRequest struct {
	WidthMM         float64     `json:"width_mm"`
	HeightMM        float64     `json:"height_mm"`
	CoveragePercent float64     `json:"coverage_percent"`
	Method          PrintMethod `json:"print_method"`
	Quantity        int         `json:"quantity"`
}

type InkResult struct {
	InkGrams        float64 `json:"ink_grams"`
	InkKg           float64 `json:"ink_kg"`
	CostEstimateUSD float64 `json:"cost_estimate_usd"`
}

func (r InkRequest) validate() error {
	if err := requirePositive("width_mm", r.WidthMM); err != nil {
		return err
	}
	if err := requirePositive("height_mm", r.HeightMM); err != nil {
		return err
	}
	if err := requirePercent("coverage_percent", r.CoveragePercent); err != nil {
		return err
	}
	if r.Quantity <= 0 {
		return outOfRange("quantity must be positive, got %d", r.Quantity)
	}
	return nil
}

// InkConsumption estimates the ink a job needs from its printed area,
// coverage and run length.
func InkConsumption(r InkRequest) (InkResult, error) {
	if err := r.validate(); err != nil {
		return InkResult{}, err
	}
	method, err := ParsePrintMethod(string(r.Method))
	if err != nil {
		return InkResult{}, err
	}

	rate := inkRates[method]
	area := (r.WidthMM / 1000) * (r.HeightMM / 1000)
	grams := area * rate.GramsPerM2 * (r.CoveragePercent / 100) * float64(r.Quantity)
	kg := grams / 1000

	return InkResult{
		InkGrams:        round(grams, 2),
		InkKg:           round(kg, 4),
		CostEstimateUSD: round(kg*rate.USDPerKg, 2),
	}, nil
}
