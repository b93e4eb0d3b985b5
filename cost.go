package printcolor

const averageCoverage = 0.30

// Fixed and running costs per method, in USD.
var (
	plateCost = map[PrintMethod]float64{
		MethodOffset:  35,
		MethodFlexo:   30,
		MethodGravure: 45,
		MethodScreen:  25,
		MethodDigital: 0,
	}
	makereadyCost = map[PrintMethod]float64{
		MethodOffset:  100,
		MethodFlexo:   80,
		MethodGravure: 150,
		MethodScreen:  50,
		MethodDigital: 0,
	}
	runCostPer1000 = map[PrintMethod]float64{
		MethodOffset:  12,
		MethodFlexo:   10,
		MethodGravure: 14,
		MethodScreen:  25,
		MethodDigital: 60,
	}
)

type CostRequest struct {
	WidthMM   float64     `json:"width_mm"`
	HeightMM  float64     `json:"height_mm"`
	Quantity  int         `json:"quantity"`
	NumColors int         `json:"num_colors"`
	PaperGSM  float64     `json:"paper_gsm"`
	Method    PrintMethod `json:"print_method"`
	Sides     int         `json:"sides"`
}

type CostBreakdown struct {
	Ink       float64 `json:"ink"`
	Plates    float64 `json:"plates"`
	Makeready float64 `json:"makeready"`
	RunCost   float64 `json:"run_cost"`
}

type CostResult struct {
	InkCostUSD     float64       `json:"ink_cost_usd"`
	SetupCostUSD   float64       `json:"setup_cost_usd"`
	TotalCostUSD   float64       `json:"total_cost_usd"`
	CostPerUnitUSD float64       `json:"cost_per_unit_usd"`
	Breakdown      CostBreakdown `json:"breakdown"`
}

func (r CostRequest) validate() error {
	if err := requirePositive("width_mm", r.WidthMM); err != nil {
		return err
	}
	if err := requirePositive("height_mm", r.HeightMM); err != nil {
		return err
	}
	if r.Quantity <= 0 {
		return outOfRange("quantity must be positive, got %d", r.Quantity)
	}
	if r.NumColors <= 0 {
		return outOfRange("num_colors must be positive, got %d", r.NumColors)
	}
	if err := requirePositive("paper_gsm", r.PaperGSM); err != nil {
		return err
	}
	if r.Sides != 1 && r.Sides != 2 {
		return outOfRange("sides must be 1 or 2, got %d", r.Sides)
	}
	return nil
}

// PrintCost estimates a full job: ink at average coverage, plates per color
// and side, makeready per side and a run cost that grows with paper weight.
// A zero Sides is read as single sided.
func PrintCost(r CostRequest) (CostResult, error) {
	if r.Sides == 0 {
		r.Sides = 1
	}
	if err := r.validate(); err != nil {
		return CostResult{}, err
	}
	method, err := ParsePrintMethod(string(r.Method))
	if err != nil {
		return CostResult{}, err
	}

	sides := float64(r.Sides)
	colors := float64(r.NumColors)
	quantity := float64(r.Quantity)

	rate := inkRates[method]
	area := (r.WidthMM / 1000) * (r.HeightMM / 1000)
	inkGrams := area * rate.GramsPerM2 * averageCoverage * quantity * colors * sides
	ink := inkGrams / 1000 * rate.USDPerKg

	plates := plateCost[method] * colors * sides
	makeready := makereadyCost[method] * sides

	// heavier stock runs slower
	paperFactor := 1 + max(0, r.PaperGSM-100)/500
	run := runCostPer1000[method] * (quantity / 1000) * paperFactor * sides

	total := ink + plates + makeready + run
	return CostResult{
		InkCostUSD:     round(ink, 2),
		SetupCostUSD:   round(plates+makeready, 2),
		TotalCostUSD:   round(total, 2),
		CostPerUnitUSD: round(total/quantity, 4),
		Breakdown: CostBreakdown{
			Ink:       round(ink, 2),
			Plates:    round(plates, 2),
			Makeready: round(makeready, 2),
			RunCost:   round(run, 2),
		},
	}, nil
}
