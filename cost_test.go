package printcolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintCostOffsetDuplex(t *testing.T) {
	got, err := PrintCost(CostRequest{
		WidthMM: 210, HeightMM: 297, Quantity: 1000, NumColors: 4,
		PaperGSM: 150, Method: MethodOffset, Sides: 2,
	})
	require.NoError(t, err)
	assert.InDelta(t, 5.61, got.InkCostUSD, 0.011)
	assert.InDelta(t, 480, got.SetupCostUSD, 1e-9)
	assert.InDelta(t, 512.01, got.TotalCostUSD, 0.011)
	assert.InDelta(t, 0.512, got.CostPerUnitUSD, 0.00011)
	assert.InDelta(t, 280, got.Breakdown.Plates, 1e-9)
	assert.InDelta(t, 200, got.Breakdown.Makeready, 1e-9)
	assert.InDelta(t, 26.4, got.Breakdown.RunCost, 0.011)
}

func TestPrintCostDigitalHasNoSetup(t *testing.T) {
	got, err := PrintCost(CostRequest{
		WidthMM: 100, HeightMM: 100, Quantity: 500, NumColors: 1,
		PaperGSM: 80, Method: MethodDigital,
	})
	require.NoError(t, err)
	assert.Zero(t, got.SetupCostUSD)
	assert.InDelta(t, 30.08, got.TotalCostUSD, 0.011)
	assert.InDelta(t, 30, got.Breakdown.RunCost, 1e-9)
	assert.InDelta(t, 0.0602, got.CostPerUnitUSD, 0.00011)
}

func TestPrintCostHeavyPaperRunsDearer(t *testing.T) {
	r := CostRequest{WidthMM: 100, HeightMM: 100, Quantity: 1000, NumColors: 4, Method: MethodFlexo, Sides: 1}
	r.PaperGSM = 100
	light, err := PrintCost(r)
	require.NoError(t, err)
	r.PaperGSM = 350
	heavy, err := PrintCost(r)
	require.NoError(t, err)
	assert.InDelta(t, light.Breakdown.RunCost*1.5, heavy.Breakdown.RunCost, 0.011)
	assert.Equal(t, light.Breakdown.Ink, heavy.Breakdown.Ink)
}

func TestPrintCostInvalid(t *testing.T) {
	valid := CostRequest{WidthMM: 10, HeightMM: 10, Quantity: 1, NumColors: 1, PaperGSM: 90, Method: MethodOffset, Sides: 1}
	tests := []struct {
		name   string
		modify func(*CostRequest)
		want   error
	}{
		{"zero width", func(r *CostRequest) { r.WidthMM = 0 }, ErrOutOfRange},
		{"zero height", func(r *CostRequest) { r.HeightMM = 0 }, ErrOutOfRange},
		{"zero quantity", func(r *CostRequest) { r.Quantity = 0 }, ErrOutOfRange},
		{"zero colors", func(r *CostRequest) { r.NumColors = 0 }, ErrOutOfRange},
		{"zero gsm", func(r *CostRequest) { r.PaperGSM = 0 }, ErrOutOfRange},
		{"three sides", func(r *CostRequest) { r.Sides = 3 }, ErrOutOfRange},
		{"unknown method", func(r *CostRequest) { r.Method = "risograph" }, ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.modify(&r)
			_, err := PrintCost(r)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
