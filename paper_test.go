package printcolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertPaperWeight(t *testing.T) {
	tests := []struct {
		value    float64
		from, to PaperUnit
		want     float64
	}{
		{100, UnitGSM, UnitLbText, 67.56},
		{80, UnitLbText, UnitGSM, 118.42},
		{100, UnitLbCover, UnitLbText, 182.95},
		{120, UnitGSM, UnitGSM, 120},
		{65, "LB_COVER", "gsm", 176.02},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			got, err := ConvertPaperWeight(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.011)
		})
	}
}

func TestConvertPaperWeightInvalid(t *testing.T) {
	_, err := ConvertPaperWeight(0, UnitGSM, UnitLbText)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = ConvertPaperWeight(10, "kg", UnitGSM)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ConvertPaperWeight(10, UnitGSM, "oz")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
