package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePositionSize_ReduceAndSellAreAlwaysZero(t *testing.T) {
	for _, label := range []string{LabelReduce, LabelSell} {
		for _, vol := range []string{"Low", "Average", "High", ""} {
			sizes := CalculatePositionSize(label, vol)
			assert.Equal(t, 0.0, sizes[ProfileConservative], "%s/%s", label, vol)
			assert.Equal(t, 0.0, sizes[ProfileModerate], "%s/%s", label, vol)
			assert.Equal(t, 0.0, sizes[ProfileAggressive], "%s/%s", label, vol)
		}
	}
}

func TestCalculatePositionSize_Multipliers(t *testing.T) {
	tests := []struct {
		name         string
		label        string
		vol          string
		conservative float64
		moderate     float64
		aggressive   float64
	}{
		{"strong buy low volatility", LabelStrongBuy, "Low", 4.3, 7.2, 11.5},
		{"strong buy average volatility", LabelStrongBuy, "Average", 3.6, 6.0, 9.6},
		{"strong buy high volatility", LabelStrongBuy, "High", 2.9, 4.8, 7.7},
		{"buy average volatility", LabelBuy, "Average", 3.0, 5.0, 8.0},
		{"hold average volatility", LabelHold, "Average", 1.5, 2.5, 4.0},
		{"unknown volatility defaults to neutral", LabelBuy, "", 3.0, 5.0, 8.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sizes := CalculatePositionSize(tt.label, tt.vol)
			assert.Equal(t, tt.conservative, sizes[ProfileConservative])
			assert.Equal(t, tt.moderate, sizes[ProfileModerate])
			assert.Equal(t, tt.aggressive, sizes[ProfileAggressive])
		})
	}
}

func TestCalculatePositionSize_CoversAllProfiles(t *testing.T) {
	sizes := CalculatePositionSize(LabelBuy, "Average")
	assert.Len(t, sizes, 3)
	assert.Contains(t, sizes, ProfileConservative)
	assert.Contains(t, sizes, ProfileModerate)
	assert.Contains(t, sizes, ProfileAggressive)
}
