package recommendation

import "math"

// Base allocations by risk profile, as a fraction of portfolio.
var baseAllocations = map[string]float64{
	ProfileConservative: 0.03,
	ProfileModerate:     0.05,
	ProfileAggressive:   0.08,
}

// Allocation multipliers by recommendation label. Reduce and Sell
// short-circuit to zero for every profile.
var recommendationMultipliers = map[string]float64{
	LabelStrongBuy: 1.2,
	LabelBuy:       1.0,
	LabelHold:      0.5,
	LabelReduce:    0,
	LabelSell:      0,
}

// Allocation multipliers by volatility signal.
var volatilityMultipliers = map[string]float64{
	"Low":     1.2,
	"Average": 1.0,
	"High":    0.8,
}

// maxAllocation caps any single position at 15% of portfolio.
const maxAllocation = 0.15

// CalculatePositionSize suggests a per-risk-profile allocation for the given
// recommendation label and volatility signal. Results are percentages
// rounded to one decimal, clamped to [0, 15].
func CalculatePositionSize(label, volatilitySignal string) PositionSizing {
	sizes := make(PositionSizing, len(baseAllocations))

	for profile, base := range baseAllocations {
		if label == LabelReduce || label == LabelSell {
			sizes[profile] = 0
			continue
		}

		recMultiplier := recommendationMultipliers[label]
		volMultiplier, ok := volatilityMultipliers[volatilitySignal]
		if !ok {
			volMultiplier = 1.0
		}

		allocation := base * recMultiplier * volMultiplier
		allocation = math.Min(allocation, maxAllocation)
		allocation = math.Max(allocation, 0)

		sizes[profile] = math.Round(allocation*1000) / 10 // percent, 1 decimal
	}

	return sizes
}
