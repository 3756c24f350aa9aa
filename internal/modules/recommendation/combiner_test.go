package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/internal/modules/behavioral"
	"github.com/aristath/advisor/internal/modules/fundamentals"
	"github.com/aristath/advisor/internal/modules/technical"
)

func analyses(techScore, fundScore, behavScore float64) (*technical.Analysis, *fundamentals.Analysis, *behavioral.Analysis) {
	tech := &technical.Analysis{
		Score:            techScore,
		Trend:            technical.TrendUptrend,
		RSISignal:        "Neutral",
		VolatilitySignal: "Average",
	}
	fund := &fundamentals.Analysis{Score: fundScore, Sector: "Technology"}
	behav := &behavioral.Analysis{Score: behavScore, Signal: behavioral.SignalLabel(behavScore)}
	return tech, fund, behav
}

func TestHorizonWeights(t *testing.T) {
	tests := []struct {
		horizon domain.Horizon
		want    Weights
	}{
		{domain.HorizonShortTerm, Weights{Technical: 0.7, Fundamental: 0.1, Behavioral: 0.2}},
		{domain.HorizonMediumTerm, Weights{Technical: 0.4, Fundamental: 0.4, Behavioral: 0.2}},
		{domain.HorizonLongTerm, Weights{Technical: 0.2, Fundamental: 0.7, Behavioral: 0.1}},
		{domain.Horizon("bogus"), Weights{Technical: 0.4, Fundamental: 0.4, Behavioral: 0.2}},
	}

	for _, tt := range tests {
		got := HorizonWeights(tt.horizon)
		assert.Equal(t, tt.want, got, "horizon %s", tt.horizon)
		assert.InDelta(t, 1.0, got.Technical+got.Fundamental+got.Behavioral, 1e-9)
	}
}

func TestCombine_WeightedSum(t *testing.T) {
	tech, fund, behav := analyses(10, 10, 4)
	price := 100.0

	rec := Combine("TCS.NS", "Tata Consultancy", tech, fund, behav, &price, domain.HorizonShortTerm)

	// 0.7*10 + 0.1*10 + 0.2*4 = 8.8
	assert.InDelta(t, 8.8, rec.CombinedScore, 1e-9)
	assert.Equal(t, LabelStrongBuy, rec.Label)
	assert.Equal(t, 0.9, rec.Confidence)

	require.NotNil(t, rec.TargetPrice)
	require.NotNil(t, rec.StopLoss)
	assert.InDelta(t, 115.0, *rec.TargetPrice, 1e-9)
	assert.InDelta(t, 93.0, *rec.StopLoss, 1e-9)

	assert.NotEmpty(t, rec.PositionSizing)
	assert.Equal(t, domain.HorizonShortTerm, rec.TimeHorizon)
	assert.NotNil(t, rec.Technical)
	assert.NotNil(t, rec.Fundamental)
	assert.NotNil(t, rec.Behavioral)
}

func TestCombine_WeightedSumPerHorizon(t *testing.T) {
	// tech 6, fund -2, behav 8; each horizon weights them differently.
	tests := []struct {
		horizon  domain.Horizon
		combined float64
		label    string
	}{
		{domain.HorizonShortTerm, 0.7*6 + 0.1*-2 + 0.2*8, LabelBuy},  // 5.6
		{domain.HorizonMediumTerm, 0.4*6 + 0.4*-2 + 0.2*8, LabelBuy}, // 3.2
		{domain.HorizonLongTerm, 0.2*6 + 0.7*-2 + 0.1*8, LabelHold},  // 0.6
	}

	for _, tt := range tests {
		tech, fund, behav := analyses(6, -2, 8)
		price := 100.0

		rec := Combine("TCS.NS", "", tech, fund, behav, &price, tt.horizon)

		assert.InDelta(t, tt.combined, rec.CombinedScore, 1e-9, "horizon %s", tt.horizon)
		assert.Equal(t, tt.label, rec.Label, "horizon %s", tt.horizon)
		assert.Equal(t, tt.horizon, rec.TimeHorizon)
	}
}

func TestCombine_Idempotent(t *testing.T) {
	tech, fund, behav := analyses(8, 6, 7)
	price := 320.0

	first := Combine("TCS.NS", "Tata Consultancy", tech, fund, behav, &price, domain.HorizonMediumTerm)
	second := Combine("TCS.NS", "Tata Consultancy", tech, fund, behav, &price, domain.HorizonMediumTerm)

	// Same inputs produce field-identical output; only the generation
	// timestamp differs between runs.
	second.GeneratedAt = first.GeneratedAt
	assert.Equal(t, first, second)
}

func TestCombine_NilPriceProducesNoTargets(t *testing.T) {
	tech, fund, behav := analyses(10, 10, 10)

	rec := Combine("INFY.NS", "", tech, fund, behav, nil, domain.HorizonMediumTerm)

	assert.Equal(t, LabelStrongBuy, rec.Label)
	assert.Nil(t, rec.CurrentPrice)
	assert.Nil(t, rec.TargetPrice)
	assert.Nil(t, rec.StopLoss)
}

func TestCombine_HoldHasNoTargets(t *testing.T) {
	tech, fund, behav := analyses(0, 0, 5)
	price := 250.0

	rec := Combine("HDFC.NS", "", tech, fund, behav, &price, domain.HorizonMediumTerm)

	// 0.4*0 + 0.4*0 + 0.2*5 = 1.0 -> Hold
	assert.Equal(t, LabelHold, rec.Label)
	assert.Equal(t, 0.5, rec.Confidence)
	assert.Nil(t, rec.TargetPrice)
	assert.Nil(t, rec.StopLoss)
}

func TestLabelForScore_Boundaries(t *testing.T) {
	tests := []struct {
		combined   float64
		label      string
		confidence float64
	}{
		{8.0, LabelStrongBuy, 0.9},
		{7.0, LabelStrongBuy, 0.9},
		{6.99, LabelBuy, 0.7},
		{3.0, LabelBuy, 0.7},
		{2.99, LabelHold, 0.5},
		{-2.99, LabelHold, 0.5},
		{-3.0, LabelReduce, 0.7},
		{-6.99, LabelReduce, 0.7},
		{-7.0, LabelSell, 0.9},
	}

	for _, tt := range tests {
		label, confidence := labelForScore(tt.combined)
		assert.Equal(t, tt.label, label, "combined %v", tt.combined)
		assert.Equal(t, tt.confidence, confidence, "combined %v", tt.combined)
	}
}

func TestNoRecommendation(t *testing.T) {
	rec := NoRecommendation("WIPRO.NS", domain.HorizonLongTerm, "Unable to fetch stock data")

	assert.Equal(t, LabelNoRecommendation, rec.Label)
	assert.Equal(t, "Unable to fetch stock data", rec.Reasoning)
	assert.Zero(t, rec.Confidence)
	assert.Zero(t, rec.CombinedScore)
	assert.Nil(t, rec.TargetPrice)
	assert.Empty(t, rec.PositionSizing)
	assert.Equal(t, domain.HorizonLongTerm, rec.TimeHorizon)
}

func TestBuildReasoning(t *testing.T) {
	tech := &technical.Analysis{
		Trend:         technical.TrendStrongUptrend,
		RSISignal:     "Overbought",
		MACDCrossover: "Bullish",
		GoldenCross:   true,
	}
	fund := &fundamentals.Analysis{
		Valuation: []fundamentals.MetricAssessment{
			{Metric: "Pe Ratio", Label: "Undervalued"},
		},
		FinancialHealth: []fundamentals.MetricAssessment{
			{Metric: "Eps", Label: "Positive Earnings"},
		},
		Dividend: []fundamentals.MetricAssessment{
			{Metric: "Dividend Yield", Label: "High Yield"},
		},
	}

	reasoning := buildReasoning(tech, fund)

	assert.Contains(t, reasoning, "Stock is in a Strong Uptrend trend.")
	assert.Contains(t, reasoning, "RSI indicates stock is Overbought.")
	assert.Contains(t, reasoning, "Recent Bullish MACD crossover detected.")
	assert.Contains(t, reasoning, "Golden Cross")
	assert.Contains(t, reasoning, "Pe Ratio: Undervalued.")
	assert.Contains(t, reasoning, "Eps: Positive Earnings.")
	// Dividend assessments are presentation-only, never reasoning text.
	assert.NotContains(t, reasoning, "High Yield")
}
