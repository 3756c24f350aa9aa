// Package recommendation combines the technical, fundamental and behavioral
// scores into an actionable recommendation with reasoning, price targets and
// position sizing, and runs the per-ticker analysis pipeline.
package recommendation

import (
	"fmt"
	"strings"
	"time"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/internal/modules/behavioral"
	"github.com/aristath/advisor/internal/modules/fundamentals"
	"github.com/aristath/advisor/internal/modules/technical"
)

// Weights is a convex combination of the three component scores; the fields
// sum to 1 for every horizon.
type Weights struct {
	Technical   float64
	Fundamental float64
	Behavioral  float64
}

// horizonWeights maps each time horizon to its component weights.
// Short horizons lean on technicals and sentiment, long horizons on
// fundamentals.
var horizonWeights = map[domain.Horizon]Weights{
	domain.HorizonShortTerm:  {Technical: 0.7, Fundamental: 0.1, Behavioral: 0.2},
	domain.HorizonMediumTerm: {Technical: 0.4, Fundamental: 0.4, Behavioral: 0.2},
	domain.HorizonLongTerm:   {Technical: 0.2, Fundamental: 0.7, Behavioral: 0.1},
}

// HorizonWeights returns the component weights for a horizon, defaulting to
// the medium-term balance for unknown values.
func HorizonWeights(h domain.Horizon) Weights {
	if w, ok := horizonWeights[h]; ok {
		return w
	}
	return horizonWeights[domain.HorizonMediumTerm]
}

// priceTargets holds the target/stop multipliers applied to the current
// price for each actionable label. Hold has no targets.
var priceTargets = map[string]struct{ target, stop float64 }{
	LabelStrongBuy: {1.15, 0.93},
	LabelBuy:       {1.10, 0.95},
	LabelReduce:    {0.90, 1.05},
	LabelSell:      {0.85, 1.07},
}

// Combine merges the three component analyses into a Recommendation for the
// given horizon. currentPrice may be nil, in which case no price targets are
// produced.
func Combine(
	ticker, name string,
	tech *technical.Analysis,
	fund *fundamentals.Analysis,
	behav *behavioral.Analysis,
	currentPrice *float64,
	horizon domain.Horizon,
) *Recommendation {
	w := HorizonWeights(horizon)
	combined := tech.Score*w.Technical + fund.Score*w.Fundamental + behav.Score*w.Behavioral

	label, confidence := labelForScore(combined)

	rec := &Recommendation{
		Ticker:           ticker,
		Name:             name,
		CurrentPrice:     currentPrice,
		TechnicalScore:   tech.Score,
		FundamentalScore: fund.Score,
		BehavioralScore:  behav.Score,
		CombinedScore:    combined,
		Label:            label,
		Confidence:       confidence,
		Reasoning:        buildReasoning(tech, fund),
		PositionSizing:   CalculatePositionSize(label, tech.VolatilitySignal),
		TimeHorizon:      horizon,
		GeneratedAt:      time.Now().UTC(),
		Technical:        tech,
		Fundamental:      fund,
		Behavioral:       behav,
	}

	if currentPrice != nil {
		if m, ok := priceTargets[label]; ok {
			target := *currentPrice * m.target
			stop := *currentPrice * m.stop
			rec.TargetPrice = &target
			rec.StopLoss = &stop
		}
	}

	return rec
}

// NoRecommendation builds the explicit error result used when upstream
// analysis failed. It never carries a synthesized score or price targets.
func NoRecommendation(ticker string, horizon domain.Horizon, reason string) *Recommendation {
	return &Recommendation{
		Ticker:      ticker,
		Label:       LabelNoRecommendation,
		Reasoning:   reason,
		Confidence:  0,
		TimeHorizon: horizon,
		GeneratedAt: time.Now().UTC(),
	}
}

// labelForScore maps a combined score to its label and confidence.
func labelForScore(combined float64) (string, float64) {
	switch {
	case combined >= 7:
		return LabelStrongBuy, 0.9
	case combined >= 3:
		return LabelBuy, 0.7
	case combined > -3:
		return LabelHold, 0.5
	case combined > -7:
		return LabelReduce, 0.7
	default:
		return LabelSell, 0.9
	}
}

// buildReasoning assembles the reasoning text deterministically: technical
// facts first (trend, RSI, MACD crossover, MA crosses), then each present
// fundamental metric's label in fixed order.
func buildReasoning(tech *technical.Analysis, fund *fundamentals.Analysis) string {
	var points []string

	points = append(points, fmt.Sprintf("Stock is in a %s trend.", tech.Trend))

	if tech.RSISignal != "Neutral" {
		points = append(points, fmt.Sprintf("RSI indicates stock is %s.", tech.RSISignal))
	}
	if tech.MACDCrossover != "" {
		points = append(points, fmt.Sprintf("Recent %s MACD crossover detected.", tech.MACDCrossover))
	}
	if tech.GoldenCross {
		points = append(points, "Recent Golden Cross (50-day MA crossing above 200-day MA) signals positive trend.")
	}
	if tech.DeathCross {
		points = append(points, "Recent Death Cross (50-day MA crossing below 200-day MA) signals negative trend.")
	}

	for _, m := range fund.Valuation {
		points = append(points, fmt.Sprintf("%s: %s.", m.Metric, m.Label))
	}
	for _, m := range fund.FinancialHealth {
		points = append(points, fmt.Sprintf("%s: %s.", m.Metric, m.Label))
	}

	return strings.Join(points, " ")
}
