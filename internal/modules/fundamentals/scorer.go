// Package fundamentals scores a security's fundamental snapshot against its
// sector baseline. Each metric is an independent rule contributing -1, 0 or
// +1 (dividend yield may contribute 0.5); absent metrics are skipped and
// never coerced to zero.
package fundamentals

import (
	"math"

	"github.com/aristath/advisor/internal/domain"
)

// Component weights and the relative bands used against sector baselines.
const (
	weightValuation = 0.4
	weightHealth    = 0.4
	weightDividend  = 0.2

	bandLow  = 0.7 // below 70% of the baseline
	bandHigh = 1.3 // above 130% of the baseline

	// Fixed divisors: absent metrics still count toward the mean with a
	// zero contribution.
	valuationMetricCount = 4
	healthMetricCount    = 5
)

// Market cap size categories in dollars.
const (
	megaCapFloor  = 200_000_000_000
	largeCapFloor = 10_000_000_000
	midCapFloor   = 2_000_000_000
	smallCapFloor = 300_000_000
)

// Scorer derives a fundamental score from a snapshot and sector baselines.
type Scorer struct{}

// NewScorer creates a fundamental scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score evaluates the snapshot against its sector baseline. Every metric is
// optional; a snapshot with no metrics at all scores 0.0 / Neutral with an
// empty assessment list.
func (s *Scorer) Score(snap *domain.FundamentalSnapshot) *Analysis {
	baseline := BaselineForSector(snap.Sector)

	a := &Analysis{Sector: snap.Sector}

	var peScore, forwardPEScore, pegScore, pbScore float64
	var deScore, roeScore, pmScore, fcfScore, epsScore float64
	var divScore float64

	// Valuation metrics.
	if v := snap.PERatio; present(v) {
		label, score := bandLabel(*v, baseline.PERatio, "Undervalued", "Fair Valued", "Overvalued", false)
		peScore = score
		a.Valuation = append(a.Valuation, MetricAssessment{
			Metric: "Pe Ratio", Value: *v, SectorAvg: ref(baseline.PERatio), Label: label, Contribution: score,
		})
	}
	if v := snap.ForwardPE; present(v) {
		label := "Stable Earnings Expected"
		if present(snap.PERatio) {
			if *v < *snap.PERatio {
				label, forwardPEScore = "Earnings Growth Expected", 1
			} else if *v > *snap.PERatio {
				label, forwardPEScore = "Earnings Decline Expected", -1
			}
		}
		a.Valuation = append(a.Valuation, MetricAssessment{
			Metric: "Forward Pe", Value: *v, Label: label, Contribution: forwardPEScore,
		})
	}
	if v := snap.PEGRatio; present(v) {
		label := "Fair Valued (Growth)"
		switch {
		case *v < 1:
			label, pegScore = "Undervalued (Growth)", 1
		case *v > 2:
			label, pegScore = "Overvalued (Growth)", -1
		}
		a.Valuation = append(a.Valuation, MetricAssessment{
			Metric: "Peg Ratio", Value: *v, Label: label, Contribution: pegScore,
		})
	}
	if v := snap.PriceToBook; present(v) {
		label, score := bandLabel(*v, baseline.PriceToBook, "Trading Below Book Value", "Fair Book Value", "Premium to Book Value", false)
		pbScore = score
		a.Valuation = append(a.Valuation, MetricAssessment{
			Metric: "Price To Book", Value: *v, SectorAvg: ref(baseline.PriceToBook), Label: label, Contribution: pbScore,
		})
	}

	// Financial health metrics.
	if v := snap.DebtToEquity; v != nil {
		label, score := bandLabel(*v, baseline.DebtToEquity, "Low Debt", "Average Debt", "High Debt", false)
		deScore = score
		a.FinancialHealth = append(a.FinancialHealth, MetricAssessment{
			Metric: "Debt To Equity", Value: *v, SectorAvg: ref(baseline.DebtToEquity), Label: label, Contribution: deScore,
		})
	}
	if v := snap.ReturnOnEquity; v != nil {
		label, score := bandLabel(*v, baseline.ReturnOnEquity, "Weak ROE", "Average ROE", "Strong ROE", true)
		roeScore = score
		a.FinancialHealth = append(a.FinancialHealth, MetricAssessment{
			Metric: "Return On Equity", Value: *v, SectorAvg: ref(baseline.ReturnOnEquity), Label: label, Contribution: roeScore,
		})
	}
	if v := snap.ProfitMargin; v != nil {
		label, score := bandLabel(*v, baseline.ProfitMargin, "Low Margins", "Average Margins", "High Margins", true)
		pmScore = score
		a.FinancialHealth = append(a.FinancialHealth, MetricAssessment{
			Metric: "Profit Margin", Value: *v, SectorAvg: ref(baseline.ProfitMargin), Label: label, Contribution: pmScore,
		})
	}
	if v := snap.FreeCashFlow; v != nil {
		label := "Negative FCF"
		fcfScore = -1
		if *v > 0 {
			label, fcfScore = "Positive FCF", 1
		}
		a.FinancialHealth = append(a.FinancialHealth, MetricAssessment{
			Metric: "Free Cash Flow", Value: *v, Label: label, Contribution: fcfScore,
		})
	}
	if v := snap.Beta; v != nil {
		label := "High Volatility"
		switch {
		case *v < 0.8:
			label = "Low Volatility"
		case *v < 1.2:
			label = "Market-like Volatility"
		}
		a.FinancialHealth = append(a.FinancialHealth, MetricAssessment{
			Metric: "Beta", Value: *v, Label: label,
		})
	}
	if v := snap.EPS; v != nil {
		label := "Positive Earnings"
		epsScore = 1
		if *v <= 0 {
			label, epsScore = "Negative Earnings", -1
		}
		a.FinancialHealth = append(a.FinancialHealth, MetricAssessment{
			Metric: "Eps", Value: *v, Label: label, Contribution: epsScore,
		})
	}

	// Dividend. A low but non-zero yield intentionally scores the same as no
	// dividend at all, matching the historical policy.
	if v := snap.DividendYield; v != nil {
		avg := baseline.DividendYield
		label := "Average Yield"
		divScore = 0.5
		switch {
		case *v > avg*bandHigh:
			label, divScore = "High Yield", 1
		case *v > 0 && *v < avg*bandLow:
			label, divScore = "Low Yield", 0
		case *v == 0:
			label, divScore = "No Dividend", 0
		}
		a.Dividend = append(a.Dividend, MetricAssessment{
			Metric: "Dividend Yield", Value: *v, SectorAvg: ref(avg), Label: label, Contribution: divScore,
		})
	}

	// Descriptive facts only.
	if v := snap.MarketCap; v != nil {
		a.MarketCapCategory = marketCapCategory(*v)
	}

	valuation := (peScore + forwardPEScore + pegScore + pbScore) / valuationMetricCount * weightValuation
	health := (deScore + roeScore + pmScore + fcfScore + epsScore) / healthMetricCount * weightHealth
	dividend := divScore * weightDividend

	a.Score = clamp(round1((valuation+health+dividend)*10), -10, 10)
	a.Outlook = outlookLabel(a.Score)

	return a
}

// bandLabel compares a value against its baseline with the fixed ±30%
// relative bands. When higherIsBetter is false, being below the band is the
// favourable side (cheap valuation, low debt).
func bandLabel(value, baseline float64, lowLabel, midLabel, highLabel string, higherIsBetter bool) (string, float64) {
	switch {
	case value < baseline*bandLow:
		if higherIsBetter {
			return lowLabel, -1
		}
		return lowLabel, 1
	case value > baseline*bandHigh:
		if higherIsBetter {
			return highLabel, 1
		}
		return highLabel, -1
	default:
		return midLabel, 0
	}
}

func marketCapCategory(marketCap float64) string {
	switch {
	case marketCap > megaCapFloor:
		return "Mega Cap"
	case marketCap > largeCapFloor:
		return "Large Cap"
	case marketCap > midCapFloor:
		return "Mid Cap"
	case marketCap > smallCapFloor:
		return "Small Cap"
	default:
		return "Micro Cap"
	}
}

func outlookLabel(score float64) string {
	switch {
	case score >= 7:
		return "Strong Buy"
	case score >= 3:
		return "Buy"
	case score >= -3:
		return "Neutral"
	case score >= -7:
		return "Sell"
	default:
		return "Strong Sell"
	}
}

// present reports whether an optional ratio metric carries a usable value.
// A reported zero ratio is treated as absent, matching the data provider's
// convention of zero-filling unknown ratios.
func present(v *float64) bool {
	return v != nil && *v != 0
}

func ref(v float64) *float64 {
	return &v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
