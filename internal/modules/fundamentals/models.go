package fundamentals

// MetricAssessment is one metric's comparison against its sector baseline.
// SectorAvg is nil for metrics assessed on absolute thresholds (PEG, FCF,
// EPS, beta). Metrics absent from the snapshot are omitted entirely rather
// than shown as zero.
type MetricAssessment struct {
	Metric       string   `json:"metric"` // display name, e.g. "Pe Ratio"
	Value        float64  `json:"value"`
	SectorAvg    *float64 `json:"sector_avg,omitempty"`
	Label        string   `json:"label"`
	Contribution float64  `json:"-"`
}

// Analysis holds the fundamental assessment of a security. The assessment
// slices keep a fixed metric order so downstream reasoning text is
// reproducible.
type Analysis struct {
	Sector string `json:"sector"`

	Valuation       []MetricAssessment `json:"valuation"`
	FinancialHealth []MetricAssessment `json:"financial_health"`
	Dividend        []MetricAssessment `json:"dividend"`

	// Descriptive facts; never contribute to the score.
	MarketCapCategory string `json:"market_cap_category,omitempty"`

	Score   float64 `json:"fund_score"`
	Outlook string  `json:"overall_fundamental"`
}
