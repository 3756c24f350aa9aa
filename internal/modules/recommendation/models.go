package recommendation

import (
	"time"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/internal/modules/behavioral"
	"github.com/aristath/advisor/internal/modules/fundamentals"
	"github.com/aristath/advisor/internal/modules/technical"
)

// Recommendation labels.
const (
	LabelStrongBuy        = "Strong Buy"
	LabelBuy              = "Buy"
	LabelHold             = "Hold"
	LabelReduce           = "Reduce"
	LabelSell             = "Sell"
	LabelNoRecommendation = "No Recommendation"
)

// Risk profiles used for position sizing.
const (
	ProfileConservative = "Conservative"
	ProfileModerate     = "Moderate"
	ProfileAggressive   = "Aggressive"
)

// PositionSizing maps a risk profile to a suggested allocation, in percent
// of portfolio rounded to one decimal.
type PositionSizing map[string]float64

// Recommendation is the final, immutable output of an analysis run for one
// (ticker, horizon) pair. CurrentPrice, TargetPrice and StopLoss are nil when
// no price was available; they are never fabricated.
type Recommendation struct {
	Ticker           string         `json:"ticker"`
	Name             string         `json:"name,omitempty"`
	CurrentPrice     *float64       `json:"current_price,omitempty"`
	TechnicalScore   float64        `json:"technical_score"`
	FundamentalScore float64        `json:"fundamental_score"`
	BehavioralScore  float64        `json:"behavioral_score"`
	CombinedScore    float64        `json:"combined_score"`
	Label            string         `json:"recommendation"`
	Reasoning        string         `json:"reasoning"`
	Confidence       float64        `json:"confidence"`
	PositionSizing   PositionSizing `json:"position_sizing,omitempty"`
	TargetPrice      *float64       `json:"target_price,omitempty"`
	StopLoss         *float64       `json:"stop_loss,omitempty"`
	TimeHorizon      domain.Horizon `json:"time_horizon"`
	GeneratedAt      time.Time      `json:"generated_at"`

	// Component analyses, attached for detailed presentation.
	Technical   *technical.Analysis    `json:"technical_analysis,omitempty"`
	Fundamental *fundamentals.Analysis `json:"fundamental_analysis,omitempty"`
	Behavioral  *behavioral.Analysis   `json:"behavioral_analysis,omitempty"`
}
