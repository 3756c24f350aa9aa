// Package behavioral produces the market-sentiment component of an analysis.
// The Scorer interface is deliberately narrow (ticker in, score and facts
// out) so the synthetic estimator can be replaced by a real news/sentiment
// feed without touching the recommendation combiner.
package behavioral

// Headline is one news item backing the sentiment assessment.
type Headline struct {
	Headline  string `json:"headline"`
	Source    string `json:"source"`
	Date      string `json:"date"`
	Sentiment string `json:"sentiment"` // positive, neutral, negative
}

// Analysis holds the behavioral assessment of a security.
type Analysis struct {
	Score              float64    `json:"behavioral_score"` // 1..10
	Signal             string     `json:"sentiment_signal"`
	NewsSentiment      float64    `json:"news_sentiment"` // -1..1
	NewsCount          int        `json:"news_count"`
	Headlines          []Headline `json:"headlines,omitempty"`
	FearIndex          int        `json:"market_fear_index"` // 0..100, lower is more fearful
	InsiderActivity    string     `json:"insider_trading"`   // Buying, Selling, Neutral
	RelativeVolatility float64    `json:"relative_volatility"`
	SocialSentiment    float64    `json:"social_sentiment"` // -1..1
	SocialBuzz         int        `json:"social_buzz"`      // 0..100
}

// Scorer produces a behavioral analysis for a ticker.
type Scorer interface {
	Score(ticker string) (*Analysis, error)
}

// Component weights for the behavioral score. The base is neutral at 5.0 on
// a 1..10 scale.
const (
	baseScore       = 5.0
	newsWeight      = 2.0
	fearWeight      = 1.5
	insiderWeight   = 1.0
	socialWeight    = 0.5
	fearIndexPivot  = 50.0
	minScore        = 1.0
	maxScore        = 10.0
)

// ComposeScore combines the raw sentiment inputs into the bounded behavioral
// score. Exposed so any Scorer implementation shares the same arithmetic.
func ComposeScore(newsSentiment float64, fearIndex int, insider string, socialSentiment float64) float64 {
	insiderContribution := 0.0
	switch insider {
	case "Buying":
		insiderContribution = 1.0
	case "Selling":
		insiderContribution = -1.0
	}

	score := baseScore +
		newsSentiment*newsWeight +
		(float64(fearIndex)-fearIndexPivot)/fearIndexPivot*fearWeight +
		insiderContribution*insiderWeight +
		socialSentiment*socialWeight

	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

// SignalLabel maps a behavioral score to its sentiment label.
func SignalLabel(score float64) string {
	switch {
	case score >= 7.5:
		return "Very Bullish"
	case score >= 6.0:
		return "Bullish"
	case score >= 4.0:
		return "Neutral"
	case score >= 2.5:
		return "Bearish"
	default:
		return "Very Bearish"
	}
}
