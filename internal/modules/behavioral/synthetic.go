package behavioral

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

var newsSources = []string{
	"Economic Times", "Business Standard", "Mint", "Financial Express",
	"Bloomberg", "Reuters", "CNBC", "MoneyControl",
}

var headlineTemplates = map[string][]string{
	"positive": {
		"%s reports stronger-than-expected quarterly results",
		"%s shares surge as analysts upgrade rating",
		"%s announces expansion plans in growing markets",
		"%s dividend increase indicates management confidence",
		"Analysts remain bullish on %s despite market volatility",
	},
	"neutral": {
		"%s quarterly results in line with expectations",
		"%s maintains market position despite competition",
		"Industry challenges may impact %s growth plans",
		"%s restructuring efforts ongoing, results mixed",
		"%s faces regulatory scrutiny but analysts remain cautious",
	},
	"negative": {
		"%s disappoints with lower-than-expected earnings",
		"%s shares drop as key executive announces departure",
		"Analysts downgrade %s amid industry headwinds",
		"%s faces increasing competition in core markets",
		"%s dividend cut signals financial pressure",
	},
}

// majorStockMarkers identify widely covered tickers, which get a denser
// synthetic news flow.
var majorStockMarkers = []string{".NS", "RELIANCE", "TCS", "INFY", "HDFC"}

// SyntheticScorer generates plausible sentiment data from a seeded random
// source. It stands in for a real news/sentiment feed during development and
// testing.
type SyntheticScorer struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewSyntheticScorer creates a synthetic scorer backed by the given random
// source. Pass a fixed-seed source for deterministic tests.
func NewSyntheticScorer(rng *rand.Rand) *SyntheticScorer {
	return &SyntheticScorer{rng: rng, now: time.Now}
}

// Score fabricates a behavioral analysis for the ticker.
func (s *SyntheticScorer) Score(ticker string) (*Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	newsSentiment := s.uniform(-1, 1)

	newsCount := 1 + s.rng.Intn(10)
	if isMajorStock(ticker) {
		newsCount = 5 + s.rng.Intn(21)
	}

	fearIndex := 20 + s.rng.Intn(61)
	insider := []string{"Neutral", "Buying", "Selling"}[s.rng.Intn(3)]
	socialSentiment := s.uniform(-1, 1)

	score := ComposeScore(newsSentiment, fearIndex, insider, socialSentiment)

	return &Analysis{
		Score:              score,
		Signal:             SignalLabel(score),
		NewsSentiment:      newsSentiment,
		NewsCount:          newsCount,
		Headlines:          s.headlines(ticker, newsCount),
		FearIndex:          fearIndex,
		InsiderActivity:    insider,
		RelativeVolatility: s.uniform(0.5, 2.0),
		SocialSentiment:    socialSentiment,
		SocialBuzz:         s.rng.Intn(101),
	}, nil
}

func (s *SyntheticScorer) headlines(ticker string, newsCount int) []Headline {
	name := ticker
	if idx := strings.IndexByte(ticker, '.'); idx > 0 {
		name = ticker[:idx]
	}

	count := newsCount
	if count > 5 {
		count = 5
	}

	sentiments := []string{"positive", "neutral", "negative"}
	out := make([]Headline, 0, count)
	for i := 0; i < count; i++ {
		sentiment := sentiments[s.rng.Intn(3)]
		templates := headlineTemplates[sentiment]
		template := templates[s.rng.Intn(len(templates))]
		daysAgo := s.rng.Intn(15)
		out = append(out, Headline{
			Headline:  strings.ReplaceAll(template, "%s", name),
			Source:    newsSources[s.rng.Intn(len(newsSources))],
			Date:      s.now().AddDate(0, 0, -daysAgo).Format("2006-01-02"),
			Sentiment: sentiment,
		})
	}
	return out
}

func (s *SyntheticScorer) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func isMajorStock(ticker string) bool {
	for _, marker := range majorStockMarkers {
		if strings.Contains(ticker, marker) {
			return true
		}
	}
	return false
}
