package recommendation

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/internal/modules/behavioral"
)

// testSeries builds a gently trending daily series long enough for full
// technical scoring.
func testSeries(n int) domain.PriceSeries {
	series := make(domain.PriceSeries, n)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range series {
		price := 100 + 0.1*float64(i) + 2*math.Sin(float64(i)/7)
		series[i] = domain.PriceBar{
			Date:   start.AddDate(0, 0, i),
			Open:   price * 0.999,
			High:   price * 1.01,
			Low:    price * 0.99,
			Close:  price,
			Volume: 1000 + float64(i%50)*10,
		}
	}
	return series
}

type stubPrices struct {
	series domain.PriceSeries
	err    error
}

func (s *stubPrices) DailyHistory(ctx context.Context, ticker string) (domain.PriceSeries, error) {
	return s.series, s.err
}

type stubFunds struct {
	snap *domain.FundamentalSnapshot
	err  error
}

func (s *stubFunds) Fundamentals(ctx context.Context, ticker string) (*domain.FundamentalSnapshot, error) {
	return s.snap, s.err
}

type stubSentiment struct {
	scores map[string]float64 // per-ticker behavioral score
	err    error
}

func (s *stubSentiment) Score(ticker string) (*behavioral.Analysis, error) {
	if s.err != nil {
		return nil, s.err
	}
	score := 5.0
	if v, ok := s.scores[ticker]; ok {
		score = v
	}
	return &behavioral.Analysis{Score: score, Signal: behavioral.SignalLabel(score)}, nil
}

type captureRecorder struct {
	saved []*Recommendation
	err   error
}

func (r *captureRecorder) Save(rec *Recommendation) error {
	r.saved = append(r.saved, rec)
	return r.err
}

func newTestService(prices PriceProvider, funds FundamentalsProvider, sentiment behavioral.Scorer, recorder Recorder) *Service {
	return NewService(Config{
		Prices:    prices,
		Funds:     funds,
		Sentiment: sentiment,
		Recorder:  recorder,
		Workers:   2,
		Log:       zerolog.Nop(),
	})
}

func TestAnalyze_InvalidRequest(t *testing.T) {
	svc := newTestService(&stubPrices{}, &stubFunds{}, &stubSentiment{}, nil)

	_, err := svc.Analyze(context.Background(), "", domain.HorizonMediumTerm)
	assert.Error(t, err)

	_, err = svc.Analyze(context.Background(), "TCS.NS", domain.Horizon("weekly"))
	assert.Error(t, err)
}

func TestAnalyze_HappyPath(t *testing.T) {
	series := testSeries(260)
	recorder := &captureRecorder{}
	svc := newTestService(
		&stubPrices{series: series},
		&stubFunds{snap: &domain.FundamentalSnapshot{
			Ticker: "TCS.NS",
			Name:   "Tata Consultancy Services",
			Sector: "Technology",
			EPS:    domain.Float(120),
		}},
		&stubSentiment{},
		recorder,
	)

	rec, err := svc.Analyze(context.Background(), "TCS.NS", domain.HorizonMediumTerm)
	require.NoError(t, err)

	assert.Equal(t, "TCS.NS", rec.Ticker)
	assert.Equal(t, "Tata Consultancy Services", rec.Name)
	assert.NotEqual(t, LabelNoRecommendation, rec.Label)
	require.NotNil(t, rec.CurrentPrice)
	assert.InDelta(t, series[len(series)-1].Close, *rec.CurrentPrice, 1e-9)
	assert.NotNil(t, rec.Technical)
	assert.NotNil(t, rec.Fundamental)
	assert.NotNil(t, rec.Behavioral)
	assert.NotEmpty(t, rec.Reasoning)

	require.Len(t, recorder.saved, 1)
	assert.Same(t, rec, recorder.saved[0])
}

func TestAnalyze_PriceFetchFailure(t *testing.T) {
	svc := newTestService(
		&stubPrices{err: &domain.FetchError{Ticker: "BAD.NS", Err: errors.New("boom")}},
		&stubFunds{},
		&stubSentiment{},
		nil,
	)

	rec, err := svc.Analyze(context.Background(), "BAD.NS", domain.HorizonMediumTerm)
	require.NoError(t, err)
	assert.Equal(t, LabelNoRecommendation, rec.Label)
	assert.Equal(t, "Unable to fetch stock data", rec.Reasoning)
	assert.Nil(t, rec.CurrentPrice)
}

func TestAnalyze_ShortHistory(t *testing.T) {
	svc := newTestService(
		&stubPrices{series: testSeries(50)},
		&stubFunds{},
		&stubSentiment{},
		nil,
	)

	rec, err := svc.Analyze(context.Background(), "NEW.NS", domain.HorizonMediumTerm)
	require.NoError(t, err)
	assert.Equal(t, LabelNoRecommendation, rec.Label)
	assert.Equal(t, "Insufficient data for analysis", rec.Reasoning)
}

func TestAnalyze_FundamentalsFailureDegradesGracefully(t *testing.T) {
	svc := newTestService(
		&stubPrices{series: testSeries(260)},
		&stubFunds{err: errors.New("provider down")},
		&stubSentiment{},
		nil,
	)

	rec, err := svc.Analyze(context.Background(), "TCS.NS", domain.HorizonMediumTerm)
	require.NoError(t, err)
	assert.NotEqual(t, LabelNoRecommendation, rec.Label)
	require.NotNil(t, rec.Fundamental)
	assert.Equal(t, "Unknown", rec.Fundamental.Sector)
	assert.Equal(t, 0.0, rec.FundamentalScore)
}

func TestAnalyze_SentimentFailure(t *testing.T) {
	svc := newTestService(
		&stubPrices{series: testSeries(260)},
		&stubFunds{snap: &domain.FundamentalSnapshot{Ticker: "TCS.NS", Sector: "Technology"}},
		&stubSentiment{err: errors.New("feed offline")},
		nil,
	)

	rec, err := svc.Analyze(context.Background(), "TCS.NS", domain.HorizonMediumTerm)
	require.NoError(t, err)
	assert.Equal(t, LabelNoRecommendation, rec.Label)
	assert.Equal(t, "Sentiment data unavailable", rec.Reasoning)
}

func TestAnalyze_RecorderFailureIsSwallowed(t *testing.T) {
	recorder := &captureRecorder{err: errors.New("disk full")}
	svc := newTestService(
		&stubPrices{series: testSeries(260)},
		&stubFunds{snap: &domain.FundamentalSnapshot{Ticker: "TCS.NS", Sector: "Technology"}},
		&stubSentiment{},
		recorder,
	)

	rec, err := svc.Analyze(context.Background(), "TCS.NS", domain.HorizonMediumTerm)
	require.NoError(t, err)
	assert.NotEqual(t, LabelNoRecommendation, rec.Label)
	assert.Len(t, recorder.saved, 1)
}

func TestAnalyze_CancelledContext(t *testing.T) {
	svc := newTestService(&stubPrices{series: testSeries(260)}, &stubFunds{}, &stubSentiment{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Analyze(ctx, "TCS.NS", domain.HorizonMediumTerm)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzePortfolio_SortedByCombinedScore(t *testing.T) {
	sentiment := &stubSentiment{scores: map[string]float64{
		"LOW.NS":  1.0,
		"MID.NS":  5.0,
		"HIGH.NS": 10.0,
	}}
	svc := newTestService(
		&stubPrices{series: testSeries(260)},
		&stubFunds{snap: &domain.FundamentalSnapshot{Sector: "Technology"}},
		sentiment,
		nil,
	)

	holdings := []domain.Holding{
		{Ticker: "LOW.NS"},
		{Ticker: ""}, // skipped
		{Ticker: "HIGH.NS"},
		{Ticker: "MID.NS"},
	}

	recs, err := svc.AnalyzePortfolio(context.Background(), holdings, domain.HorizonMediumTerm)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "HIGH.NS", recs[0].Ticker)
	assert.Equal(t, "MID.NS", recs[1].Ticker)
	assert.Equal(t, "LOW.NS", recs[2].Ticker)
	assert.GreaterOrEqual(t, recs[0].CombinedScore, recs[1].CombinedScore)
	assert.GreaterOrEqual(t, recs[1].CombinedScore, recs[2].CombinedScore)
}

func TestAnalyzePortfolio_InvalidHorizon(t *testing.T) {
	svc := newTestService(&stubPrices{}, &stubFunds{}, &stubSentiment{}, nil)

	_, err := svc.AnalyzePortfolio(context.Background(), []domain.Holding{{Ticker: "TCS.NS"}}, domain.Horizon(""))
	assert.Error(t, err)
}
