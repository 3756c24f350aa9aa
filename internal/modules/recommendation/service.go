package recommendation

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/internal/modules/behavioral"
	"github.com/aristath/advisor/internal/modules/fundamentals"
	"github.com/aristath/advisor/internal/modules/indicators"
	"github.com/aristath/advisor/internal/modules/technical"
)

// PriceProvider supplies the daily OHLCV history for a ticker. The series is
// ordered oldest first.
type PriceProvider interface {
	DailyHistory(ctx context.Context, ticker string) (domain.PriceSeries, error)
}

// FundamentalsProvider supplies the fundamental snapshot for a ticker.
type FundamentalsProvider interface {
	Fundamentals(ctx context.Context, ticker string) (*domain.FundamentalSnapshot, error)
}

// Recorder persists generated recommendations for audit. Saves are
// best-effort: a failure is logged by the service and never surfaced.
type Recorder interface {
	Save(rec *Recommendation) error
}

// Service runs the full analysis pipeline for single tickers and portfolios.
// It is stateless between invocations; every run takes explicit inputs and
// returns a new Recommendation.
type Service struct {
	prices    PriceProvider
	funds     FundamentalsProvider
	sentiment behavioral.Scorer
	recorder  Recorder // optional
	techScorer *technical.Scorer
	fundScorer *fundamentals.Scorer
	workers   int
	log       zerolog.Logger
}

// Config holds service dependencies.
type Config struct {
	Prices    PriceProvider
	Funds     FundamentalsProvider
	Sentiment behavioral.Scorer
	Recorder  Recorder // nil disables audit persistence
	Workers   int      // parallel tickers in portfolio analysis
	Log       zerolog.Logger
}

// NewService creates an analysis service.
func NewService(cfg Config) *Service {
	workers := cfg.Workers
	if workers < 1 {
		workers = 4
	}
	return &Service{
		prices:     cfg.Prices,
		funds:      cfg.Funds,
		sentiment:  cfg.Sentiment,
		recorder:   cfg.Recorder,
		techScorer: technical.NewScorer(),
		fundScorer: fundamentals.NewScorer(),
		workers:    workers,
		log:        cfg.Log.With().Str("service", "recommendation").Logger(),
	}
}

// Analyze runs the complete pipeline for one ticker and horizon. Upstream
// failures (fetch errors, short history, bad raw data) degrade to an
// explicit "No Recommendation" result with a human-readable reason; an error
// return means the request itself was invalid or cancelled.
func (s *Service) Analyze(ctx context.Context, ticker string, horizon domain.Horizon) (*Recommendation, error) {
	if ticker == "" {
		return nil, fmt.Errorf("ticker is required")
	}
	if !horizon.Valid() {
		return nil, fmt.Errorf("unknown time horizon %q", horizon)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	series, err := s.prices.DailyHistory(ctx, ticker)
	if err != nil {
		s.log.Warn().Err(err).Str("ticker", ticker).Msg("Price fetch failed")
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return s.record(NoRecommendation(ticker, horizon, "Unable to fetch stock data")), nil
	}

	frame, err := indicators.Calculate(series)
	if err != nil {
		s.log.Warn().Err(err).Str("ticker", ticker).Msg("Indicator calculation failed")
		return s.record(NoRecommendation(ticker, horizon, "Insufficient data for analysis")), nil
	}

	techAnalysis, err := s.techScorer.Score(frame)
	if err != nil {
		s.log.Warn().Err(err).Str("ticker", ticker).Msg("Technical scoring failed")
		return s.record(NoRecommendation(ticker, horizon, "Insufficient data for analysis")), nil
	}

	snap, err := s.funds.Fundamentals(ctx, ticker)
	if err != nil {
		// Fundamental data is optional: score what we have, which yields a
		// neutral fundamental component.
		s.log.Warn().Err(err).Str("ticker", ticker).Msg("Fundamentals fetch failed, scoring without them")
		snap = &domain.FundamentalSnapshot{Ticker: ticker, Name: ticker, Sector: "Unknown"}
	}
	fundAnalysis := s.fundScorer.Score(snap)

	behavAnalysis, err := s.sentiment.Score(ticker)
	if err != nil {
		s.log.Warn().Err(err).Str("ticker", ticker).Msg("Behavioral scoring failed")
		return s.record(NoRecommendation(ticker, horizon, "Sentiment data unavailable")), nil
	}

	price := series[len(series)-1].Close
	rec := Combine(ticker, snap.Name, techAnalysis, fundAnalysis, behavAnalysis, &price, horizon)

	return s.record(rec), nil
}

// AnalyzePortfolio runs the pipeline for every holding in parallel, bounded
// by the configured worker count. A single ticker's failure is logged and
// skipped; it never aborts the batch. The result is sorted by combined score
// descending.
func (s *Service) AnalyzePortfolio(ctx context.Context, holdings []domain.Holding, horizon domain.Horizon) ([]*Recommendation, error) {
	if !horizon.Valid() {
		return nil, fmt.Errorf("unknown time horizon %q", horizon)
	}

	var (
		mu   sync.Mutex
		recs []*Recommendation
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, h := range holdings {
		holding := h
		if holding.Ticker == "" {
			continue
		}
		g.Go(func() error {
			rec, err := s.Analyze(ctx, holding.Ticker, horizon)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.log.Error().Err(err).Str("ticker", holding.Ticker).Msg("Skipping holding")
				return nil
			}
			if rec.Name == "" {
				rec.Name = holding.Name
			}
			mu.Lock()
			recs = append(recs, rec)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].CombinedScore > recs[j].CombinedScore
	})

	return recs, nil
}

// record persists the recommendation if a recorder is configured.
// Persistence failures are logged and swallowed: the computed result is
// always returned to the caller.
func (s *Service) record(rec *Recommendation) *Recommendation {
	if s.recorder == nil {
		return rec
	}
	if err := s.recorder.Save(rec); err != nil {
		s.log.Warn().Err(err).Str("ticker", rec.Ticker).Msg("Failed to persist recommendation")
	}
	return rec
}
