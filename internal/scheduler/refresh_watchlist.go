package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/internal/modules/recommendation"
)

// PortfolioAnalyzer runs batch analysis for a set of holdings.
// Satisfied by recommendation.Service.
type PortfolioAnalyzer interface {
	AnalyzePortfolio(ctx context.Context, holdings []domain.Holding, horizon domain.Horizon) ([]*recommendation.Recommendation, error)
}

// RefreshWatchlistJob re-analyzes the configured watchlist so the stored
// recommendation history stays current without user interaction.
type RefreshWatchlistJob struct {
	analyzer PortfolioAnalyzer
	tickers  []string
	horizon  domain.Horizon
	timeout  time.Duration
	log      zerolog.Logger
}

// NewRefreshWatchlistJob creates a watchlist refresh job.
func NewRefreshWatchlistJob(analyzer PortfolioAnalyzer, tickers []string, horizon domain.Horizon, log zerolog.Logger) *RefreshWatchlistJob {
	if !horizon.Valid() {
		horizon = domain.HorizonMediumTerm
	}
	return &RefreshWatchlistJob{
		analyzer: analyzer,
		tickers:  tickers,
		horizon:  horizon,
		timeout:  10 * time.Minute,
		log:      log.With().Str("job", "refresh_watchlist").Logger(),
	}
}

// Name returns the job name
func (j *RefreshWatchlistJob) Name() string {
	return "refresh_watchlist"
}

// Run analyzes every watchlist ticker. Individual failures are handled
// inside the batch; only a wholesale failure is returned.
func (j *RefreshWatchlistJob) Run() error {
	if len(j.tickers) == 0 {
		j.log.Debug().Msg("Watchlist empty, nothing to refresh")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	holdings := make([]domain.Holding, 0, len(j.tickers))
	for _, ticker := range j.tickers {
		holdings = append(holdings, domain.Holding{Ticker: ticker})
	}

	recs, err := j.analyzer.AnalyzePortfolio(ctx, holdings, j.horizon)
	if err != nil {
		return err
	}

	j.log.Info().
		Int("requested", len(holdings)).
		Int("analyzed", len(recs)).
		Msg("Watchlist refreshed")
	return nil
}
