package recommendation

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/advisor/internal/database"
	"github.com/aristath/advisor/internal/domain"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := database.New(database.Config{
		Path:    filepath.Join(t.TempDir(), "recommendations.db"),
		Profile: database.ProfileLedger,
		Name:    "recommendations",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := NewRepository(db.Conn(), zerolog.Nop())
	require.NoError(t, err)
	return repo
}

func TestRepository_SaveAndListRecent(t *testing.T) {
	repo := newTestRepository(t)

	base := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	for i, ticker := range []string{"TCS.NS", "INFY.NS", "RELIANCE.NS"} {
		rec := &Recommendation{
			Ticker:           ticker,
			Name:             ticker + " name",
			TechnicalScore:   5.5,
			FundamentalScore: 3.0,
			BehavioralScore:  6.0,
			CombinedScore:    4.6,
			Label:            LabelBuy,
			Reasoning:        "Uptrend confirmed.",
			Confidence:       0.7,
			CurrentPrice:     domain.Float(100 + float64(i)),
			TargetPrice:      domain.Float(110 + float64(i)),
			StopLoss:         domain.Float(95 + float64(i)),
			TimeHorizon:      domain.HorizonMediumTerm,
			GeneratedAt:      base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Save(rec))
	}

	stored, err := repo.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, stored, 3)

	// Newest first.
	assert.Equal(t, "RELIANCE.NS", stored[0].Ticker)
	assert.Equal(t, "INFY.NS", stored[1].Ticker)
	assert.Equal(t, "TCS.NS", stored[2].Ticker)

	first := stored[0]
	assert.NotEmpty(t, first.UUID)
	assert.Equal(t, LabelBuy, first.Label)
	assert.Equal(t, string(domain.HorizonMediumTerm), first.Horizon)
	assert.Equal(t, 4.6, first.CombinedScore)
	require.NotNil(t, first.CurrentPrice)
	assert.Equal(t, 102.0, *first.CurrentPrice)
	require.NotNil(t, first.TargetPrice)
	assert.Equal(t, 112.0, *first.TargetPrice)
}

func TestRepository_NilPricesStayNil(t *testing.T) {
	repo := newTestRepository(t)

	rec := NoRecommendation("NEW.NS", domain.HorizonShortTerm, "Insufficient data for analysis")
	require.NoError(t, repo.Save(rec))

	stored, err := repo.ListRecent(1)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	assert.Equal(t, LabelNoRecommendation, stored[0].Label)
	assert.Nil(t, stored[0].CurrentPrice)
	assert.Nil(t, stored[0].TargetPrice)
	assert.Nil(t, stored[0].StopLoss)
}

func TestRepository_ListRecentRespectsLimit(t *testing.T) {
	repo := newTestRepository(t)

	base := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec := NoRecommendation("TCS.NS", domain.HorizonLongTerm, "Unable to fetch stock data")
		rec.GeneratedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.Save(rec))
	}

	stored, err := repo.ListRecent(2)
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	// A non-positive limit falls back to the default page size.
	stored, err = repo.ListRecent(0)
	require.NoError(t, err)
	assert.Len(t, stored, 5)
}
