package recommendation

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Repository stores generated recommendations in sqlite for audit and
// history views. Writes never block analysis: the service treats failures
// as log-and-continue.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// StoredRecommendation is the persisted form of a recommendation.
type StoredRecommendation struct {
	UUID             string         `json:"uuid"`
	Ticker           string         `json:"ticker"`
	Name             string         `json:"name,omitempty"`
	Horizon          string         `json:"time_horizon"`
	Label            string         `json:"recommendation"`
	Confidence       float64        `json:"confidence"`
	TechnicalScore   float64        `json:"technical_score"`
	FundamentalScore float64        `json:"fundamental_score"`
	BehavioralScore  float64        `json:"behavioral_score"`
	CombinedScore    float64        `json:"combined_score"`
	CurrentPrice     *float64       `json:"current_price,omitempty"`
	TargetPrice      *float64       `json:"target_price,omitempty"`
	StopLoss         *float64       `json:"stop_loss,omitempty"`
	Reasoning        string         `json:"reasoning"`
	CreatedAt        time.Time      `json:"created_at"`
}

// NewRepository creates a recommendation repository and ensures its schema.
func NewRepository(db *sql.DB, log zerolog.Logger) (*Repository, error) {
	r := &Repository{
		db:  db,
		log: log.With().Str("repository", "recommendation").Logger(),
	}
	if err := r.ensureSchema(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repository) ensureSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS recommendations (
			uuid              TEXT PRIMARY KEY,
			ticker            TEXT NOT NULL,
			name              TEXT,
			time_horizon      TEXT NOT NULL,
			recommendation    TEXT NOT NULL,
			confidence        REAL NOT NULL,
			technical_score   REAL NOT NULL,
			fundamental_score REAL NOT NULL,
			behavioral_score  REAL NOT NULL,
			combined_score    REAL NOT NULL,
			current_price     REAL,
			target_price      REAL,
			stop_loss         REAL,
			reasoning         TEXT,
			created_at        TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_recommendations_ticker
			ON recommendations(ticker, created_at DESC);
	`)
	if err != nil {
		return fmt.Errorf("failed to create recommendations schema: %w", err)
	}
	return nil
}

// Save persists one recommendation.
func (r *Repository) Save(rec *Recommendation) error {
	_, err := r.db.Exec(`
		INSERT INTO recommendations
		(uuid, ticker, name, time_horizon, recommendation, confidence,
		 technical_score, fundamental_score, behavioral_score, combined_score,
		 current_price, target_price, stop_loss, reasoning, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		uuid.New().String(),
		rec.Ticker,
		rec.Name,
		string(rec.TimeHorizon),
		rec.Label,
		rec.Confidence,
		rec.TechnicalScore,
		rec.FundamentalScore,
		rec.BehavioralScore,
		rec.CombinedScore,
		nullableFloat(rec.CurrentPrice),
		nullableFloat(rec.TargetPrice),
		nullableFloat(rec.StopLoss),
		rec.Reasoning,
		rec.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert recommendation for %s: %w", rec.Ticker, err)
	}
	return nil
}

// ListRecent returns the most recently generated recommendations, newest
// first.
func (r *Repository) ListRecent(limit int) ([]StoredRecommendation, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(`
		SELECT uuid, ticker, name, time_horizon, recommendation, confidence,
		       technical_score, fundamental_score, behavioral_score, combined_score,
		       current_price, target_price, stop_loss, reasoning, created_at
		FROM recommendations
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recommendations: %w", err)
	}
	defer rows.Close()

	var out []StoredRecommendation
	for rows.Next() {
		var rec StoredRecommendation
		var name sql.NullString
		var currentPrice, targetPrice, stopLoss sql.NullFloat64
		if err := rows.Scan(
			&rec.UUID, &rec.Ticker, &name, &rec.Horizon, &rec.Label, &rec.Confidence,
			&rec.TechnicalScore, &rec.FundamentalScore, &rec.BehavioralScore, &rec.CombinedScore,
			&currentPrice, &targetPrice, &stopLoss, &rec.Reasoning, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		rec.Name = name.String
		rec.CurrentPrice = floatPtr(currentPrice)
		rec.TargetPrice = floatPtr(targetPrice)
		rec.StopLoss = floatPtr(stopLoss)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
