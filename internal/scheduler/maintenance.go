package scheduler

import (
	"github.com/rs/zerolog"
)

// Checkpointer forces a WAL checkpoint. Satisfied by database.DB.
type Checkpointer interface {
	WALCheckpoint(mode string) error
}

// WALCheckpointJob truncates the WAL file periodically so the
// recommendations database does not grow unbounded between restarts.
type WALCheckpointJob struct {
	db  Checkpointer
	log zerolog.Logger
}

// NewWALCheckpointJob creates a WAL checkpoint job.
func NewWALCheckpointJob(db Checkpointer, log zerolog.Logger) *WALCheckpointJob {
	return &WALCheckpointJob{
		db:  db,
		log: log.With().Str("job", "wal_checkpoint").Logger(),
	}
}

// Name returns the job name
func (j *WALCheckpointJob) Name() string {
	return "wal_checkpoint"
}

// Run performs the checkpoint
func (j *WALCheckpointJob) Run() error {
	return j.db.WALCheckpoint("TRUNCATE")
}

// UniverseRefresher reloads the stock universe. Satisfied by universe.Cache.
type UniverseRefresher interface {
	Refresh() error
}

// RefreshUniverseJob reloads the reference stock list ahead of TTL expiry
// so interactive searches never pay the reload cost.
type RefreshUniverseJob struct {
	cache UniverseRefresher
	log   zerolog.Logger
}

// NewRefreshUniverseJob creates a universe refresh job.
func NewRefreshUniverseJob(cache UniverseRefresher, log zerolog.Logger) *RefreshUniverseJob {
	return &RefreshUniverseJob{
		cache: cache,
		log:   log.With().Str("job", "refresh_universe").Logger(),
	}
}

// Name returns the job name
func (j *RefreshUniverseJob) Name() string {
	return "refresh_universe"
}

// Run reloads the stock list
func (j *RefreshUniverseJob) Run() error {
	return j.cache.Refresh()
}
