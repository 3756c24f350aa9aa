// Package main is the entry point for the stock advisor service.
// The service computes technical, fundamental and behavioral scores for a
// ticker, combines them into a horizon-weighted recommendation with price
// targets and position sizing, and exposes the pipeline over HTTP.
package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/aristath/advisor/internal/clients/yahoo"
	"github.com/aristath/advisor/internal/config"
	"github.com/aristath/advisor/internal/database"
	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/internal/modules/behavioral"
	"github.com/aristath/advisor/internal/modules/recommendation"
	recommendationhandlers "github.com/aristath/advisor/internal/modules/recommendation/handlers"
	"github.com/aristath/advisor/internal/modules/universe"
	universehandlers "github.com/aristath/advisor/internal/modules/universe/handlers"
	"github.com/aristath/advisor/internal/scheduler"
	"github.com/aristath/advisor/internal/server"
	"github.com/aristath/advisor/pkg/logger"
)

func main() {
	// Load configuration first to get log level
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().
		Int("port", cfg.Port).
		Str("data_dir", cfg.DataDir).
		Bool("dev_mode", cfg.DevMode).
		Msg("Starting advisor")

	// Recommendations database (append-only audit trail)
	db, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "recommendations.db"),
		Profile: database.ProfileLedger,
		Name:    "recommendations",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open recommendations database")
	}
	defer db.Close()

	repo, err := recommendation.NewRepository(db.Conn(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize recommendation repository")
	}

	// Market data client serves both prices and fundamentals
	marketData := yahoo.NewClient(log)

	// Sentiment is synthesized until a real news provider is wired in
	sentiment := behavioral.NewSyntheticScorer(rand.New(rand.NewSource(time.Now().UnixNano())))

	svc := recommendation.NewService(recommendation.Config{
		Prices:    marketData,
		Funds:     marketData,
		Sentiment: sentiment,
		Recorder:  repo,
		Workers:   cfg.AnalysisWorkers,
		Log:       log,
	})

	// Stock universe with TTL cache
	universeCache := universe.NewCache(nil, cfg.UniverseCacheTTL, nil)
	universeService := universe.NewService(universeCache)

	// Background jobs
	sched := scheduler.New(log)
	if cfg.RefreshSchedule != "" && len(cfg.Watchlist) > 0 {
		job := scheduler.NewRefreshWatchlistJob(svc, cfg.Watchlist, domain.HorizonMediumTerm, log)
		if err := sched.AddJob(cfg.RefreshSchedule, job); err != nil {
			log.Fatal().Err(err).Msg("Failed to register watchlist refresh job")
		}
	}
	if err := sched.AddJob("0 0 3 * * *", scheduler.NewWALCheckpointJob(db, log)); err != nil {
		log.Fatal().Err(err).Msg("Failed to register WAL checkpoint job")
	}
	if err := sched.AddJob("@every 12h", scheduler.NewRefreshUniverseJob(universeCache, log)); err != nil {
		log.Fatal().Err(err).Msg("Failed to register universe refresh job")
	}
	sched.Start()

	// HTTP server
	srv := server.New(server.Config{
		Log:                    log,
		Port:                   cfg.Port,
		DevMode:                cfg.DevMode,
		DB:                     db,
		RecommendationHandlers: recommendationhandlers.NewHandler(svc, repo, log),
		UniverseHandlers:       universehandlers.NewHandler(universeService, universeCache, log),
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for shutdown signal or server failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error().Err(err).Msg("Server failed")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	// Graceful shutdown
	log.Info().Msg("Shutting down...")
	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Shutdown complete")
}
