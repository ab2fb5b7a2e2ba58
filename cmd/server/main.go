package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/braingym/internal/api"
	"github.com/vytor/braingym/internal/clock"
	"github.com/vytor/braingym/internal/config"
	"github.com/vytor/braingym/internal/db"
	"github.com/vytor/braingym/internal/generator"
	"github.com/vytor/braingym/internal/logger"
	"github.com/vytor/braingym/internal/repository"
	"github.com/vytor/braingym/internal/repository/memory"
	"github.com/vytor/braingym/internal/repository/sqlite"
	"github.com/vytor/braingym/internal/services"
	"github.com/vytor/braingym/internal/session"
	"github.com/vytor/braingym/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Brain Gym Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	seed := cfg.Seed()
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("score_store=%s", cfg.ScoreStore)
	log.Debug("random_seed=%d", seed)
	log.Debug("history_queue_size=%d", cfg.HistoryQueueSize)

	var (
		kv      repository.KeyValueRepository
		results repository.ResultRepository
		store   api.ReadinessChecker
	)
	switch cfg.ScoreStore {
	case config.StoreMemory:
		log.Warn("scores are kept in memory and will be lost on exit")
		kv = memory.NewKeyValueRepository()
		results = memory.NewResultRepository()
	default:
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			log.Error("failed to open database: %v", err)
			os.Exit(1)
		}
		defer func() {
			log.Debug("closing database connection")
			database.Close()
		}()
		kv = sqlite.NewKeyValueRepository(database.DB)
		results = sqlite.NewResultRepository(database.DB)
		store = database
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = logger.NewContext(ctx, log)

	// A single worker keeps history inserts in order.
	historyPool := worker.NewPool(1, cfg.HistoryQueueSize)
	historyPool.Start(ctx)

	scores := services.NewScoringService(kv, results, services.WithHistoryQueue(historyPool))
	best := scores.LoadBestScores(ctx)
	log.Info("best scores loaded: %v", best)

	controller, err := session.New(ctx, session.Options{
		Rand:      generator.NewSource(seed),
		Scheduler: clock.Real{},
		Scorer:    scores,
		Logger:    log,
	})
	if err != nil {
		log.Error("failed to create session controller: %v", err)
		os.Exit(1)
	}

	srv := &api.Server{
		Sessions: controller,
		Scores:   scores,
		Store:    store,
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer shutdownCancel()

	// Closing the controller ends open event streams so Shutdown can finish.
	log.Debug("stopping session controller")
	controller.Close()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("draining history queue")
	historyPool.Stop()

	log.Info("===========================================")
	log.Info("Brain Gym Server Stopped")
	log.Info("===========================================")
}
