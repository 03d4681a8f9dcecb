package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tijeane/quran-learning/internal/api"
	"github.com/tijeane/quran-learning/internal/auth"
	"github.com/tijeane/quran-learning/internal/config"
	"github.com/tijeane/quran-learning/internal/db"
	"github.com/tijeane/quran-learning/internal/logger"
	"github.com/tijeane/quran-learning/internal/lookup"
	"github.com/tijeane/quran-learning/internal/progress"
	"github.com/tijeane/quran-learning/internal/quiz"
	"github.com/tijeane/quran-learning/internal/quran"
	"github.com/tijeane/quran-learning/internal/repository/sqlite"
	"github.com/tijeane/quran-learning/internal/scheduler"
	"github.com/tijeane/quran-learning/internal/speech"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Quran Learning Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("search_timeout=%s", cfg.SearchTimeout)
	log.Debug("ayah_timeout=%s", cfg.AyahTimeout)
	log.Debug("simulate_lookups=%t", cfg.SimulateLookups)
	log.Debug("stats_refresh_interval=%s", cfg.StatsRefreshInterval)
	log.Debug("speech_enabled=%t", cfg.SpeechEnabled)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	wordRepo := sqlite.NewWordRepository(database.DB)
	progressRepo := sqlite.NewProgressRepository(database.DB)
	statsRepo := sqlite.NewStatsRepository(database.DB)
	userRepo := sqlite.NewUserRepository(database.DB)

	quranClient := quran.New(quran.WithTimeouts(cfg.SearchTimeout, cfg.AyahTimeout))

	srv := &api.Server{
		Words:       wordRepo,
		Progress:    progressRepo,
		Stats:       statsRepo,
		Users:       userRepo,
		Resolver:    lookup.NewResolver(quranClient, cfg.SimulateLookups),
		Tracker:     progress.NewTracker(progressRepo),
		Quiz:        quiz.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano()))),
		Tokens:      auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		CORSOrigins: cfg.CORSOrigins,
	}

	if cfg.SpeechEnabled {
		synth, err := speech.NewGoogleSynthesizer(context.Background(), cfg.SpeechVoice, cfg.SpeechRate)
		if err != nil {
			log.Error("failed to initialize speech synthesis: %v", err)
			os.Exit(1)
		}
		defer synth.Close()
		srv.Synth = synth
		log.Info("speech synthesis enabled, voice=%s", cfg.SpeechVoice)
	}

	sched := scheduler.New(statsRepo)
	if err := sched.Start(cfg.StatsRefreshInterval); err != nil {
		log.Error("failed to start scheduler: %v", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping scheduler")
	sched.Stop()

	log.Info("===========================================")
	log.Info("Quran Learning Server Stopped")
	log.Info("===========================================")
}
