// Package main is the entry point for the lockpulse analytics server.
//
//	@title			LockPulse Analytics API
//	@version		1.0
//	@description	Gamified analytics over an append-only access-control entry log.
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						X-API-Key
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kvanta/lockpulse/internal/analytics"
	"github.com/kvanta/lockpulse/internal/config"
	"github.com/kvanta/lockpulse/internal/database"
	"github.com/kvanta/lockpulse/internal/database/postgres"
	"github.com/kvanta/lockpulse/internal/ratelimit"
	"github.com/kvanta/lockpulse/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	slog.Info("Starting lockpulse",
		"environment", cfg.Environment,
		"version", cfg.Version,
		"timezone", cfg.Timezone,
		"port", cfg.Port)

	pool, err := database.NewPool(
		context.Background(),
		cfg.GetDBConnString(),
		database.DefaultMaxConnections,
		database.DefaultMaxConnIdleTime,
		database.DefaultMaxConnLifetime,
	)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	catalog, err := analytics.LoadSeasonCatalog(cfg.SeasonsFile)
	if err != nil {
		slog.Error("Failed to load season catalog", "error", err, "path", cfg.SeasonsFile)
		os.Exit(1)
	}

	entryRepo := postgres.NewEntryRepository(pool, cfg.Timezone)

	analyticsService := analytics.NewService(entryRepo, catalog, analytics.Options{
		Location:         cfg.Location(),
		PrimaryLockID:    cfg.PrimaryLockID,
		EarlyHour:        cfg.EarlyHour,
		LateHour:         cfg.LateHour,
		LeaderboardLimit: cfg.LeaderboardLimit,
	})

	limiter := ratelimit.NewTokenBucket(cfg.RateLimitPerMinute, cfg.RateLimitBurst)

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, pool, analyticsService, limiter)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server stopped")
}
