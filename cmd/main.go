package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adpilot/internal/adapter/gateway"
	httpadapter "adpilot/internal/adapter/http"
	"adpilot/internal/adapter/postgres"
	"adpilot/internal/adapter/usecase"
	"adpilot/internal/config"
	"adpilot/internal/core/port"
	"adpilot/internal/db"
	"adpilot/internal/scheduler"
)

// main is the entry point of the budget optimization engine. It loads
// configuration, optionally runs database migrations, wires the platform
// adapters, cache, optimizer and HTTP surface, then starts the scheduler
// and the HTTP server. On receiving a termination signal it gracefully
// shuts down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		}
	}

	repo := postgres.NewRunRepository(pool)

	gwCfg := gateway.Config{
		BaseURL:                 cfg.Gateway.BaseURL,
		AuthToken:               cfg.Gateway.AuthToken,
		Timeout:                 cfg.Gateway.Timeout,
		RetryCount:              cfg.Gateway.RetryCount,
		RetryBaseDelay:          cfg.Gateway.RetryBaseDelay,
		BreakerFailureThreshold: cfg.Gateway.BreakerFailureThreshold,
		BreakerCooldown:         cfg.Gateway.BreakerCooldown,
	}
	adapters := []port.PlatformAdapter{
		gateway.NewGoogleAdapter(gwCfg, logger),
		gateway.NewMetaAdapter(gwCfg, logger),
	}

	aggregator := usecase.NewAggregator(adapters, repo, cfg.Opt.FetchDeadline, cfg.Opt.WindowDays, logger)
	cache := usecase.NewCache(cfg.Opt.CacheTTL, cfg.Opt.CacheGrace, aggregator.Aggregate, logger)
	planner := usecase.NewPlanner(usecase.PlannerConfig{
		MaxDeltaPerTick: cfg.Opt.MaxDeltaPerTick,
		RankSpread:      cfg.Opt.RankSpread,
		MaxGrowthFactor: cfg.Opt.MaxGrowthFactor,
	})
	gate := usecase.NewGate(usecase.GateConfig{
		ApplyThreshold:  cfg.Opt.ApplyThreshold,
		CeilingRatio:    cfg.Opt.OverspendCeilingRatio,
		CeilingOverride: cfg.Opt.CeilingOverride,
	})
	executor := usecase.NewExecutor(adapters, repo, logger)
	alerter := usecase.NewSlogAlerter(logger)
	optimizer := usecase.NewOptimizer(cache, aggregator, planner, gate, executor, repo, alerter, usecase.Params{
		TickInterval:   cfg.Opt.TickInterval,
		TrailingDays:   cfg.Opt.TrailingWindowDays,
		OverspendRatio: cfg.Opt.OverspendCeilingRatio,
	}, logger)

	if cfg.Opt.SchedulerEnabled {
		go scheduler.New(optimizer, cfg.Opt.TickInterval, logger).Run(ctx)
	}

	handler := httpadapter.NewHandler(optimizer, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
