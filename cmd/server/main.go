// Package main - Entry point for the iops-calculator API server
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	cataloghcl "iops-calculator/adapters/catalog/hcl"
	"iops-calculator/api"
	"iops-calculator/core/engine"
	"iops-calculator/internal/config"
	"iops-calculator/internal/logging"
	"iops-calculator/internal/metrics"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", config.DefaultPath(), "config file")
	addr := flag.String("addr", "", "server address (overrides server.addr)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		return err
	}
	defer logging.Sync()

	timeout, err := time.ParseDuration(cfg.Server.ShutdownTimeout)
	if err != nil {
		return fmt.Errorf("invalid server.shutdown_timeout %q: %w", cfg.Server.ShutdownTimeout, err)
	}

	eng := engine.NewDefault(engine.WithLogger(logging.Named("engine")))
	if cfg.Catalog.Path != "" {
		cat, err := cataloghcl.Load(cfg.Catalog.Path)
		if err != nil {
			return err
		}
		eng = engine.New(cat, engine.WithLogger(logging.Named("engine")))
	}

	server := api.NewServer(eng, version,
		api.WithLogger(logging.Named("api")),
		api.WithMetrics(metrics.New()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats := eng.Catalog().Stats()
	logging.Info("iops-calculator server starting",
		zap.String("version", version),
		zap.String("addr", cfg.Server.Addr),
		zap.Int("tiers", stats.Tiers),
		zap.Int("storage_classes", stats.StorageClasses),
		zap.Int("burst_tiers", stats.BurstEnabled))

	if err := server.ListenAndServe(ctx, cfg.Server.Addr, timeout); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}
