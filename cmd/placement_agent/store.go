package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/history"
	"github.com/jonathan/placement-prep/internal/observability"
)

// loadConfig resolves the effective configuration: JSON file (when --config is
// given), environment overlay, defaults for the rest.
func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	merged := cfg.MergeWithDefaults(config.Default())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// openStore connects the configured storage backend and wraps it in a Store.
// The returned cleanup closes the backend connection.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*history.Store, func(), error) {
	if cfg.DatabaseURL != "" {
		kv, err := history.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		return history.NewStore(kv, log), kv.Close, nil
	}

	kv := history.NewRedisKV(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := kv.Ping(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}
	return history.NewStore(kv, log), func() { _ = kv.Close() }, nil
}

// setup is the shared bootstrap for subcommands: config, logger, store.
func setup(ctx context.Context) (*config.Config, *zap.Logger, *history.Store, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	log := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	store, cleanup, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return cfg, log, store, cleanup, nil
}
