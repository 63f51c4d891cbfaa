package main

import (
	"context"
	"ctchen222/acme-store/internal/api/repository"
	"ctchen222/acme-store/internal/api/service"
	"ctchen222/acme-store/internal/config"
	"ctchen222/acme-store/internal/db"
	"ctchen222/acme-store/internal/events"
	"ctchen222/acme-store/internal/logger"
	"ctchen222/acme-store/internal/seed"
	"ctchen222/acme-store/internal/telemetry"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
)

// app holds the process-wide dependencies shared by every subcommand.
type app struct {
	cfg      config.Config
	db       *sqlx.DB
	rdb      *redis.Client
	services seed.Services

	closers []func(context.Context) error
}

// bootstrap loads the configuration and brings up telemetry, logging, storage and
// the service layer. On failure everything started so far is released.
func bootstrap(ctx context.Context) (a *app, err error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	a = &app{cfg: cfg}
	defer func() {
		if err != nil {
			a.Close(context.Background())
			a = nil
		}
	}()

	shutdown, err := telemetry.InitOtel(ctx, cfg.OTLPEndpoint)
	if err != nil {
		return a, fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	a.closers = append(a.closers, shutdown)

	logFile, err := logger.Init(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return a, fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.closers = append(a.closers, func(context.Context) error { return logFile.Close() })

	a.db, err = db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return a, err
	}
	a.closers = append(a.closers, func(context.Context) error { return a.db.Close() })

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RedisAddr != "" {
		a.rdb, err = db.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			return a, err
		}
		a.closers = append(a.closers, func(context.Context) error { return a.rdb.Close() })
		publisher = events.NewRedisPublisher(a.rdb)
	}

	a.services = seed.Services{
		Users:     service.NewUserService(repository.NewUserRepository(a.db), publisher),
		Products:  service.NewProductService(repository.NewProductRepository(a.db), publisher),
		Favorites: service.NewFavoriteService(repository.NewFavoriteRepository(a.db), publisher),
	}
	return a, nil
}

// prepareSchema rebuilds the tables when reset is set and otherwise only creates the
// missing ones.
func (a *app) prepareSchema(ctx context.Context, reset bool) error {
	if reset {
		return db.InitializeSchema(ctx, a.db)
	}
	return db.EnsureSchema(ctx, a.db)
}

// Close releases resources in reverse start order and reports every failure.
func (a *app) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil

	err := errors.Join(errs...)
	if err != nil {
		slog.Error("Error during shutdown", "error", err)
	}
	return err
}
