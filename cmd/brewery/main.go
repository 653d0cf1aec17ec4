package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tuanvumaihuynh/brewery/internal/bootstrap"
	"github.com/tuanvumaihuynh/brewery/internal/config"
	"github.com/tuanvumaihuynh/brewery/internal/http"
	"github.com/tuanvumaihuynh/brewery/internal/log"
	"github.com/tuanvumaihuynh/brewery/internal/service"
	"github.com/tuanvumaihuynh/brewery/internal/telemetry"
	"github.com/tuanvumaihuynh/brewery/pkg/cmdutil"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running brewery application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log      config.Log
		HTTP     config.HTTP
		Store    config.Store
		Mongo    config.Mongo
		Postgres config.Postgres
		Otel     config.Otel
		Auth     config.Auth
		Seed     config.Seed
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	st, err := openStores(ctx, logger, cfg.Store, cfg.Mongo, cfg.Postgres)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(ctx); err != nil {
			logger.ErrorContext(ctx, "error closing store", slog.Any("error", err))
		}
	}()
	logger.InfoContext(ctx, "store opened", slog.String("driver", cfg.Store.Driver.String()))

	customerService := service.NewCustomerService(st.customers)
	beerService := service.NewBeerService(st.beers)

	deps := http.Dependencies{
		CustomerSvc: customerService,
		BeerSvc:     beerService,
		Store:       st.health,
	}

	if cfg.Seed.Enabled {
		seeder := bootstrap.NewSeeder(logger, st.customers, st.beers)
		seeder.Start(ctx)
		deps.Readiness = seeder

		if cfg.Seed.Await {
			if err := seeder.Wait(ctx); err != nil {
				logger.ErrorContext(ctx, "seeding finished with errors", slog.Any("error", err))
			}
		}
	}

	interruptChan := cmdutil.InterruptChan()

	svc := http.New(cfg.HTTP, cfg.Auth, logger, deps)
	cleanup, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("error running http service: %w", err)
	}
	logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

	<-interruptChan

	logger.InfoContext(ctx, "http service is shutting down")
	if err := cleanup(ctx); err != nil {
		logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
	}
	logger.InfoContext(ctx, "http service is stopped")

	return nil
}
