package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tuanvumaihuynh/brewery/internal/config"
	"github.com/tuanvumaihuynh/brewery/internal/log"
	"github.com/tuanvumaihuynh/brewery/internal/storage/db"
)

func main() {
	statusOnly := flag.Bool("status", false, "print the migration status instead of migrating")
	flag.Parse()

	if err := run(*statusOnly); err != nil {
		fmt.Printf("error running migrate application: %v\n", err)
		os.Exit(1)
	}
}

func run(statusOnly bool) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log      config.Log
		Postgres config.Postgres
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	if statusOnly {
		statuses, err := db.MigrationStatus(ctx, pgxPool)
		if err != nil {
			return fmt.Errorf("error reading migration status: %w", err)
		}
		for _, s := range statuses {
			logger.InfoContext(ctx, "migration",
				slog.Int64("version", s.Source.Version),
				slog.String("path", s.Source.Path),
				slog.String("state", string(s.State)),
			)
		}
		return nil
	}

	logger.InfoContext(ctx, "starting database migration", slog.String("database", cfg.Postgres.DB))

	if err := db.Migrate(ctx, pgxPool); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	logger.InfoContext(ctx, "database migration completed successfully")

	return nil
}
