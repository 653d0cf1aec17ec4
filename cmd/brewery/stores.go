package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tuanvumaihuynh/brewery/internal/config"
	"github.com/tuanvumaihuynh/brewery/internal/model"
	"github.com/tuanvumaihuynh/brewery/internal/repository"
	"github.com/tuanvumaihuynh/brewery/internal/storage"
	"github.com/tuanvumaihuynh/brewery/internal/storage/db"
	"github.com/tuanvumaihuynh/brewery/internal/storage/mongodb"
)

type stores struct {
	customers repository.Repository[model.Customer]
	beers     repository.Repository[model.Beer]
	health    storage.HealthChecker
	close     func(ctx context.Context) error
}

func openStores(
	ctx context.Context,
	logger *slog.Logger,
	storeCfg config.Store,
	mongoCfg config.Mongo,
	pgCfg config.Postgres,
) (*stores, error) {
	switch storeCfg.Driver {
	case config.StoreDriverMongo:
		client, err := mongodb.NewClient(ctx, mongoCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating mongo client: %w", err)
		}

		return &stores{
			customers: repository.NewMongoRepository[model.Customer](client.DB(), model.CustomerCollection),
			beers:     repository.NewMongoRepository[model.Beer](client.DB(), model.BeerCollection),
			health:    client,
			close:     client.Close,
		}, nil

	case config.StoreDriverPostgres:
		pgxPool, err := db.NewPgxPool(ctx, pgCfg)
		if err != nil {
			return nil, fmt.Errorf("error creating pgx pool: %w", err)
		}

		dbClient := db.NewClient(pgxPool)

		if pgCfg.AutoMigrate {
			if err := db.Migrate(ctx, pgxPool); err != nil {
				//nolint:errcheck
				dbClient.Close(ctx)
				return nil, fmt.Errorf("error migrating database: %w", err)
			}
		}

		return &stores{
			customers: repository.NewPostgresRepository[model.Customer](dbClient, model.CustomerCollection),
			beers:     repository.NewPostgresRepository[model.Beer](dbClient, model.BeerCollection),
			health:    dbClient,
			close:     dbClient.Close,
		}, nil

	case config.StoreDriverMemory:
		return &stores{
			customers: repository.NewMemoryRepository[model.Customer](),
			beers:     repository.NewMemoryRepository[model.Beer](),
			health:    storage.AlwaysHealthy,
			close:     func(context.Context) error { return nil },
		}, nil
	}

	return nil, fmt.Errorf("unsupported store driver: %s", storeCfg.Driver)
}
