// Package bootstrap seeds example data into freshly started stores.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tuanvumaihuynh/brewery/internal/model"
	"github.com/tuanvumaihuynh/brewery/internal/repository"
)

// Seeder clears the customer and beer collections and loads the example
// records. The two collections are seeded concurrently and independently.
type Seeder struct {
	logger    *slog.Logger
	customers repository.Repository[model.Customer]
	beers     repository.Repository[model.Beer]
	now       func() time.Time

	once sync.Once
	done chan struct{}
	err  error
}

func NewSeeder(
	logger *slog.Logger,
	customers repository.Repository[model.Customer],
	beers repository.Repository[model.Beer],
) *Seeder {
	return &Seeder{
		logger:    logger.With(slog.String("service", "seeder")),
		customers: customers,
		beers:     beers,
		now:       time.Now,
		done:      make(chan struct{}),
	}
}

// Start runs the seeder in the background. Completion is signalled through
// Done and Wait.
func (s *Seeder) Start(ctx context.Context) {
	go func() {
		//nolint:errcheck // reported through Wait
		s.Run(ctx)
	}()
}

// Run seeds both collections and blocks until both are finished. The first
// completed Run marks the seeder done.
func (s *Seeder) Run(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error {
		return seedCollection(ctx, s.logger, model.BeerCollection, s.beers, beerFixtures(s.timestamp()))
	})
	g.Go(func() error {
		return seedCollection(ctx, s.logger, model.CustomerCollection, s.customers, customerFixtures(s.timestamp()))
	})

	err := g.Wait()
	s.once.Do(func() {
		s.err = err
		close(s.done)
	})
	return err
}

// Done is closed once seeding has finished, successfully or not.
func (s *Seeder) Done() <-chan struct{} {
	return s.done
}

// Ready reports whether seeding has finished.
func (s *Seeder) Ready() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Wait blocks until seeding has finished or ctx is done, and returns the
// seeding error, if any.
func (s *Seeder) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return s.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Seeder) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// seedCollection empties repo and, only if it is then empty, saves the
// fixtures. A failed insert is logged and does not stop the remaining ones.
func seedCollection[E repository.Entity[E]](
	ctx context.Context,
	logger *slog.Logger,
	collection string,
	repo repository.Repository[E],
	fixtures []E,
) error {
	logger = logger.With(slog.String("collection", collection))

	if err := repo.DeleteAll(ctx); err != nil {
		logger.ErrorContext(ctx, "error clearing collection", slog.Any("error", err))
		return fmt.Errorf("clear %s: %w", collection, err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "error counting collection", slog.Any("error", err))
		return fmt.Errorf("count %s: %w", collection, err)
	}

	if count != 0 {
		logger.InfoContext(ctx, "collection not empty, skipping seed", slog.Int64("count", count))
		return nil
	}

	var (
		errs     []error
		inserted int
	)
	for _, fixture := range fixtures {
		if _, err := repo.Save(ctx, fixture); err != nil {
			logger.WarnContext(ctx, "error seeding document", slog.Any("error", err))
			errs = append(errs, err)
			continue
		}
		inserted++
	}

	logger.InfoContext(ctx, "collection seeded", slog.Int("inserted", inserted))

	if len(errs) > 0 {
		return fmt.Errorf("seed %s: %w", collection, errors.Join(errs...))
	}
	return nil
}
