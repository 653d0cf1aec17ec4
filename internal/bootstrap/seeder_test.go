package bootstrap_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/brewery/internal/bootstrap"
	"github.com/tuanvumaihuynh/brewery/internal/log"
	"github.com/tuanvumaihuynh/brewery/internal/model"
	"github.com/tuanvumaihuynh/brewery/internal/repository"
)

var errInsert = errors.New("insert failed")

// keepOnDeleteAll ignores DeleteAll, simulating documents that reappear
// between the clear and the count.
type keepOnDeleteAll[E repository.Entity[E]] struct {
	repository.Repository[E]
}

func (keepOnDeleteAll[E]) DeleteAll(context.Context) error { return nil }

// failingCustomerSave fails to save the named customer.
type failingCustomerSave struct {
	repository.Repository[model.Customer]
	name string
}

func (r failingCustomerSave) Save(ctx context.Context, c model.Customer) (model.Customer, error) {
	if c.CustomerName == r.name {
		return c, errInsert
	}
	return r.Repository.Save(ctx, c)
}

type failingDeleteAll[E repository.Entity[E]] struct {
	repository.Repository[E]
}

func (failingDeleteAll[E]) DeleteAll(context.Context) error { return errInsert }

func TestSeederRun(t *testing.T) {
	t.Run("Should seed empty stores", func(t *testing.T) {
		customers := repository.NewMemoryRepository[model.Customer]()
		beers := repository.NewMemoryRepository[model.Beer]()
		seeder := bootstrap.NewSeeder(log.Discard(), customers, beers)
		ctx := t.Context()

		assert.False(t, seeder.Ready())
		require.NoError(t, seeder.Run(ctx))
		assert.True(t, seeder.Ready())

		assertCount(t, customers, 3)
		assertCount(t, beers, 3)

		all, err := beers.FindAll(ctx)
		require.NoError(t, err)
		upcs := map[string]int{}
		for _, b := range all {
			upcs[b.Upc]++
			assert.False(t, b.CreatedDate.IsZero())
			assert.Equal(t, b.CreatedDate, b.LastModifiedDate)
		}
		assert.Equal(t, 2, upcs["12356"])
	})

	t.Run("Should replace existing data on every run", func(t *testing.T) {
		customers := repository.NewMemoryRepository[model.Customer]()
		beers := repository.NewMemoryRepository[model.Beer]()
		ctx := t.Context()

		_, err := customers.Save(ctx, model.Customer{CustomerName: "Leftover"})
		require.NoError(t, err)

		for range 2 {
			require.NoError(t, bootstrap.NewSeeder(log.Discard(), customers, beers).Run(ctx))
			assertCount(t, customers, 3)
			assertCount(t, beers, 3)
		}
	})

	t.Run("Should skip when store is not empty after clearing", func(t *testing.T) {
		customers := keepOnDeleteAll[model.Customer]{repository.NewMemoryRepository[model.Customer]()}
		beers := keepOnDeleteAll[model.Beer]{repository.NewMemoryRepository[model.Beer]()}
		ctx := t.Context()

		require.NoError(t, bootstrap.NewSeeder(log.Discard(), customers, beers).Run(ctx))
		require.NoError(t, bootstrap.NewSeeder(log.Discard(), customers, beers).Run(ctx))

		assertCount(t, customers, 3)
		assertCount(t, beers, 3)
	})

	t.Run("Should keep inserting after a failed insert", func(t *testing.T) {
		customers := failingCustomerSave{
			Repository: repository.NewMemoryRepository[model.Customer](),
			name:       "Average Customer",
		}
		beers := repository.NewMemoryRepository[model.Beer]()

		err := bootstrap.NewSeeder(log.Discard(), customers, beers).Run(t.Context())
		assert.ErrorIs(t, err, errInsert)

		assertCount(t, customers, 2)
		assertCount(t, beers, 3)
	})

	t.Run("Should seed one collection when the other fails", func(t *testing.T) {
		customers := failingDeleteAll[model.Customer]{repository.NewMemoryRepository[model.Customer]()}
		beers := repository.NewMemoryRepository[model.Beer]()
		seeder := bootstrap.NewSeeder(log.Discard(), customers, beers)

		err := seeder.Run(t.Context())
		assert.ErrorIs(t, err, errInsert)
		assert.ErrorIs(t, seeder.Wait(t.Context()), errInsert)

		assertCount(t, customers, 0)
		assertCount(t, beers, 3)
	})
}

func TestSeederStart(t *testing.T) {
	customers := repository.NewMemoryRepository[model.Customer]()
	beers := repository.NewMemoryRepository[model.Beer]()
	seeder := bootstrap.NewSeeder(log.Discard(), customers, beers)

	seeder.Start(t.Context())

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()
	require.NoError(t, seeder.Wait(ctx))

	select {
	case <-seeder.Done():
	default:
		t.Fatal("done channel should be closed")
	}
	assertCount(t, customers, 3)
}

func TestSeederWaitCanceled(t *testing.T) {
	seeder := bootstrap.NewSeeder(log.Discard(),
		repository.NewMemoryRepository[model.Customer](),
		repository.NewMemoryRepository[model.Beer]())

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	assert.ErrorIs(t, seeder.Wait(ctx), context.Canceled)
}

type counter interface {
	Count(ctx context.Context) (int64, error)
}

func assertCount(t *testing.T, repo counter, want int64) {
	t.Helper()
	got, err := repo.Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
