package repository_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/brewery/internal/model"
	"github.com/tuanvumaihuynh/brewery/internal/repository"
)

// testRepositories runs the behaviour every Repository implementation shares.
func testRepositories(
	t *testing.T,
	newCustomers func(t *testing.T) repository.Repository[model.Customer],
	newBeers func(t *testing.T) repository.Repository[model.Beer],
) {
	now := time.Now().UTC().Truncate(time.Millisecond)

	t.Run("Should assign id on save and find it", func(t *testing.T) {
		repo := newCustomers(t)
		ctx := t.Context()

		saved, err := repo.Save(ctx, model.Customer{CustomerName: "Good Customer", CreatedDate: now, LastModifiedDate: now})
		require.NoError(t, err)
		require.NotEmpty(t, saved.ID)

		found, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, saved.ID, found.ID)
		assert.Equal(t, "Good Customer", found.CustomerName)
		assert.True(t, now.Equal(found.CreatedDate))
		assert.True(t, now.Equal(found.LastModifiedDate))
	})

	t.Run("Should return ErrNotFound for missing id", func(t *testing.T) {
		repo := newCustomers(t)

		_, err := repo.FindByID(t.Context(), "999")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Should replace when id is set", func(t *testing.T) {
		repo := newCustomers(t)
		ctx := t.Context()

		saved, err := repo.Save(ctx, model.Customer{CustomerName: "Average Customer", CreatedDate: now, LastModifiedDate: now})
		require.NoError(t, err)

		saved.CustomerName = "Bad Customer"
		_, err = repo.Save(ctx, saved)
		require.NoError(t, err)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		found, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, "Bad Customer", found.CustomerName)
	})

	t.Run("Should upsert unknown explicit id", func(t *testing.T) {
		repo := newCustomers(t)
		ctx := t.Context()

		_, err := repo.Save(ctx, model.Customer{ID: "explicit-id", CustomerName: "Explicit", CreatedDate: now, LastModifiedDate: now})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, "explicit-id")
		require.NoError(t, err)
		assert.Equal(t, "Explicit", found.CustomerName)
	})

	t.Run("Should list, delete and clear", func(t *testing.T) {
		repo := newCustomers(t)
		ctx := t.Context()

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)

		var ids []string
		for _, name := range []string{"a", "b", "c"} {
			saved, err := repo.Save(ctx, model.Customer{CustomerName: name, CreatedDate: now, LastModifiedDate: now})
			require.NoError(t, err)
			ids = append(ids, saved.ID)
		}

		all, err = repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		again, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, all, again)

		require.NoError(t, repo.DeleteByID(ctx, ids[1]))
		require.NoError(t, repo.DeleteByID(ctx, "does-not-exist"))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		_, err = repo.FindByID(ctx, ids[1])
		assert.ErrorIs(t, err, repository.ErrNotFound)

		require.NoError(t, repo.DeleteAll(ctx))
		count, err = repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("Should keep decimal price", func(t *testing.T) {
		repo := newBeers(t)
		ctx := t.Context()

		saved, err := repo.Save(ctx, model.Beer{
			BeerName:         "Galaxy Cat",
			BeerStyle:        "Pale Ale",
			Upc:              "12356",
			Price:            decimal.RequireFromString("12.99"),
			QuantityOnHand:   122,
			CreatedDate:      now,
			LastModifiedDate: now,
		})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, "12.99", found.Price.String())
		assert.Equal(t, 122, found.QuantityOnHand)
		assert.Equal(t, "12356", found.Upc)
	})
}
