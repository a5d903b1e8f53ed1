package transaction

import (
	"errors"
	"testing"

	"github.com/financeflow/financeflow/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRepoImpl(t *testing.T) {
	t.Run("should insert at the head of the collection", func(t *testing.T) {
		// given
		repo := NewTransactionRepo(storage.NewStubStore())

		// when
		require.NoError(t, repo.Store(ctx, Transaction{ID: "a"}))
		require.NoError(t, repo.Store(ctx, Transaction{ID: "b"}))

		// then
		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "b", all[0].ID)
		assert.Equal(t, "a", all[1].ID)
	})

	t.Run("should return not found for an unknown id", func(t *testing.T) {
		repo := NewTransactionRepo(storage.NewStubStore())

		_, err := repo.FindById(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = repo.Delete(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = repo.Replace(ctx, "missing", Transaction{ID: "missing"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("should return the removed transaction on delete", func(t *testing.T) {
		// given
		repo := NewTransactionRepo(storage.NewStubStore())
		require.NoError(t, repo.Store(ctx, Transaction{ID: "a", Description: "Gas"}))

		// when
		removed, err := repo.Delete(ctx, "a")

		// then
		require.NoError(t, err)
		assert.Equal(t, "Gas", removed.Description)
		all, _ := repo.GetAll(ctx)
		assert.Empty(t, all)
	})

	t.Run("should surface storage write failures", func(t *testing.T) {
		// given
		store := storage.NewStubStore()
		store.SaveErr["transactions"] = errors.New("disk full")
		repo := NewTransactionRepo(store)

		// when
		err := repo.Store(ctx, Transaction{ID: "a"})

		// then
		assert.Error(t, err)
	})
}
