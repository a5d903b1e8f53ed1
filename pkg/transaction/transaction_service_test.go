package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

var transactionRepoStub = NewStubTransactionRepo()

// stubBudgetTracker records RecordExpense calls and can be told to fail.
type stubBudgetTracker struct {
	categories map[string]float64
	calls      int
	err        error
}

func newStubBudgetTracker(categories ...string) *stubBudgetTracker {
	tracked := map[string]float64{}
	for _, category := range categories {
		tracked[category] = 0
	}
	return &stubBudgetTracker{categories: tracked}
}

func (s *stubBudgetTracker) RecordExpense(ctx context.Context, category string, amount float64) (bool, error) {
	s.calls++
	if s.err != nil {
		return false, s.err
	}
	if _, ok := s.categories[category]; !ok {
		return false, nil
	}
	s.categories[category] += amount
	return true, nil
}

var budgetTracker *stubBudgetTracker

var service TransactionService

func setup(t *testing.T, categories ...string) func() {
	budgetTracker = newStubBudgetTracker(categories...)
	service = NewTransactionService(transactionRepoStub, budgetTracker)
	return func() {
		t.Log("Teardown after test")
		transactionRepoStub.Cleanup()
	}
}

func draft() Draft {
	return Draft{
		Type:        TypeExpense,
		Amount:      100,
		Category:    "food",
		Description: "Grocery Shopping",
		Date:        "2026-02-03",
	}
}

func TestTransactionServiceImpl_Create(t *testing.T) {
	t.Run("should issue an id and insert at the head of the collection", func(t *testing.T) {
		teardown := setup(t, "food")
		defer teardown()

		// given
		first, err := service.Create(ctx, draft())
		require.NoError(t, err)

		// when
		second, err := service.Create(ctx, draft())
		require.NoError(t, err)

		// then
		assert.NotEmpty(t, first.ID)
		assert.NotEqual(t, first.ID, second.ID)
		all, _ := service.GetAll(ctx)
		require.Len(t, all, 2)
		assert.Equal(t, second.ID, all[0].ID, "most recent first")
	})

	t.Run("should update the matching budget by exactly the transaction amount", func(t *testing.T) {
		teardown := setup(t, "food")
		defer teardown()

		// when
		_, err := service.Create(ctx, draft())

		// then
		assert.NoError(t, err)
		assert.Equal(t, 100.0, budgetTracker.categories["food"])
	})

	t.Run("should create the transaction even when no budget matches", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(ctx, draft())

		// then
		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, 1, budgetTracker.calls)
	})

	t.Run("should not invoke budget synchronization for income", func(t *testing.T) {
		teardown := setup(t, "food")
		defer teardown()

		// given
		income := Draft{Type: TypeIncome, Amount: 850, Category: "freelance", Description: "Web Design Project", Date: "2026-02-03"}

		// when
		_, err := service.Create(ctx, income)

		// then
		assert.NoError(t, err)
		assert.Equal(t, 0, budgetTracker.calls)
	})

	t.Run("should fail validation when a required field is missing", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		missingDescription := draft()
		missingDescription.Description = ""

		_, err := service.Create(ctx, missingDescription)

		assert.ErrorIs(t, err, ErrValidation)
		all, _ := service.GetAll(ctx)
		assert.Empty(t, all)
	})

	t.Run("should keep the persisted transaction and report a distinct error when budget sync fails", func(t *testing.T) {
		teardown := setup(t, "food")
		defer teardown()

		// given
		budgetTracker.err = errors.New("disk full")

		// when
		created, err := service.Create(ctx, draft())

		// then
		var syncErr *BudgetSyncError
		require.ErrorAs(t, err, &syncErr)
		assert.Equal(t, created.ID, syncErr.Created.ID)
		all, _ := service.GetAll(ctx)
		assert.Len(t, all, 1, "transaction is not rolled back")
	})
}

func TestTransactionServiceImpl_Update(t *testing.T) {
	t.Run("should merge fields without touching the id or the budget", func(t *testing.T) {
		teardown := setup(t, "food")
		defer teardown()

		// given
		created, err := service.Create(ctx, draft())
		require.NoError(t, err)
		newAmount := 250.0

		// when
		updated, err := service.Update(ctx, created.ID, Patch{Amount: &newAmount})

		// then
		assert.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, 250.0, updated.Amount)
		assert.Equal(t, "Grocery Shopping", updated.Description)
		assert.Equal(t, 100.0, budgetTracker.categories["food"], "amount edits do not adjust budget spent")
	})

	t.Run("should fail with not found for an unknown id", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		newAmount := 10.0
		_, err := service.Update(ctx, "doesnotexist", Patch{Amount: &newAmount})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTransactionServiceImpl_Delete(t *testing.T) {
	t.Run("should remove and return the transaction without reversing the budget increment", func(t *testing.T) {
		teardown := setup(t, "food")
		defer teardown()

		// given
		created, err := service.Create(ctx, draft())
		require.NoError(t, err)

		// when
		removed, err := service.Delete(ctx, created.ID)

		// then
		assert.NoError(t, err)
		assert.Equal(t, created.ID, removed.ID)
		assert.Equal(t, 100.0, budgetTracker.categories["food"], "prior increment stays")
		all, _ := service.GetAll(ctx)
		assert.Empty(t, all)
	})

	t.Run("should fail with not found and leave the collection unmodified", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, draft())
		require.NoError(t, err)

		// when
		_, err = service.Delete(ctx, "doesnotexist")

		// then
		assert.ErrorIs(t, err, ErrNotFound)
		all, _ := service.GetAll(ctx)
		assert.Len(t, all, 1)
	})
}
