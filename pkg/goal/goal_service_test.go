package goal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

var goalRepoStub = NewStubGoalRepo()

var service GoalService

func setup(t *testing.T) func() {
	service = NewGoalService(goalRepoStub)
	return func() {
		t.Log("Teardown after test")
		goalRepoStub.Cleanup()
	}
}

func target(v float64) *float64 {
	return &v
}

func TestGoalServiceImpl_Create(t *testing.T) {
	t.Run("should create a goal with zero progress", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(ctx, GoalDraft{Name: "Vacation", TargetAmount: target(3000)})

		// then
		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, 0.0, created.CurrentAmount)
		assert.Equal(t, 3000.0, created.TargetAmount)
	})

	t.Run("should fail validation when name or target is missing", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, GoalDraft{Name: "", TargetAmount: target(3000)})
		assert.ErrorIs(t, err, ErrValidation)

		_, err = service.Create(ctx, GoalDraft{Name: "Vacation"})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestGoalServiceImpl_Contribute(t *testing.T) {
	t.Run("should add the amount to the progress", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Create(ctx, GoalDraft{Name: "Vacation", TargetAmount: target(3000)})
		require.NoError(t, err)

		// when
		updated, err := service.Contribute(ctx, created.ID, 250)

		// then
		assert.NoError(t, err)
		assert.Equal(t, 250.0, updated.CurrentAmount)
	})

	t.Run("should clamp the progress at the target exactly", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Create(ctx, GoalDraft{Name: "Vacation", TargetAmount: target(3000)})
		require.NoError(t, err)
		_, err = service.Contribute(ctx, created.ID, 2950)
		require.NoError(t, err)

		// when
		updated, err := service.Contribute(ctx, created.ID, 100)

		// then
		assert.NoError(t, err)
		assert.Equal(t, 3000.0, updated.CurrentAmount, "contribution beyond the gap is truncated, not rejected")
	})

	t.Run("should reject a non-positive amount and leave the progress unchanged", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Create(ctx, GoalDraft{Name: "Vacation", TargetAmount: target(3000)})
		require.NoError(t, err)
		_, err = service.Contribute(ctx, created.ID, 100)
		require.NoError(t, err)

		// when
		_, err = service.Contribute(ctx, created.ID, 0)

		// then
		assert.ErrorIs(t, err, ErrValidation)
		unchanged, _ := service.Get(ctx, created.ID)
		assert.Equal(t, 100.0, unchanged.CurrentAmount)
	})

	t.Run("should fail with not found for an unknown goal", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Contribute(ctx, "doesnotexist", 50)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGoalServiceImpl_Delete(t *testing.T) {
	t.Run("should fail with not found and leave the collection unmodified", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, GoalDraft{Name: "Vacation", TargetAmount: target(3000)})
		require.NoError(t, err)

		// when
		_, err = service.Delete(ctx, "doesnotexist")

		// then
		assert.ErrorIs(t, err, ErrNotFound)
		goals, _ := service.GetAll(ctx)
		assert.Len(t, goals, 1)
	})
}
