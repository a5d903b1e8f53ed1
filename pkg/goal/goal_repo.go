package goal

import (
	"context"
	"fmt"

	"github.com/financeflow/financeflow/internal/storage"
)

const collection = "goals"

type GoalRepo interface {
	GetAll(ctx context.Context) ([]SavingsGoal, error)
	FindById(ctx context.Context, id string) (SavingsGoal, error)
	Store(ctx context.Context, goal SavingsGoal) error
	Replace(ctx context.Context, id string, goal SavingsGoal) (SavingsGoal, error)
	Delete(ctx context.Context, id string) (SavingsGoal, error)
}

type GoalRepoImpl struct {
	store storage.Store
}

func NewGoalRepo(store storage.Store) *GoalRepoImpl {
	return &GoalRepoImpl{store: store}
}

func (r *GoalRepoImpl) GetAll(ctx context.Context) ([]SavingsGoal, error) {
	goals := []SavingsGoal{}
	if err := r.store.Load(ctx, collection, &goals); err != nil {
		return nil, fmt.Errorf("could not load goals: %w", err)
	}
	return goals, nil
}

func (r *GoalRepoImpl) FindById(ctx context.Context, id string) (SavingsGoal, error) {
	goals, err := r.GetAll(ctx)
	if err != nil {
		return SavingsGoal{}, err
	}
	for _, goal := range goals {
		if goal.ID == id {
			return goal, nil
		}
	}
	return SavingsGoal{}, ErrNotFound
}

func (r *GoalRepoImpl) Store(ctx context.Context, goal SavingsGoal) error {
	goals, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	goals = append(goals, goal)
	if err := r.store.Save(ctx, collection, goals); err != nil {
		return fmt.Errorf("could not save goals: %w", err)
	}
	return nil
}

func (r *GoalRepoImpl) Replace(ctx context.Context, id string, goal SavingsGoal) (SavingsGoal, error) {
	goals, err := r.GetAll(ctx)
	if err != nil {
		return SavingsGoal{}, err
	}
	for i, existing := range goals {
		if existing.ID == id {
			goals[i] = goal
			if err := r.store.Save(ctx, collection, goals); err != nil {
				return SavingsGoal{}, fmt.Errorf("could not save goals: %w", err)
			}
			return goal, nil
		}
	}
	return SavingsGoal{}, ErrNotFound
}

func (r *GoalRepoImpl) Delete(ctx context.Context, id string) (SavingsGoal, error) {
	goals, err := r.GetAll(ctx)
	if err != nil {
		return SavingsGoal{}, err
	}
	for i, existing := range goals {
		if existing.ID == id {
			removed := existing
			goals = append(goals[:i], goals[i+1:]...)
			if err := r.store.Save(ctx, collection, goals); err != nil {
				return SavingsGoal{}, fmt.Errorf("could not save goals: %w", err)
			}
			return removed, nil
		}
	}
	return SavingsGoal{}, ErrNotFound
}
