package budget

import (
	"context"
	"fmt"

	"github.com/financeflow/financeflow/internal/storage"
	log "github.com/sirupsen/logrus"
)

const collection = "budgets"

type BudgetRepo interface {
	GetAll(ctx context.Context) ([]Budget, error)
	FindByCategory(ctx context.Context, category string) (Budget, error)
	// Store appends a new Budget. Returns ErrAlreadyExists if the category is
	// already taken.
	Store(ctx context.Context, budget Budget) error
	// Replace overwrites the budget stored under category.
	Replace(ctx context.Context, category string, budget Budget) (Budget, error)
	// Delete removes and returns the budget stored under category.
	Delete(ctx context.Context, category string) (Budget, error)
}

type BudgetRepoImpl struct {
	store storage.Store
}

func NewBudgetRepo(store storage.Store) *BudgetRepoImpl {
	return &BudgetRepoImpl{store: store}
}

func (r *BudgetRepoImpl) GetAll(ctx context.Context) ([]Budget, error) {
	budgets := []Budget{}
	if err := r.store.Load(ctx, collection, &budgets); err != nil {
		return nil, fmt.Errorf("could not load budgets: %w", err)
	}
	return budgets, nil
}

func (r *BudgetRepoImpl) FindByCategory(ctx context.Context, category string) (Budget, error) {
	budgets, err := r.GetAll(ctx)
	if err != nil {
		return Budget{}, err
	}
	for _, budget := range budgets {
		if budget.Category == category {
			return budget, nil
		}
	}
	return Budget{}, ErrNotFound
}

func (r *BudgetRepoImpl) Store(ctx context.Context, budget Budget) error {
	budgets, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, existing := range budgets {
		if existing.Category == budget.Category {
			return ErrAlreadyExists
		}
	}
	budgets = append(budgets, budget)
	if err := r.store.Save(ctx, collection, budgets); err != nil {
		return fmt.Errorf("could not save budgets: %w", err)
	}
	return nil
}

func (r *BudgetRepoImpl) Replace(ctx context.Context, category string, budget Budget) (Budget, error) {
	budgets, err := r.GetAll(ctx)
	if err != nil {
		return Budget{}, err
	}
	for i, existing := range budgets {
		if existing.Category == category {
			budgets[i] = budget
			if err := r.store.Save(ctx, collection, budgets); err != nil {
				return Budget{}, fmt.Errorf("could not save budgets: %w", err)
			}
			return budget, nil
		}
	}
	log.Debugf("budget %s not found for replace", category)
	return Budget{}, ErrNotFound
}

func (r *BudgetRepoImpl) Delete(ctx context.Context, category string) (Budget, error) {
	budgets, err := r.GetAll(ctx)
	if err != nil {
		return Budget{}, err
	}
	for i, existing := range budgets {
		if existing.Category == category {
			removed := existing
			budgets = append(budgets[:i], budgets[i+1:]...)
			if err := r.store.Save(ctx, collection, budgets); err != nil {
				return Budget{}, fmt.Errorf("could not save budgets: %w", err)
			}
			return removed, nil
		}
	}
	return Budget{}, ErrNotFound
}
