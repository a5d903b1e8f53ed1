package budget

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// BudgetDraft carries the fields of a budget creation request. Limit is a
// pointer so a missing field can be told apart from an explicit zero.
type BudgetDraft struct {
	Category string
	Limit    *float64
}

// BudgetPatch carries a partial update. Nil fields are left unchanged; the
// category key itself is never changed by a patch.
type BudgetPatch struct {
	Limit *float64
	Spent *float64
}

type BudgetService interface {
	GetAll(ctx context.Context) ([]Budget, error)
	Get(ctx context.Context, category string) (Budget, error)
	Create(ctx context.Context, draft BudgetDraft) (Budget, error)
	Update(ctx context.Context, category string, patch BudgetPatch) (Budget, error)
	Delete(ctx context.Context, category string) (Budget, error)
	// RecordExpense applies the budget synchronization rule: add amount to the
	// running total of the budget matching category. A missing budget is not
	// an error; the bool reports whether a budget was updated.
	RecordExpense(ctx context.Context, category string, amount float64) (bool, error)
}

type BudgetServiceImpl struct {
	repo BudgetRepo
}

func NewBudgetService(repo BudgetRepo) *BudgetServiceImpl {
	return &BudgetServiceImpl{repo: repo}
}

func (s *BudgetServiceImpl) GetAll(ctx context.Context) ([]Budget, error) {
	return s.repo.GetAll(ctx)
}

func (s *BudgetServiceImpl) Get(ctx context.Context, category string) (Budget, error) {
	return s.repo.FindByCategory(ctx, category)
}

func (s *BudgetServiceImpl) Create(ctx context.Context, draft BudgetDraft) (Budget, error) {
	if draft.Category == "" || draft.Limit == nil {
		return Budget{}, fmt.Errorf("%w: missing required fields: category, limit", ErrValidation)
	}
	budget := Budget{
		Category: draft.Category,
		Limit:    *draft.Limit,
		Spent:    0,
	}
	if err := s.repo.Store(ctx, budget); err != nil {
		return Budget{}, err
	}
	return budget, nil
}

func (s *BudgetServiceImpl) Update(ctx context.Context, category string, patch BudgetPatch) (Budget, error) {
	existing, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		return Budget{}, err
	}
	if patch.Limit != nil {
		existing.Limit = *patch.Limit
	}
	if patch.Spent != nil {
		existing.Spent = *patch.Spent
	}
	return s.repo.Replace(ctx, category, existing)
}

func (s *BudgetServiceImpl) Delete(ctx context.Context, category string) (Budget, error) {
	return s.repo.Delete(ctx, category)
}

func (s *BudgetServiceImpl) RecordExpense(ctx context.Context, category string, amount float64) (bool, error) {
	existing, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Debugf("no budget for category %s, expense recorded without budget effect", category)
			return false, nil
		}
		return false, err
	}
	if _, err := s.repo.Replace(ctx, category, existing.AddExpense(amount)); err != nil {
		return false, fmt.Errorf("could not update spent for budget %s: %w", category, err)
	}
	return true, nil
}
