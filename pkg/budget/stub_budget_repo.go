package budget

import "context"

type StubBudgetRepo struct {
	data []Budget
}

func NewStubBudgetRepo() *StubBudgetRepo {
	return &StubBudgetRepo{data: []Budget{}}
}

func (s *StubBudgetRepo) GetAll(ctx context.Context) ([]Budget, error) {
	return append([]Budget{}, s.data...), nil
}

func (s *StubBudgetRepo) FindByCategory(ctx context.Context, category string) (Budget, error) {
	for _, budget := range s.data {
		if budget.Category == category {
			return budget, nil
		}
	}
	return Budget{}, ErrNotFound
}

func (s *StubBudgetRepo) Store(ctx context.Context, budget Budget) error {
	for _, existing := range s.data {
		if existing.Category == budget.Category {
			return ErrAlreadyExists
		}
	}
	s.data = append(s.data, budget)
	return nil
}

func (s *StubBudgetRepo) Replace(ctx context.Context, category string, budget Budget) (Budget, error) {
	for i, existing := range s.data {
		if existing.Category == category {
			s.data[i] = budget
			return budget, nil
		}
	}
	return Budget{}, ErrNotFound
}

func (s *StubBudgetRepo) Delete(ctx context.Context, category string) (Budget, error) {
	for i, existing := range s.data {
		if existing.Category == category {
			s.data = append(s.data[:i], s.data[i+1:]...)
			return existing, nil
		}
	}
	return Budget{}, ErrNotFound
}

func (s *StubBudgetRepo) Cleanup() {
	s.data = []Budget{}
}
