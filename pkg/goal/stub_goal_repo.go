package goal

import "context"

type StubGoalRepo struct {
	data []SavingsGoal
}

func NewStubGoalRepo() *StubGoalRepo {
	return &StubGoalRepo{data: []SavingsGoal{}}
}

func (s *StubGoalRepo) GetAll(ctx context.Context) ([]SavingsGoal, error) {
	return append([]SavingsGoal{}, s.data...), nil
}

func (s *StubGoalRepo) FindById(ctx context.Context, id string) (SavingsGoal, error) {
	for _, goal := range s.data {
		if goal.ID == id {
			return goal, nil
		}
	}
	return SavingsGoal{}, ErrNotFound
}

func (s *StubGoalRepo) Store(ctx context.Context, goal SavingsGoal) error {
	s.data = append(s.data, goal)
	return nil
}

func (s *StubGoalRepo) Replace(ctx context.Context, id string, goal SavingsGoal) (SavingsGoal, error) {
	for i, existing := range s.data {
		if existing.ID == id {
			s.data[i] = goal
			return goal, nil
		}
	}
	return SavingsGoal{}, ErrNotFound
}

func (s *StubGoalRepo) Delete(ctx context.Context, id string) (SavingsGoal, error) {
	for i, existing := range s.data {
		if existing.ID == id {
			s.data = append(s.data[:i], s.data[i+1:]...)
			return existing, nil
		}
	}
	return SavingsGoal{}, ErrNotFound
}

func (s *StubGoalRepo) Cleanup() {
	s.data = []SavingsGoal{}
}
