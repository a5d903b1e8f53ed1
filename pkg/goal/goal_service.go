package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// GoalDraft carries the fields of a goal creation request. TargetAmount is a
// pointer so a missing field can be told apart from an explicit zero.
type GoalDraft struct {
	Name         string
	TargetAmount *float64
	Deadline     string
}

// GoalPatch carries a partial update. Nil fields are left unchanged; the id is
// never overwritten.
type GoalPatch struct {
	Name          *string
	TargetAmount  *float64
	CurrentAmount *float64
	Deadline      *string
}

type GoalService interface {
	GetAll(ctx context.Context) ([]SavingsGoal, error)
	Get(ctx context.Context, id string) (SavingsGoal, error)
	Create(ctx context.Context, draft GoalDraft) (SavingsGoal, error)
	// Contribute applies the contribution rule: progress grows by amount and
	// clamps at the target.
	Contribute(ctx context.Context, id string, amount float64) (SavingsGoal, error)
	Update(ctx context.Context, id string, patch GoalPatch) (SavingsGoal, error)
	Delete(ctx context.Context, id string) (SavingsGoal, error)
}

type GoalServiceImpl struct {
	repo GoalRepo
}

func NewGoalService(repo GoalRepo) *GoalServiceImpl {
	return &GoalServiceImpl{repo: repo}
}

func (s *GoalServiceImpl) GetAll(ctx context.Context) ([]SavingsGoal, error) {
	return s.repo.GetAll(ctx)
}

func (s *GoalServiceImpl) Get(ctx context.Context, id string) (SavingsGoal, error) {
	return s.repo.FindById(ctx, id)
}

func (s *GoalServiceImpl) Create(ctx context.Context, draft GoalDraft) (SavingsGoal, error) {
	if draft.Name == "" || draft.TargetAmount == nil || *draft.TargetAmount <= 0 {
		return SavingsGoal{}, fmt.Errorf("%w: missing required fields: name, targetAmount", ErrValidation)
	}
	goal := SavingsGoal{
		ID:            uuid.NewString(),
		Name:          draft.Name,
		TargetAmount:  *draft.TargetAmount,
		CurrentAmount: 0,
		Deadline:      draft.Deadline,
	}
	if err := s.repo.Store(ctx, goal); err != nil {
		return SavingsGoal{}, err
	}
	return goal, nil
}

func (s *GoalServiceImpl) Contribute(ctx context.Context, id string, amount float64) (SavingsGoal, error) {
	if amount <= 0 {
		return SavingsGoal{}, fmt.Errorf("%w: amount must be a positive number", ErrValidation)
	}
	existing, err := s.repo.FindById(ctx, id)
	if err != nil {
		return SavingsGoal{}, err
	}
	updated := existing.WithContribution(amount)
	if updated.CurrentAmount == updated.TargetAmount {
		log.Infof("goal %s reached its target of %.2f", updated.Name, updated.TargetAmount)
	}
	return s.repo.Replace(ctx, id, updated)
}

func (s *GoalServiceImpl) Update(ctx context.Context, id string, patch GoalPatch) (SavingsGoal, error) {
	existing, err := s.repo.FindById(ctx, id)
	if err != nil {
		return SavingsGoal{}, err
	}
	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.TargetAmount != nil {
		existing.TargetAmount = *patch.TargetAmount
	}
	if patch.CurrentAmount != nil {
		existing.CurrentAmount = *patch.CurrentAmount
	}
	if patch.Deadline != nil {
		existing.Deadline = *patch.Deadline
	}
	return s.repo.Replace(ctx, id, existing)
}

func (s *GoalServiceImpl) Delete(ctx context.Context, id string) (SavingsGoal, error) {
	return s.repo.Delete(ctx, id)
}
