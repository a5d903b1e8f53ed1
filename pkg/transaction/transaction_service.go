package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// BudgetTracker is the narrow view of the budget service needed by the
// synchronization rule. The bool reports whether a matching budget existed.
type BudgetTracker interface {
	RecordExpense(ctx context.Context, category string, amount float64) (bool, error)
}

// BudgetSyncError reports that the transaction itself was persisted but the
// matching budget could not be updated. There is no multi-document
// transactionality, so the transaction is not rolled back; callers observe
// the partial success through this distinct error type.
type BudgetSyncError struct {
	Created Transaction
	Err     error
}

func (e *BudgetSyncError) Error() string {
	return fmt.Sprintf("transaction %s created but budget update failed: %v", e.Created.ID, e.Err)
}

func (e *BudgetSyncError) Unwrap() error {
	return e.Err
}

type TransactionService interface {
	GetAll(ctx context.Context) ([]Transaction, error)
	Get(ctx context.Context, id string) (Transaction, error)
	Create(ctx context.Context, draft Draft) (Transaction, error)
	Update(ctx context.Context, id string, patch Patch) (Transaction, error)
	Delete(ctx context.Context, id string) (Transaction, error)
}

type TransactionServiceImpl struct {
	repo    TransactionRepo
	budgets BudgetTracker
}

func NewTransactionService(repo TransactionRepo, budgets BudgetTracker) *TransactionServiceImpl {
	return &TransactionServiceImpl{repo: repo, budgets: budgets}
}

func (s *TransactionServiceImpl) GetAll(ctx context.Context) ([]Transaction, error) {
	return s.repo.GetAll(ctx)
}

func (s *TransactionServiceImpl) Get(ctx context.Context, id string) (Transaction, error) {
	return s.repo.FindById(ctx, id)
}

// Create validates the draft, issues a fresh id, inserts the transaction at
// the head of the collection, and for expenses applies the budget
// synchronization rule before returning. When the budget update fails the
// created transaction is returned together with a *BudgetSyncError.
func (s *TransactionServiceImpl) Create(ctx context.Context, draft Draft) (Transaction, error) {
	if draft.Type == "" || draft.Amount <= 0 || draft.Category == "" || draft.Description == "" || draft.Date == "" {
		return Transaction{}, fmt.Errorf("%w: missing required fields: type, amount, category, description, date", ErrValidation)
	}

	tx := Transaction{
		ID:          uuid.NewString(),
		Type:        draft.Type,
		Amount:      draft.Amount,
		Category:    draft.Category,
		Description: draft.Description,
		Date:        draft.Date,
		IsRecurring: draft.IsRecurring,
	}
	if err := s.repo.Store(ctx, tx); err != nil {
		return Transaction{}, err
	}

	if tx.Type == TypeExpense {
		matched, err := s.budgets.RecordExpense(ctx, tx.Category, tx.Amount)
		if err != nil {
			return tx, &BudgetSyncError{Created: tx, Err: err}
		}
		if matched {
			log.Debugf("budget %s updated for transaction %s", tx.Category, tx.ID)
		}
	}

	return tx, nil
}

// Update merges the patch into the stored record. It deliberately does not
// re-run budget synchronization: amount or category edits leave budget totals
// as they were.
func (s *TransactionServiceImpl) Update(ctx context.Context, id string, patch Patch) (Transaction, error) {
	existing, err := s.repo.FindById(ctx, id)
	if err != nil {
		return Transaction{}, err
	}
	if patch.Type != nil {
		existing.Type = *patch.Type
	}
	if patch.Amount != nil {
		existing.Amount = *patch.Amount
	}
	if patch.Category != nil {
		existing.Category = *patch.Category
	}
	if patch.Description != nil {
		existing.Description = *patch.Description
	}
	if patch.Date != nil {
		existing.Date = *patch.Date
	}
	if patch.IsRecurring != nil {
		existing.IsRecurring = *patch.IsRecurring
	}
	return s.repo.Replace(ctx, id, existing)
}

// Delete removes the transaction. Any budget increment it caused earlier is
// not reversed.
func (s *TransactionServiceImpl) Delete(ctx context.Context, id string) (Transaction, error) {
	return s.repo.Delete(ctx, id)
}
