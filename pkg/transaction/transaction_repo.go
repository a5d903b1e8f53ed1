package transaction

import (
	"context"
	"fmt"

	"github.com/financeflow/financeflow/internal/storage"
)

const collection = "transactions"

type TransactionRepo interface {
	GetAll(ctx context.Context) ([]Transaction, error)
	FindById(ctx context.Context, id string) (Transaction, error)
	// Store inserts the transaction at the head of the collection
	// (most-recent-first convention).
	Store(ctx context.Context, tx Transaction) error
	// Replace overwrites the transaction stored under id.
	Replace(ctx context.Context, id string, tx Transaction) (Transaction, error)
	// Delete removes and returns the transaction stored under id.
	Delete(ctx context.Context, id string) (Transaction, error)
}

type TransactionRepoImpl struct {
	store storage.Store
}

func NewTransactionRepo(store storage.Store) *TransactionRepoImpl {
	return &TransactionRepoImpl{store: store}
}

func (r *TransactionRepoImpl) GetAll(ctx context.Context) ([]Transaction, error) {
	transactions := []Transaction{}
	if err := r.store.Load(ctx, collection, &transactions); err != nil {
		return nil, fmt.Errorf("could not load transactions: %w", err)
	}
	return transactions, nil
}

func (r *TransactionRepoImpl) FindById(ctx context.Context, id string) (Transaction, error) {
	transactions, err := r.GetAll(ctx)
	if err != nil {
		return Transaction{}, err
	}
	for _, tx := range transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return Transaction{}, ErrNotFound
}

func (r *TransactionRepoImpl) Store(ctx context.Context, tx Transaction) error {
	transactions, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	transactions = append([]Transaction{tx}, transactions...)
	if err := r.store.Save(ctx, collection, transactions); err != nil {
		return fmt.Errorf("could not save transactions: %w", err)
	}
	return nil
}

func (r *TransactionRepoImpl) Replace(ctx context.Context, id string, tx Transaction) (Transaction, error) {
	transactions, err := r.GetAll(ctx)
	if err != nil {
		return Transaction{}, err
	}
	for i, existing := range transactions {
		if existing.ID == id {
			transactions[i] = tx
			if err := r.store.Save(ctx, collection, transactions); err != nil {
				return Transaction{}, fmt.Errorf("could not save transactions: %w", err)
			}
			return tx, nil
		}
	}
	return Transaction{}, ErrNotFound
}

func (r *TransactionRepoImpl) Delete(ctx context.Context, id string) (Transaction, error) {
	transactions, err := r.GetAll(ctx)
	if err != nil {
		return Transaction{}, err
	}
	for i, existing := range transactions {
		if existing.ID == id {
			removed := existing
			transactions = append(transactions[:i], transactions[i+1:]...)
			if err := r.store.Save(ctx, collection, transactions); err != nil {
				return Transaction{}, fmt.Errorf("could not save transactions: %w", err)
			}
			return removed, nil
		}
	}
	return Transaction{}, ErrNotFound
}
