package transaction

import "context"

type StubTransactionRepo struct {
	data []Transaction
}

func NewStubTransactionRepo() *StubTransactionRepo {
	return &StubTransactionRepo{data: []Transaction{}}
}

func (s *StubTransactionRepo) GetAll(ctx context.Context) ([]Transaction, error) {
	return append([]Transaction{}, s.data...), nil
}

func (s *StubTransactionRepo) FindById(ctx context.Context, id string) (Transaction, error) {
	for _, tx := range s.data {
		if tx.ID == id {
			return tx, nil
		}
	}
	return Transaction{}, ErrNotFound
}

func (s *StubTransactionRepo) Store(ctx context.Context, tx Transaction) error {
	s.data = append([]Transaction{tx}, s.data...)
	return nil
}

func (s *StubTransactionRepo) Replace(ctx context.Context, id string, tx Transaction) (Transaction, error) {
	for i, existing := range s.data {
		if existing.ID == id {
			s.data[i] = tx
			return tx, nil
		}
	}
	return Transaction{}, ErrNotFound
}

func (s *StubTransactionRepo) Delete(ctx context.Context, id string) (Transaction, error) {
	for i, existing := range s.data {
		if existing.ID == id {
			s.data = append(s.data[:i], s.data[i+1:]...)
			return existing, nil
		}
	}
	return Transaction{}, ErrNotFound
}

func (s *StubTransactionRepo) Cleanup() {
	s.data = []Transaction{}
}
