package budget

import "errors"

var (
	ErrNotFound      = errors.New("budget not found")
	ErrAlreadyExists = errors.New("budget for this category already exists")
	ErrValidation    = errors.New("invalid budget")
)

// Budget is a per-expense-category spending ceiling with an incrementally
// maintained running total. Spent is persisted, never recomputed from the
// transaction history, so it can drift when transactions are later edited or
// deleted.
type Budget struct {
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
	Spent    float64 `json:"spent"`
}

// AddExpense returns the budget with amount added to its running total.
// This is the single increment rule shared by the server-side expense path
// and the client's local mode.
func (b Budget) AddExpense(amount float64) Budget {
	b.Spent += amount
	return b
}

// Remaining reports how much of the limit is left. It can be negative when the
// category is over budget.
func (b Budget) Remaining() float64 {
	return b.Limit - b.Spent
}
