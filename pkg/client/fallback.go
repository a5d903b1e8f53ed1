package client

import (
	"github.com/financeflow/financeflow/pkg/budget"
	"github.com/financeflow/financeflow/pkg/goal"
	"github.com/financeflow/financeflow/pkg/transaction"
)

// Static seed data used when the backend is unreachable. The degrade policy is
// all-or-nothing: one failed load substitutes the seeds for all three
// collections.

func fallbackTransactions() []transaction.Transaction {
	return []transaction.Transaction{
		{ID: "1", Type: transaction.TypeIncome, Amount: 5200, Category: "salary", Description: "Monthly Salary", Date: "2026-02-01", IsRecurring: true},
		{ID: "2", Type: transaction.TypeExpense, Amount: 1200, Category: "housing", Description: "Rent Payment", Date: "2026-02-01", IsRecurring: true},
		{ID: "3", Type: transaction.TypeExpense, Amount: 89, Category: "subscriptions", Description: "Streaming Services", Date: "2026-02-02", IsRecurring: true},
		{ID: "4", Type: transaction.TypeExpense, Amount: 156, Category: "food", Description: "Grocery Shopping", Date: "2026-02-03"},
		{ID: "5", Type: transaction.TypeIncome, Amount: 850, Category: "freelance", Description: "Web Design Project", Date: "2026-02-03"},
		{ID: "6", Type: transaction.TypeExpense, Amount: 45, Category: "transportation", Description: "Gas", Date: "2026-02-04"},
		{ID: "7", Type: transaction.TypeExpense, Amount: 234, Category: "entertainment", Description: "Concert Tickets", Date: "2026-02-04"},
		{ID: "8", Type: transaction.TypeExpense, Amount: 78, Category: "utilities", Description: "Internet Bill", Date: "2026-02-02", IsRecurring: true},
	}
}

func fallbackBudgets() []budget.Budget {
	return []budget.Budget{
		{Category: "food", Limit: 600, Spent: 420},
		{Category: "transportation", Limit: 300, Spent: 180},
		{Category: "housing", Limit: 1500, Spent: 1200},
		{Category: "entertainment", Limit: 200, Spent: 234},
		{Category: "utilities", Limit: 200, Spent: 78},
		{Category: "subscriptions", Limit: 100, Spent: 89},
		{Category: "shopping", Limit: 300, Spent: 0},
	}
}

func fallbackGoals() []goal.SavingsGoal {
	return []goal.SavingsGoal{
		{ID: "1", Name: "Emergency Fund", TargetAmount: 10000, CurrentAmount: 6500},
		{ID: "2", Name: "Vacation", TargetAmount: 3000, CurrentAmount: 1200},
		{ID: "3", Name: "New Car", TargetAmount: 25000, CurrentAmount: 8000},
	}
}
