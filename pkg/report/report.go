package report

import (
	"sort"

	"github.com/financeflow/financeflow/pkg/transaction"
)

// RecentWindow is the size of the recent-transactions view on the dashboard.
const RecentWindow = 5

// Summary holds the aggregates derived from a transaction snapshot. Nothing
// here is persisted; it is recomputed whenever the snapshot changes.
type Summary struct {
	TotalIncome        float64            `json:"totalIncome"`
	TotalExpenses      float64            `json:"totalExpenses"`
	NetBalance         float64            `json:"netBalance"`
	ExpensesByCategory map[string]float64 `json:"expensesByCategory"`
}

func Summarize(transactions []transaction.Transaction) Summary {
	summary := Summary{
		ExpensesByCategory: map[string]float64{},
	}
	for _, tx := range transactions {
		switch tx.Type {
		case transaction.TypeIncome:
			summary.TotalIncome += tx.Amount
		case transaction.TypeExpense:
			summary.TotalExpenses += tx.Amount
			summary.ExpensesByCategory[tx.Category] += tx.Amount
		}
	}
	summary.NetBalance = summary.TotalIncome - summary.TotalExpenses
	return summary
}

// ExpensesByCategory maps category to total spent, in a single accumulation
// pass. Categories with no expenses are absent, not zero-valued.
func ExpensesByCategory(transactions []transaction.Transaction) map[string]float64 {
	totals := map[string]float64{}
	for _, tx := range transactions {
		if tx.Type == transaction.TypeExpense {
			totals[tx.Category] += tx.Amount
		}
	}
	return totals
}

// RecentTransactions returns the snapshot sorted by date descending, truncated
// to n entries. The sort is stable: same-day transactions keep their original
// relative order. ISO dates compare correctly as strings.
func RecentTransactions(transactions []transaction.Transaction, n int) []transaction.Transaction {
	recent := append([]transaction.Transaction{}, transactions...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date > recent[j].Date
	})
	if len(recent) > n {
		recent = recent[:n]
	}
	return recent
}
