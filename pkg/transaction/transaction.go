package transaction

import "errors"

var (
	ErrNotFound   = errors.New("transaction not found")
	ErrValidation = errors.New("invalid transaction")
)

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// ExpenseCategories and IncomeCategories are the fixed label sets offered by
// the UI. The raw value "other" appears in both; the sets are disjoint only
// because they are partitioned by transaction type. Membership is not enforced
// on create.
var ExpenseCategories = []string{
	"food",
	"transportation",
	"housing",
	"entertainment",
	"insurance",
	"utilities",
	"healthcare",
	"shopping",
	"subscriptions",
	"other",
}

var IncomeCategories = []string{
	"salary",
	"freelance",
	"investments",
	"side-project",
	"other",
}

type Transaction struct {
	ID     string  `json:"id"`
	Type   Type    `json:"type"`
	Amount float64 `json:"amount"`
	// Category is drawn from ExpenseCategories or IncomeCategories depending
	// on Type.
	Category    string `json:"category"`
	Description string `json:"description"`
	// Date is a calendar date (YYYY-MM-DD), no time-of-day semantics.
	Date        string `json:"date"`
	IsRecurring bool   `json:"isRecurring"`
}

// Draft holds the caller-provided fields of a transaction before an id is
// issued.
type Draft struct {
	Type        Type
	Amount      float64
	Category    string
	Description string
	Date        string
	IsRecurring bool
}

// Patch carries a partial update. Nil fields are left unchanged; the id is
// never overwritten.
type Patch struct {
	Type        *Type
	Amount      *float64
	Category    *string
	Description *string
	Date        *string
	IsRecurring *bool
}
