package client

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/financeflow/financeflow/internal/utils"
	"github.com/financeflow/financeflow/pkg/budget"
	"github.com/financeflow/financeflow/pkg/goal"
	"github.com/financeflow/financeflow/pkg/report"
	"github.com/financeflow/financeflow/pkg/transaction"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Notifier surfaces user-visible messages for failed mutations.
type Notifier func(message string)

// FinanceClient holds the dashboard's view of the three collections and the
// aggregates derived from them. After a successful Load it mirrors the remote
// store; when the initial load fails it degrades to a fully local,
// non-persistent mode that applies the same domain rules to its in-memory
// snapshot.
type FinanceClient struct {
	api    *APIClient
	clock  utils.Clock
	notify Notifier

	mu           sync.Mutex
	remote       bool
	lastLocalId  int64
	transactions []transaction.Transaction
	budgets      []budget.Budget
	goals        []goal.SavingsGoal
}

func NewFinanceClient(api *APIClient, clock utils.Clock, notify Notifier) *FinanceClient {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	if notify == nil {
		notify = func(message string) { log.Warn(message) }
	}
	return &FinanceClient{
		api:    api,
		clock:  clock,
		notify: notify,
	}
}

// Load fetches all three collections concurrently. A failure in any one load
// substitutes the static seed data for all three (all-or-nothing degrade) and
// switches the client to local mode.
func (c *FinanceClient) Load(ctx context.Context) error {
	var (
		transactions []transaction.Transaction
		budgets      []budget.Budget
		goals        []goal.SavingsGoal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = c.api.GetTransactions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = c.api.GetBudgets(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = c.api.GetGoals(gctx)
		return err
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := g.Wait(); err != nil {
		log.Warnf("backend unreachable, continuing with local fallback data: %v", err)
		c.remote = false
		c.transactions = fallbackTransactions()
		c.budgets = fallbackBudgets()
		c.goals = fallbackGoals()
		return nil
	}

	c.remote = true
	c.transactions = transactions
	c.budgets = budgets
	c.goals = goals
	return nil
}

// Remote reports whether the client is backed by the remote store.
func (c *FinanceClient) Remote() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remote
}

// AddTransaction records a transaction. In remote mode the server owns the
// budget synchronization and budgets are re-fetched afterwards; in local mode
// the same increment rule is applied to the in-memory snapshot.
func (c *FinanceClient) AddTransaction(ctx context.Context, draft transaction.Draft) (transaction.Transaction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.remote {
		created, err := c.api.CreateTransaction(ctx, draft)
		if err != nil {
			c.notify("Failed to add transaction")
			return transaction.Transaction{}, err
		}
		c.transactions = append([]transaction.Transaction{created}, c.transactions...)
		budgets, err := c.api.GetBudgets(ctx)
		if err != nil {
			log.Warnf("could not refresh budgets after transaction: %v", err)
		} else {
			c.budgets = budgets
		}
		return created, nil
	}

	created := transaction.Transaction{
		ID:          c.nextLocalId(),
		Type:        draft.Type,
		Amount:      draft.Amount,
		Category:    draft.Category,
		Description: draft.Description,
		Date:        draft.Date,
		IsRecurring: draft.IsRecurring,
	}
	c.transactions = append([]transaction.Transaction{created}, c.transactions...)
	if created.Type == transaction.TypeExpense {
		for i, b := range c.budgets {
			if b.Category == created.Category {
				c.budgets[i] = b.AddExpense(created.Amount)
				break
			}
		}
	}
	return created, nil
}

func (c *FinanceClient) DeleteTransaction(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.remote {
		if _, err := c.api.DeleteTransaction(ctx, id); err != nil {
			c.notify("Failed to delete transaction")
			return err
		}
	}
	for i, tx := range c.transactions {
		if tx.ID == id {
			c.transactions = append(c.transactions[:i], c.transactions[i+1:]...)
			break
		}
	}
	return nil
}

// AddBudget creates a budget. Local mode enforces the same one-budget-per-
// category conflict rule as the server.
func (c *FinanceClient) AddBudget(ctx context.Context, category string, limit float64) (budget.Budget, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.remote {
		created, err := c.api.CreateBudget(ctx, category, limit)
		if err != nil {
			c.notify("Failed to create budget")
			return budget.Budget{}, err
		}
		c.budgets = append(c.budgets, created)
		return created, nil
	}

	for _, b := range c.budgets {
		if b.Category == category {
			c.notify("Failed to create budget")
			return budget.Budget{}, budget.ErrAlreadyExists
		}
	}
	created := budget.Budget{Category: category, Limit: limit, Spent: 0}
	c.budgets = append(c.budgets, created)
	return created, nil
}

func (c *FinanceClient) DeleteBudget(ctx context.Context, category string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.remote {
		if _, err := c.api.DeleteBudget(ctx, category); err != nil {
			c.notify("Failed to delete budget")
			return err
		}
	}
	for i, b := range c.budgets {
		if b.Category == category {
			c.budgets = append(c.budgets[:i], c.budgets[i+1:]...)
			break
		}
	}
	return nil
}

func (c *FinanceClient) AddGoal(ctx context.Context, name string, targetAmount float64) (goal.SavingsGoal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.remote {
		created, err := c.api.CreateGoal(ctx, name, targetAmount)
		if err != nil {
			c.notify("Failed to create goal")
			return goal.SavingsGoal{}, err
		}
		c.goals = append(c.goals, created)
		return created, nil
	}

	created := goal.SavingsGoal{
		ID:            c.nextLocalId(),
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: 0,
	}
	c.goals = append(c.goals, created)
	return created, nil
}

// ContributeToGoal applies the contribution rule. Local mode enforces the same
// positive-amount validation and ceiling clamp as the server.
func (c *FinanceClient) ContributeToGoal(ctx context.Context, id string, amount float64) (goal.SavingsGoal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.remote {
		updated, err := c.api.ContributeToGoal(ctx, id, amount)
		if err != nil {
			c.notify("Failed to contribute to goal")
			return goal.SavingsGoal{}, err
		}
		for i, g := range c.goals {
			if g.ID == id {
				c.goals[i] = updated
				break
			}
		}
		return updated, nil
	}

	if amount <= 0 {
		c.notify("Failed to contribute to goal")
		return goal.SavingsGoal{}, fmt.Errorf("%w: amount must be a positive number", goal.ErrValidation)
	}
	for i, g := range c.goals {
		if g.ID == id {
			c.goals[i] = g.WithContribution(amount)
			return c.goals[i], nil
		}
	}
	c.notify("Failed to contribute to goal")
	return goal.SavingsGoal{}, goal.ErrNotFound
}

// nextLocalId is the simpler monotonic scheme used in local mode: clock millis
// bumped by one when two ids land on the same tick. Callers must hold mu.
func (c *FinanceClient) nextLocalId() string {
	id := c.clock.Now().UnixMilli()
	if id <= c.lastLocalId {
		id = c.lastLocalId + 1
	}
	c.lastLocalId = id
	return strconv.FormatInt(id, 10)
}

func (c *FinanceClient) Transactions() []transaction.Transaction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]transaction.Transaction{}, c.transactions...)
}

func (c *FinanceClient) Budgets() []budget.Budget {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]budget.Budget{}, c.budgets...)
}

func (c *FinanceClient) Goals() []goal.SavingsGoal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]goal.SavingsGoal{}, c.goals...)
}

// Summary recomputes the derived aggregates from the current snapshot.
func (c *FinanceClient) Summary() report.Summary {
	return report.Summarize(c.Transactions())
}

// RecentTransactions returns the dashboard's recent-transactions view.
func (c *FinanceClient) RecentTransactions() []transaction.Transaction {
	return report.RecentTransactions(c.Transactions(), report.RecentWindow)
}
