package app

import (
	"github.com/financeflow/financeflow/internal/config"
	"github.com/financeflow/financeflow/internal/storage"
	"github.com/financeflow/financeflow/pkg/budget"
	"github.com/financeflow/financeflow/pkg/goal"
	"github.com/financeflow/financeflow/pkg/report"
	"github.com/financeflow/financeflow/pkg/transaction"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	BudgetRepo    budget.BudgetRepo
	BudgetService *budget.BudgetServiceImpl
	BudgetHandler *budget.BudgetHandler

	TransactionRepo    transaction.TransactionRepo
	TransactionService *transaction.TransactionServiceImpl
	TransactionHandler *transaction.TransactionHandler

	GoalRepo    goal.GoalRepo
	GoalService *goal.GoalServiceImpl
	GoalHandler *goal.GoalHandler

	ReportHandler *report.ReportHandler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(store storage.Store, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.BudgetRepo = budget.NewBudgetRepo(store)
	deps.BudgetService = budget.NewBudgetService(deps.BudgetRepo)
	deps.BudgetHandler = budget.NewBudgetHandler(deps.BudgetService)

	// The budget service doubles as the BudgetTracker applied on expense
	// creation.
	deps.TransactionRepo = transaction.NewTransactionRepo(store)
	deps.TransactionService = transaction.NewTransactionService(deps.TransactionRepo, deps.BudgetService)
	deps.TransactionHandler = transaction.NewTransactionHandler(deps.TransactionService)

	deps.GoalRepo = goal.NewGoalRepo(store)
	deps.GoalService = goal.NewGoalService(deps.GoalRepo)
	deps.GoalHandler = goal.NewGoalHandler(deps.GoalService)

	deps.ReportHandler = report.NewReportHandler(deps.TransactionService)

	return deps
}
