package app

import (
	"net/http"

	"github.com/financeflow/financeflow/internal/config"
	"github.com/financeflow/financeflow/internal/rest"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Transactions
	r.HandleFunc("/api/transactions", deps.TransactionHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/transactions", deps.TransactionHandler.Create).Methods("POST")
	r.HandleFunc("/api/transactions/{id}", deps.TransactionHandler.Get).Methods("GET")
	r.HandleFunc("/api/transactions/{id}", deps.TransactionHandler.Update).Methods("PUT")
	r.HandleFunc("/api/transactions/{id}", deps.TransactionHandler.Delete).Methods("DELETE")

	// Budgets
	r.HandleFunc("/api/budgets", deps.BudgetHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/budgets", deps.BudgetHandler.Create).Methods("POST")
	r.HandleFunc("/api/budgets/{category}", deps.BudgetHandler.Get).Methods("GET")
	r.HandleFunc("/api/budgets/{category}", deps.BudgetHandler.Update).Methods("PUT")
	r.HandleFunc("/api/budgets/{category}", deps.BudgetHandler.Delete).Methods("DELETE")

	// Savings goals
	r.HandleFunc("/api/goals", deps.GoalHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/goals", deps.GoalHandler.Create).Methods("POST")
	r.HandleFunc("/api/goals/{id}", deps.GoalHandler.Get).Methods("GET")
	r.HandleFunc("/api/goals/{id}", deps.GoalHandler.Update).Methods("PUT")
	r.HandleFunc("/api/goals/{id}/contribute", deps.GoalHandler.Contribute).Methods("POST")
	r.HandleFunc("/api/goals/{id}", deps.GoalHandler.Delete).Methods("DELETE")

	// Reports
	r.HandleFunc("/api/reports/summary", deps.ReportHandler.GetSummary).Methods("GET")
	r.HandleFunc("/api/reports/spending-chart", deps.ReportHandler.GetSpendingChart).Methods("GET")

	// Health
	r.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		rest.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
}
