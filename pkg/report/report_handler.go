package report

import (
	"net/http"

	"github.com/financeflow/financeflow/internal/rest"
	"github.com/financeflow/financeflow/pkg/transaction"
	log "github.com/sirupsen/logrus"
)

type SummaryDTO struct {
	Summary
	RecentTransactions []transaction.Transaction `json:"recentTransactions"`
}

type ReportHandler struct {
	transactionService transaction.TransactionService
}

func NewReportHandler(transactionService transaction.TransactionService) *ReportHandler {
	return &ReportHandler{transactionService}
}

func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.transactionService.GetAll(r.Context())
	if err != nil {
		rest.Error(w, http.StatusInternalServerError, "Failed to read transactions")
		return
	}
	rest.JSON(w, http.StatusOK, SummaryDTO{
		Summary:            Summarize(transactions),
		RecentTransactions: RecentTransactions(transactions, RecentWindow),
	})
}

func (h *ReportHandler) GetSpendingChart(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.transactionService.GetAll(r.Context())
	if err != nil {
		rest.Error(w, http.StatusInternalServerError, "Failed to read transactions")
		return
	}

	png, err := RenderSpendingChart(ExpensesByCategory(transactions))
	if err != nil {
		log.Errorf("failed to render spending chart: %v", err)
		rest.Error(w, http.StatusInternalServerError, "Failed to render spending chart")
		return
	}
	if png == nil {
		rest.Error(w, http.StatusNotFound, "No expenses to chart")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		log.Errorf("failed to write spending chart: %v", err)
	}
}
