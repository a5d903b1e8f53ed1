package budget

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/financeflow/financeflow/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type CreateBudgetDTO struct {
	Category string   `json:"category"`
	Limit    *float64 `json:"limit"`
}

type UpdateBudgetDTO struct {
	Limit *float64 `json:"limit"`
	Spent *float64 `json:"spent"`
}

type BudgetHandler struct {
	budgetService BudgetService
}

func NewBudgetHandler(budgetService BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService}
}

func (h *BudgetHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.budgetService.GetAll(r.Context())
	if err != nil {
		rest.Error(w, http.StatusInternalServerError, "Failed to read budgets")
		return
	}
	rest.JSON(w, http.StatusOK, budgets)
}

func (h *BudgetHandler) Get(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	budget, err := h.budgetService.Get(r.Context(), category)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			rest.Error(w, http.StatusNotFound, "Budget not found")
			return
		}
		rest.Error(w, http.StatusInternalServerError, "Failed to read budget")
		return
	}
	rest.JSON(w, http.StatusOK, budget)
}

func (h *BudgetHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new budget")

	var dto CreateBudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.budgetService.Create(r.Context(), BudgetDraft{Category: dto.Category, Limit: dto.Limit})
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			rest.Error(w, http.StatusBadRequest, "Missing required fields: category, limit")
		case errors.Is(err, ErrAlreadyExists):
			rest.Error(w, http.StatusConflict, "Budget for this category already exists")
		default:
			rest.Error(w, http.StatusInternalServerError, "Failed to create budget")
		}
		return
	}
	rest.JSON(w, http.StatusCreated, created)
}

func (h *BudgetHandler) Update(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	var dto UpdateBudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.budgetService.Update(r.Context(), category, BudgetPatch{Limit: dto.Limit, Spent: dto.Spent})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			rest.Error(w, http.StatusNotFound, "Budget not found")
			return
		}
		rest.Error(w, http.StatusInternalServerError, "Failed to update budget")
		return
	}
	rest.JSON(w, http.StatusOK, updated)
}

func (h *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	removed, err := h.budgetService.Delete(r.Context(), category)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			rest.Error(w, http.StatusNotFound, "Budget not found")
			return
		}
		rest.Error(w, http.StatusInternalServerError, "Failed to delete budget")
		return
	}
	rest.JSON(w, http.StatusOK, removed)
}
