package goal

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/financeflow/financeflow/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type CreateGoalDTO struct {
	Name         string   `json:"name"`
	TargetAmount *float64 `json:"targetAmount"`
	Deadline     string   `json:"deadline"`
}

type ContributeDTO struct {
	Amount float64 `json:"amount"`
}

type UpdateGoalDTO struct {
	Name          *string  `json:"name"`
	TargetAmount  *float64 `json:"targetAmount"`
	CurrentAmount *float64 `json:"currentAmount"`
	Deadline      *string  `json:"deadline"`
}

type GoalHandler struct {
	goalService GoalService
}

func NewGoalHandler(goalService GoalService) *GoalHandler {
	return &GoalHandler{goalService}
}

func (h *GoalHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalService.GetAll(r.Context())
	if err != nil {
		rest.Error(w, http.StatusInternalServerError, "Failed to read goals")
		return
	}
	rest.JSON(w, http.StatusOK, goals)
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	goal, err := h.goalService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			rest.Error(w, http.StatusNotFound, "Goal not found")
			return
		}
		rest.Error(w, http.StatusInternalServerError, "Failed to read goal")
		return
	}
	rest.JSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new savings goal")

	var dto CreateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.goalService.Create(r.Context(), GoalDraft{
		Name:         dto.Name,
		TargetAmount: dto.TargetAmount,
		Deadline:     dto.Deadline,
	})
	if err != nil {
		if errors.Is(err, ErrValidation) {
			rest.Error(w, http.StatusBadRequest, "Missing required fields: name, targetAmount")
			return
		}
		rest.Error(w, http.StatusInternalServerError, "Failed to create goal")
		return
	}
	rest.JSON(w, http.StatusCreated, created)
}

func (h *GoalHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var dto ContributeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.goalService.Contribute(r.Context(), id, dto.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			rest.Error(w, http.StatusBadRequest, "Amount must be a positive number")
		case errors.Is(err, ErrNotFound):
			rest.Error(w, http.StatusNotFound, "Goal not found")
		default:
			rest.Error(w, http.StatusInternalServerError, "Failed to contribute to goal")
		}
		return
	}
	rest.JSON(w, http.StatusOK, updated)
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var dto UpdateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.goalService.Update(r.Context(), id, GoalPatch{
		Name:          dto.Name,
		TargetAmount:  dto.TargetAmount,
		CurrentAmount: dto.CurrentAmount,
		Deadline:      dto.Deadline,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			rest.Error(w, http.StatusNotFound, "Goal not found")
			return
		}
		rest.Error(w, http.StatusInternalServerError, "Failed to update goal")
		return
	}
	rest.JSON(w, http.StatusOK, updated)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	removed, err := h.goalService.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			rest.Error(w, http.StatusNotFound, "Goal not found")
			return
		}
		rest.Error(w, http.StatusInternalServerError, "Failed to delete goal")
		return
	}
	rest.JSON(w, http.StatusOK, removed)
}
