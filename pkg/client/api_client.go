package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/financeflow/financeflow/internal/rest"
	"github.com/financeflow/financeflow/pkg/budget"
	"github.com/financeflow/financeflow/pkg/goal"
	"github.com/financeflow/financeflow/pkg/transaction"
)

type transactionDraftDTO struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	IsRecurring bool    `json:"isRecurring"`
}

type goalDraftDTO struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"targetAmount"`
	Deadline     string  `json:"deadline,omitempty"`
}

type contributeDTO struct {
	Amount float64 `json:"amount"`
}

// APIClient talks to the FinanceFlow REST API.
type APIClient struct {
	baseURL string
	client  *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *APIClient) request(ctx context.Context, method, path string, body any, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		content, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not encode request body: %w", err)
		}
		reqBody = bytes.NewBuffer(content)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr rest.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			return fmt.Errorf("request to %s failed: %s", path, resp.Status)
		}
		return fmt.Errorf("request to %s failed: %s", path, apiErr.Error)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode response from %s: %w", path, err)
	}
	return nil
}

func (c *APIClient) GetTransactions(ctx context.Context) ([]transaction.Transaction, error) {
	var transactions []transaction.Transaction
	err := c.request(ctx, http.MethodGet, "/transactions", nil, &transactions)
	return transactions, err
}

func (c *APIClient) CreateTransaction(ctx context.Context, draft transaction.Draft) (transaction.Transaction, error) {
	var created transaction.Transaction
	err := c.request(ctx, http.MethodPost, "/transactions", transactionDraftDTO{
		Type:        string(draft.Type),
		Amount:      draft.Amount,
		Category:    draft.Category,
		Description: draft.Description,
		Date:        draft.Date,
		IsRecurring: draft.IsRecurring,
	}, &created)
	return created, err
}

func (c *APIClient) DeleteTransaction(ctx context.Context, id string) (transaction.Transaction, error) {
	var removed transaction.Transaction
	err := c.request(ctx, http.MethodDelete, "/transactions/"+id, nil, &removed)
	return removed, err
}

func (c *APIClient) GetBudgets(ctx context.Context) ([]budget.Budget, error) {
	var budgets []budget.Budget
	err := c.request(ctx, http.MethodGet, "/budgets", nil, &budgets)
	return budgets, err
}

func (c *APIClient) CreateBudget(ctx context.Context, category string, limit float64) (budget.Budget, error) {
	var created budget.Budget
	err := c.request(ctx, http.MethodPost, "/budgets", map[string]any{
		"category": category,
		"limit":    limit,
	}, &created)
	return created, err
}

func (c *APIClient) DeleteBudget(ctx context.Context, category string) (budget.Budget, error) {
	var removed budget.Budget
	err := c.request(ctx, http.MethodDelete, "/budgets/"+category, nil, &removed)
	return removed, err
}

func (c *APIClient) GetGoals(ctx context.Context) ([]goal.SavingsGoal, error) {
	var goals []goal.SavingsGoal
	err := c.request(ctx, http.MethodGet, "/goals", nil, &goals)
	return goals, err
}

func (c *APIClient) CreateGoal(ctx context.Context, name string, targetAmount float64) (goal.SavingsGoal, error) {
	var created goal.SavingsGoal
	err := c.request(ctx, http.MethodPost, "/goals", goalDraftDTO{
		Name:         name,
		TargetAmount: targetAmount,
	}, &created)
	return created, err
}

func (c *APIClient) ContributeToGoal(ctx context.Context, id string, amount float64) (goal.SavingsGoal, error) {
	var updated goal.SavingsGoal
	err := c.request(ctx, http.MethodPost, "/goals/"+id+"/contribute", contributeDTO{Amount: amount}, &updated)
	return updated, err
}

func (c *APIClient) DeleteGoal(ctx context.Context, id string) (goal.SavingsGoal, error) {
	var removed goal.SavingsGoal
	err := c.request(ctx, http.MethodDelete, "/goals/"+id, nil, &removed)
	return removed, err
}
