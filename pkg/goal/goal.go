package goal

import "errors"

var (
	ErrNotFound   = errors.New("goal not found")
	ErrValidation = errors.New("invalid goal")
)

// SavingsGoal is a named target amount with monotonic, ceiling-clamped
// progress. Deadline is purely informational.
type SavingsGoal struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      string  `json:"deadline,omitempty"`
}

// WithContribution returns the goal with amount added to its progress, clamped
// at the target. Contributions beyond the remaining gap are silently
// truncated, not rejected. Shared by the server-side contribute path and the
// client's local mode.
func (g SavingsGoal) WithContribution(amount float64) SavingsGoal {
	g.CurrentAmount += amount
	if g.CurrentAmount > g.TargetAmount {
		g.CurrentAmount = g.TargetAmount
	}
	return g
}
